package components

import (
	"havenmart/internal/infra/readstore"
	repo_impl "havenmart/internal/infra/repository"
	"havenmart/internal/usecase/commands"
	"havenmart/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewTicketRepository,
			fx.As(new(commands.TicketRepository)),
		),
		fx.Annotate(
			repo_impl.NewCartRepository,
			fx.As(new(commands.CartRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewPropertyRepository,
			fx.As(new(commands.PropertyRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
		// The property store serves both the catalog reads and the
		// checkout price lookups.
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyReadStore)),
			fx.As(new(queries.PriceReadStore)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
