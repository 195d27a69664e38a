package components

import (
	"havenmart/internal/pkg/clock"
	"havenmart/internal/usecase/commands"
	"havenmart/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,

		// Write side
		commands.NewAuthCommands,
		commands.NewTicketCommands,
		commands.NewCartCommands,
		commands.NewOrderCommands,
		commands.NewBookingCommands,
		commands.NewCatalogCommands,

		// Read side
		queries.NewUserQueries,
		queries.NewTicketQueries,
		queries.NewCatalogQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewBookingQueries,
	),
)
