package components

import (
	"havenmart/internal/handler"
	"havenmart/internal/handler/api"
	"havenmart/internal/handler/middleware"
	"havenmart/internal/pkg/config"
	"havenmart/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTicketHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewBookingHandler,
		NewAuthMiddleware,
		NewRateLimit,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(authCmds commands.AuthCommands) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(authCmds)
}

func NewRateLimit(cfg config.Config, rdb *redis.Client) gin.HandlerFunc {
	return middleware.NewRateLimitMiddleware(cfg.Redis, rdb)
}

func NewHandlers(
	auth *api.AuthHandler,
	ticket *api.TicketHandler,
	catalog *api.CatalogHandler,
	cart *api.CartHandler,
	order *api.OrderHandler,
	booking *api.BookingHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Ticket:  ticket,
		Catalog: catalog,
		Cart:    cart,
		Order:   order,
		Booking: booking,
	}
}
