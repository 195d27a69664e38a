package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"havenmart/internal/handler/api"
	"havenmart/internal/handler/middleware"
	"havenmart/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Ticket  *api.TicketHandler
	Catalog *api.CatalogHandler
	Cart    *api.CartHandler
	Order   *api.OrderHandler
	Booking *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit gin.HandlerFunc) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, rateLimit)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		user := apiGroup.Group("/user")
		user.Use(authMiddleware.RequireAuth())
		{
			addRoutes(user, []route{
				{Method: http.MethodGet, Path: "/profile", Handler: h.Auth.Profile},
			})
		}

		product := apiGroup.Group("/product")
		{
			addRoutes(product, []route{
				{Method: http.MethodGet, Path: "/list", Handler: h.Catalog.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.Get},
			})

			adminOnly := product.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "/add", Handler: h.Catalog.Add},
			})
		}

		tickets := apiGroup.Group("/tickets")
		tickets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tickets, []route{
				{Method: http.MethodPost, Path: "/create", Handler: h.Ticket.Create},
				{Method: http.MethodGet, Path: "/user", Handler: h.Ticket.ListOwn, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodGet, Path: "/get/:id", Handler: h.Ticket.Get},
				{Method: http.MethodPut, Path: "/update/:id", Handler: h.Ticket.Update},
				{Method: http.MethodDelete, Path: "/delete/:id", Handler: h.Ticket.Delete},
			})

			adminOnly := tickets.Group("")
			adminOnly.Use(authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodGet, Path: "/all", Handler: h.Ticket.ListAll},
				{Method: http.MethodPost, Path: "/reply", Handler: h.Ticket.Reply},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodPost, Path: "/add", Handler: h.Cart.Add},
				{Method: http.MethodPost, Path: "/update", Handler: h.Cart.Update},
				{Method: http.MethodPost, Path: "/get", Handler: h.Cart.Get},
			})
		}

		order := apiGroup.Group("/order")
		order.Use(authMiddleware.RequireAuth())
		{
			addRoutes(order, []route{
				{Method: http.MethodPost, Path: "/place", Handler: h.Order.Place},
				{Method: http.MethodPost, Path: "/stripe", Handler: h.Order.PlaceStripe},
				{Method: http.MethodPost, Path: "/verifyStripe", Handler: h.Order.VerifyStripe},
				{Method: http.MethodPost, Path: "/userorders", Handler: h.Order.ListOwn},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: h.Booking.Slots},
			})

			authRequired := bookings.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListOwn},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
