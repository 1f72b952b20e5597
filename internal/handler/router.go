package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"consult-booking/internal/handler/api"
	"consult-booking/internal/handler/middleware"
	"consult-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservations  *api.ReservationHandler
	Slots         *api.SlotHandler
	Invitations   *api.InvitationHandler
	Notifications *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Tracing())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	public := engine.Group("/public")
	addRoutes(public, []route{
		{Method: http.MethodGet, Path: "/invitations/validate", Handler: h.Invitations.Validate},
		{Method: http.MethodGet, Path: "/slots", Handler: h.Slots.ListPublic},
		{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservations.Create},
		{Method: http.MethodPost, Path: "/reservations/cancel", Handler: h.Reservations.CancelWithReservationToken},
		{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Reservations.CancelWithInvite},
	})

	admin := engine.Group("/admin")
	admin.Use(authMiddleware.RequireAuth())
	addRoutes(admin, []route{
		{Method: http.MethodPost, Path: "/slots", Handler: h.Slots.Create},
		{Method: http.MethodPost, Path: "/slots/batch", Handler: h.Slots.CreateBatch},
		{Method: http.MethodGet, Path: "/slots", Handler: h.Slots.List},
		{Method: http.MethodGet, Path: "/slots/:id", Handler: h.Slots.Get},
		{Method: http.MethodGet, Path: "/slots/:id/reservations", Handler: h.Slots.ListReservations},
		{Method: http.MethodDelete, Path: "/slots/:id", Handler: h.Slots.Delete},
		{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservations.History},
		{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservations.Get},
		{Method: http.MethodPatch, Path: "/reservations/:id/status", Handler: h.Reservations.UpdateStatus},
		{Method: http.MethodPost, Path: "/invitations", Handler: h.Invitations.Issue},
		{Method: http.MethodGet, Path: "/notifications", Handler: h.Notifications.ListDue},
	})
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
