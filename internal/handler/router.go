package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"recarma/internal/domain/user"
	"recarma/internal/handler/api"
	"recarma/internal/handler/middleware"
	"recarma/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Vehicle   *api.VehicleHandler
	Pickup    *api.PickupHandler
	Document  *api.DocumentHandler
	Assistant *api.AssistantHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: handlers.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		vehicles := apiGroup.Group("/vehicles")
		vehicles.Use(authMiddleware.RequireAuth())
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Vehicle.CreateVehicle,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
				{Method: http.MethodGet, Path: "/my", Handler: handlers.Vehicle.ListMyVehicles,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Vehicle.GetVehicle,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner, user.RoleDealer)}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: handlers.Vehicle.UpdateStatus,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleDealer)}},
			})
		}

		pickups := apiGroup.Group("/pickups")
		pickups.Use(authMiddleware.RequireAuth())
		{
			addRoutes(pickups, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Pickup.SchedulePickup,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
				{Method: http.MethodGet, Path: "", Handler: handlers.Pickup.ListPickups,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleDealer)}},
			})
		}

		documents := apiGroup.Group("/documents")
		documents.Use(authMiddleware.RequireAuth())
		{
			addRoutes(documents, []route{
				{Method: http.MethodPost, Path: "/upload", Handler: handlers.Document.Upload,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
			})
		}

		assistantGroup := apiGroup.Group("/assistant")
		assistantGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(assistantGroup, []route{
				{Method: http.MethodPost, Path: "/chat", Handler: handlers.Assistant.Chat},
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
