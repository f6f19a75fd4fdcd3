package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hooklens/internal/handler/api"
	"hooklens/internal/handler/middleware"
	"hooklens/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	endpointHandler *api.EndpointHandler,
	requestHandler *api.RequestHandler,
	analyticsHandler *api.AnalyticsHandler,
	captureHandler *api.CaptureHandler,
	adminHandler *api.AdminHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, endpointHandler, requestHandler, analyticsHandler, captureHandler, adminHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	endpointHandler *api.EndpointHandler,
	requestHandler *api.RequestHandler,
	analyticsHandler *api.AnalyticsHandler,
	captureHandler *api.CaptureHandler,
	adminHandler *api.AdminHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// The capture intake takes every method; gin cannot express that
	// through the verb table below.
	engine.Any("/hooks/:token", captureHandler.Capture)
	engine.Any("/hooks/:token/*path", captureHandler.Capture)

	apiGroup := engine.Group("/api")
	{
		endpoints := apiGroup.Group("/endpoints")
		{
			addRoutes(endpoints, []route{
				{Method: http.MethodPost, Path: "", Handler: endpointHandler.CreateEndpoint},
				{Method: http.MethodGet, Path: "/:id", Handler: endpointHandler.GetEndpoint},
				{Method: http.MethodDelete, Path: "/:id", Handler: endpointHandler.DisableEndpoint},
				{Method: http.MethodGet, Path: "/:id/health", Handler: endpointHandler.GetHealth},
				{Method: http.MethodPost, Path: "/:id/exports", Handler: endpointHandler.StartExport},
				{Method: http.MethodGet, Path: "/:id/requests", Handler: requestHandler.ListRequests},
				{Method: http.MethodGet, Path: "/:id/requests/:requestId", Handler: requestHandler.GetRequest},
				{Method: http.MethodGet, Path: "/:id/analytics", Handler: analyticsHandler.GetAnalytics},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/sweep", Handler: adminHandler.TriggerSweep},
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
