package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/motivation-page/internal/adapters/http/handlers"
	"github.com/jsamuelsen/motivation-page/internal/adapters/http/middleware"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// Pages handles the HTML routes.
	Pages *handlers.PagesHandler

	// API handles the JSON routes under /api/v1.
	API *handlers.APIHandler

	// Health handles the /-/ endpoints.
	Health *handlers.HealthHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Logging - request logging (skips health endpoints)
//
// Route groups:
//   - / (pages): the HTML admin and daily pages
//   - /api/v1/ (API): JSON endpoints over the same services
//   - /-/ (internal): health, build info, metrics
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.Health != nil {
		cfg.Health.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.Pages != nil {
		cfg.Pages.RegisterPageRoutes(engine)
	}

	if cfg.API != nil {
		cfg.API.RegisterAPIRoutes(engine.Group("/api/v1"))
	}
}
