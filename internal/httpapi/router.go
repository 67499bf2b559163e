// Package httpapi is the REST adapter of the eligibility checker, for web
// front ends that render the wizard themselves.
package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig holds the handlers and middleware settings for NewRouter.
type RouterConfig struct {
	SessionHandler *SessionHandler
	CatalogHandler *CatalogHandler
	HealthHandler  *HealthHandler

	AllowOrigins []string
	Logger       *zap.Logger
}

// NewRouter mounts /healthcheck and the /api routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Logger))
	if len(cfg.AllowOrigins) > 0 {
		r.Use(CORS(cfg.AllowOrigins))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Catalogs
		if cfg.CatalogHandler != nil {
			api.GET("/catalog/questions", cfg.CatalogHandler.ListQuestions)
			api.GET("/catalog/programs", cfg.CatalogHandler.ListPrograms)
			api.GET("/catalog/check", cfg.CatalogHandler.Check)
		}

		// Wizard sessions
		if cfg.SessionHandler != nil {
			api.POST("/sessions", cfg.SessionHandler.Open)
			api.GET("/sessions/:id", cfg.SessionHandler.Get)
			api.DELETE("/sessions/:id", cfg.SessionHandler.Close)
			api.PUT("/sessions/:id/answers/:questionId", cfg.SessionHandler.Answer)
			api.POST("/sessions/:id/next", cfg.SessionHandler.Next)
			api.POST("/sessions/:id/back", cfg.SessionHandler.Back)
			api.POST("/sessions/:id/reset", cfg.SessionHandler.Reset)
			api.POST("/sessions/:id/open", cfg.SessionHandler.OpenRecommendation)
		}
	}

	return r
}
