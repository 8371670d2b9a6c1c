package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/backend/config"
	"github.com/storefront/backend/internal/infrastructure/metrics"
)

// SetupRouter creates and configures the Gin router.
// A nil metrics disables /metrics and request instrumentation.
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger, m *metrics.Metrics) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	production := cfg.Server.Environment == "production"
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	if m != nil {
		router.Use(MetricsMiddleware(m))
	}
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	v1 := router.Group("/api/v1")
	v1.Use(SessionMiddleware(production))
	{
		v1.GET("/products", handler.ListProducts)

		search := v1.Group("/search")
		{
			search.GET("/tags", handler.ListTags)
			search.POST("/toggle", handler.ToggleTag)
			search.POST("/reset", handler.ResetSearch)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", handler.GetCart)
			cart.DELETE("", handler.ClearCart)
			cart.POST("/items/:id/increment", handler.IncrementItem)
			cart.POST("/items/:id/decrement", handler.DecrementItem)
		}

		v1.POST("/catalog/refresh", handler.RefreshCatalog)
	}

	return router
}
