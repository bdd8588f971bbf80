package api

import (
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/customeros/notestack/api/handlers"
	"github.com/customeros/notestack/api/middleware"
	"github.com/customeros/notestack/internal/tracing"
)

const AppSource = "notestack"

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(r *gin.Engine, h *handlers.APIHandlers) {
	if h == nil {
		panic("Handlers cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())                                         // Gin's built-in recovery
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer())) // Our custom Jaeger recovery

	r.GET("/health", handlers.HealthCheck)

	ingestion := []gin.HandlerFunc{
		middleware.IngestionIdMiddleware(),
		middleware.CustomContextMiddleware(AppSource),
		middleware.TracingMiddleware(),
		h.Inbound.Receive(),
	}

	// relays configured with a bare host post to the root
	r.POST("/", ingestion...)

	api := r.Group("/v1")
	{
		api.POST("/inbound", ingestion...)
	}
}
