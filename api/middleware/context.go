package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/customeros/notestack/internal/utils"
)

const HeaderIngestionId = "X-Ingestion-Id"

// IngestionIdMiddleware assigns every request an ingestion id and echoes it back in the response.
func IngestionIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ingestionId := uuid.New().String()
		utils.SetIngestionIdInGin(c, ingestionId)
		c.Header(HeaderIngestionId, ingestionId)
		c.Next()
	}
}

// CustomContextMiddleware adds custom context to all requests
func CustomContextMiddleware(appSource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := utils.WithCustomContextFromGinRequest(c, appSource)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
