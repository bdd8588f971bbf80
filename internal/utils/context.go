package utils

import (
	"context"

	"github.com/gin-gonic/gin"
)

type CustomContext struct {
	AppSource   string
	IngestionId string
	UserId      string
	UserEmail   string
}

type customContextKeyType string

const customContextKey customContextKeyType = "CUSTOM_CONTEXT"

const (
	ginKeyIngestionId = "IngestionId"
)

func WithCustomContext(ctx context.Context, customContext *CustomContext) context.Context {
	return context.WithValue(ctx, customContextKey, customContext)
}

func WithCustomContextFromGinRequest(c *gin.Context, appSource string) context.Context {
	customContext := &CustomContext{
		AppSource:   appSource,
		IngestionId: c.GetString(ginKeyIngestionId),
	}
	return WithCustomContext(c.Request.Context(), customContext)
}

func SetIngestionIdInGin(c *gin.Context, ingestionId string) {
	c.Set(ginKeyIngestionId, ingestionId)
}

func GetContext(ctx context.Context) *CustomContext {
	customContext, ok := ctx.Value(customContextKey).(*CustomContext)
	if !ok {
		return new(CustomContext)
	}
	return customContext
}

func GetAppSourceFromContext(ctx context.Context) string {
	return GetContext(ctx).AppSource
}

func GetIngestionIdFromContext(ctx context.Context) string {
	return GetContext(ctx).IngestionId
}

func GetUserIdFromContext(ctx context.Context) string {
	return GetContext(ctx).UserId
}

func GetUserEmailFromContext(ctx context.Context) string {
	return GetContext(ctx).UserEmail
}

// SetUserInContext records the resolved sender on a copy of the custom context.
func SetUserInContext(ctx context.Context, userId, userEmail string) context.Context {
	customContext := *GetContext(ctx)
	customContext.UserId = userId
	customContext.UserEmail = userEmail
	return WithCustomContext(ctx, &customContext)
}
