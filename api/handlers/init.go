package handlers

import (
	"github.com/customeros/notestack/internal/logger"
)

type APIHandlers struct {
	Inbound *InboundHandler
}

func InitHandlers(log logger.Logger, ingester Ingester, maxPartBytes int64) *APIHandlers {
	return &APIHandlers{
		Inbound: NewInboundHandler(log, ingester, maxPartBytes),
	}
}
