package auth

import (
	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type tokenVerifier interface {
	Verify(tokenString string) (entities.Identity, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
