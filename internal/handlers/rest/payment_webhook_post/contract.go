//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_webhook_post_test
package payment_webhook_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ApplyPaymentConfirmation(ctx context.Context, payload []byte, signature string) error
}
