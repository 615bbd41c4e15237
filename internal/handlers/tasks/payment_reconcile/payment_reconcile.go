package payment_reconcile

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ReconcilePendingCharges(ctx context.Context) (int64, error)
}

// PaymentReconcile периодически поднимает зависшие pending-резервации
// списаний (провайдер не дал терминального ответа) и отдает их в аудит
// для ручной сверки. Сами записи задача не трогает.
type PaymentReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPaymentReconcile(log logger.Logger, service Service, interval time.Duration) *PaymentReconcile {
	return &PaymentReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PaymentReconcile) TTL() time.Duration {
	return p.interval
}

func (p *PaymentReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	stuck, err := p.service.ReconcilePendingCharges(ctxWithTimeout)

	if stuck > 0 {
		p.log.With(
			logger.NewField("pending_charges", stuck),
		).Warn("payment reconcile")
	}

	return err
}

func (p *PaymentReconcile) Info() string {
	return "payment reconcile"
}
