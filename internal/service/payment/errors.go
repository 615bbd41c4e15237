package payment

import "errors"

var (
	ErrInvalidIdempotencyKey = errors.New("invalid idempotency key")
	ErrInvalidSignature      = errors.New("unverifiable webhook signature")
	ErrPaymentNotCapturable  = errors.New("payment not capturable in current state")

	// ErrFareMismatch — ре-деривация тарифа разошлась с записанным fare
	// сильнее допуска. Всегда фатально, никогда не ретраится.
	ErrFareMismatch = errors.New("fare mismatch")

	// ErrChargeDeclined — провайдер определенно сообщил, что списания не было.
	ErrChargeDeclined = errors.New("charge declined by provider")

	// ErrPaymentIndeterminate — "может быть списано": резервация ключа
	// сохраняется, случай уходит на ручную сверку, не ретраится молча.
	ErrPaymentIndeterminate = errors.New("payment provider response indeterminate")
)
