package entities

import "time"

type PaymentState string

const (
	PaymentUnpaid     PaymentState = "unpaid"
	PaymentAuthorized PaymentState = "authorized"
	PaymentCaptured   PaymentState = "captured"
	PaymentRefunded   PaymentState = "refunded"
)

func (s PaymentState) String() string {
	return string(s)
}

type ChargeOutcome string

const (
	// ChargePending — ключ зарезервирован, внешний вызов еще не подтвержден.
	// Резервация переживает таймаут запроса: ретрай с тем же ключом увидит её.
	ChargePending ChargeOutcome = "pending"
	ChargeCaptured ChargeOutcome = "captured"
	ChargeDeclined ChargeOutcome = "declined"
)

func (o ChargeOutcome) String() string {
	return string(o)
}

// ChargeRecord — запись в idempotencyKeysSeen: что уже сделано по ключу.
type ChargeRecord struct {
	Amount      Money
	Outcome     ChargeOutcome
	ProviderRef string
	CreatedAt   time.Time
}

type ChargeResult struct {
	DeliveryID     string
	IdempotencyKey string
	Amount         Money
	Outcome        ChargeOutcome
	ProviderRef    string
	Replayed       bool
}

type ConfirmationKind string

const (
	ConfirmationCaptured ConfirmationKind = "captured"
	ConfirmationRefunded ConfirmationKind = "refunded"
	ConfirmationFailed   ConfirmationKind = "failed"
)

func (k ConfirmationKind) String() string {
	return string(k)
}

// PaymentConfirmation — асинхронное подтверждение от платежного провайдера
// (webhook или событие из брокера). Применяется только после проверки подписи.
type PaymentConfirmation struct {
	DeliveryID  string
	Kind        ConfirmationKind
	Amount      Money
	ProviderRef string
}

// PendingCharge — подвисшая резервация ключа для фоновой сверки.
type PendingCharge struct {
	DeliveryID     string
	IdempotencyKey string
	Amount         Money
	CreatedAt      time.Time
}
