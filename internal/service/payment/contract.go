//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"dispatch/internal/entities"
)

type Store interface {
	GetByID(ctx context.Context, deliveryID string) (*entities.Delivery, error)
	// UpdateCAS пишет запись только если stored version == expectedVersion,
	// иначе repository.ErrVersionConflict.
	UpdateCAS(ctx context.Context, delivery *entities.Delivery, expectedVersion int64) error
	UpsertCharge(ctx context.Context, deliveryID, idempotencyKey string, record entities.ChargeRecord) error
	DeleteCharge(ctx context.Context, deliveryID, idempotencyKey string) error
}

// Provider — внешний платежный провайдер. Charge обязан быть ключеванным:
// повторный вызов с тем же idempotencyKey не создает второго списания.
type Provider interface {
	Charge(ctx context.Context, amount entities.Money, idempotencyKey string) (providerRef string, err error)
	Refund(ctx context.Context, providerRef string, amount entities.Money) error
	VerifySignature(payload []byte, signature string) bool
}

type FareCalculator interface {
	Quote(ctx context.Context, pickup, dropoff entities.Location, class entities.VehicleClass) (*entities.FareBreakdown, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
