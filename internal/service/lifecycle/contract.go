//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/ownership"
)

type Repository interface {
	Create(ctx context.Context, delivery *entities.Delivery) error
	GetByID(ctx context.Context, deliveryID string) (*entities.Delivery, error)
	UpdateCAS(ctx context.Context, delivery *entities.Delivery, expectedVersion int64) error
	AppendTransition(ctx context.Context, deliveryID string, t entities.Transition) error
	ListPendingCharges(ctx context.Context, before time.Time) ([]entities.PendingCharge, error)
}

type OwnershipGuard interface {
	Authorize(identity entities.Identity, delivery *entities.Delivery, required ownership.Relation) (ownership.Grant, error)
}

type Machine interface {
	CanTransition(current entities.DeliveryStatus, action entities.DeliveryAction, role entities.Role) (entities.DeliveryStatus, error)
}

type PaymentGuard interface {
	AuthorizeCharge(ctx context.Context, delivery *entities.Delivery, idempotencyKey string) (*entities.ChargeResult, error)
	Refund(ctx context.Context, delivery *entities.Delivery) error
	ParseConfirmation(payload []byte, signature string) (*entities.PaymentConfirmation, error)
	ApplyConfirmation(ctx context.Context, conf *entities.PaymentConfirmation) error
}

type FareCalculator interface {
	Quote(ctx context.Context, pickup, dropoff entities.Location, class entities.VehicleClass) (*entities.FareBreakdown, error)
}

type DriverRegistry interface {
	IsAvailable(ctx context.Context, driverID string) (bool, error)
	MarkBusy(ctx context.Context, driverID string) error
	MarkAvailable(ctx context.Context, driverID string) error
}

type AuditSink interface {
	Record(ctx context.Context, event entities.AuditEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
