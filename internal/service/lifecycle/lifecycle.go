package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/ownership"
	"dispatch/internal/service/payment"
	"dispatch/internal/service/transition"
	"dispatch/pkg/logger"
)

// Engine — композиционный корень жизненного цикла доставки.
// Каждая операция повторяет одну и ту же форму: чтение записи с version ->
// Ownership Guard -> State Machine -> Payment Guard (если операция денежная) ->
// CAS-запись -> событие в Audit Sink для успеха и каждого отказа.
// Движок stateless: все durable-состояние живет в Record Store, блокировок
// через I/O нет, конкуренция разрешается ретраем по конфликту версий.
type Engine struct {
	log            logger.Logger
	repository     Repository
	ownershipGuard OwnershipGuard
	machine        Machine
	payments       PaymentGuard
	fares          FareCalculator
	drivers        DriverRegistry
	auditSink      AuditSink
	txManager      TxManager
	reconcileAfter time.Duration
}

func New(
	log logger.Logger,
	repo Repository,
	ownershipGuard OwnershipGuard,
	machine Machine,
	payments PaymentGuard,
	fares FareCalculator,
	drivers DriverRegistry,
	auditSink AuditSink,
	txManager TxManager,
	reconcileAfter time.Duration,
) *Engine {
	return &Engine{
		log:            log,
		repository:     repo,
		ownershipGuard: ownershipGuard,
		machine:        machine,
		payments:       payments,
		fares:          fares,
		drivers:        drivers,
		auditSink:      auditSink,
		txManager:      txManager,
		reconcileAfter: reconcileAfter,
	}
}

// Create считает тариф через Fare Calculator и создает запись со status=CREATED,
// paymentState=UNPAID, version=0. Fare фиксируется здесь и больше не мутируется.
func (e *Engine) Create(
	ctx context.Context,
	identity entities.Identity,
	pickup, dropoff entities.Location,
	class entities.VehicleClass,
) (*entities.Delivery, error) {
	if identity.Role != entities.RoleCustomer {
		err := fmt.Errorf("%w: only customers create deliveries", ownership.ErrRoleInsufficient)
		e.emitAudit(ctx, "", identity, "create", err, false, "")
		return nil, err
	}
	if !isValidLocation(pickup) || !isValidLocation(dropoff) {
		return nil, ErrInvalidLocation
	}
	if !isValidVehicleClass(class) {
		return nil, ErrInvalidVehicleClass
	}

	fare, err := e.fares.Quote(ctx, pickup, dropoff, class)
	if err != nil {
		return nil, fmt.Errorf("compute fare: %w", err)
	}

	now := time.Now().UTC()
	delivery := &entities.Delivery{
		ID:           uuid.NewString(),
		Status:       entities.DeliveryCreated,
		CustomerID:   identity.ActorID,
		Pickup:       pickup,
		Dropoff:      dropoff,
		VehicleClass: class,
		Fare:         *fare,
		PaymentState: entities.PaymentUnpaid,
		Charges:      make(map[string]entities.ChargeRecord),
		Version:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := e.repository.Create(ctx, delivery); err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	e.emitAudit(ctx, delivery.ID, identity, "create", nil, false, "")
	return delivery, nil
}

// Accept назначает водителя на созданную доставку. Отношение владения не
// требуется (водителя еще нет), требуется роль driver и доступность водителя
// во внешнем реестре.
func (e *Engine) Accept(ctx context.Context, identity entities.Identity, deliveryID string) (*entities.Delivery, error) {
	delivery, err := e.runTransition(ctx, identity, deliveryID, transitionSpec{
		action: entities.ActionAccept,
		mutate: func(ctx context.Context, d *entities.Delivery) error {
			available, err := e.drivers.IsAvailable(ctx, identity.ActorID)
			if err != nil {
				return fmt.Errorf("driver availability: %w", err)
			}
			if !available {
				return ErrDriverUnavailable
			}
			driverID := identity.ActorID
			d.DriverID = &driverID
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	if err := e.drivers.MarkBusy(ctx, identity.ActorID); err != nil {
		// Реестр присутствия best-effort: доставка уже принята.
		e.log.Warn("mark driver busy failed",
			logger.NewField("driver", identity.ActorID),
			logger.NewField("error", err),
		)
	}
	return delivery, nil
}

func (e *Engine) Pickup(ctx context.Context, identity entities.Identity, deliveryID string) (*entities.Delivery, error) {
	return e.runTransition(ctx, identity, deliveryID, transitionSpec{
		action:   entities.ActionPickup,
		relation: ownership.IsAssignedDriver,
	})
}

func (e *Engine) Start(ctx context.Context, identity entities.Identity, deliveryID string) (*entities.Delivery, error) {
	return e.runTransition(ctx, identity, deliveryID, transitionSpec{
		action:   entities.ActionStart,
		relation: ownership.IsAssignedDriver,
	})
}

func (e *Engine) Complete(ctx context.Context, identity entities.Identity, deliveryID string) (*entities.Delivery, error) {
	delivery, err := e.runTransition(ctx, identity, deliveryID, transitionSpec{
		action:   entities.ActionComplete,
		relation: ownership.IsAssignedDriver,
	})
	if err != nil {
		return nil, err
	}

	e.releaseDriver(ctx, delivery)
	return delivery, nil
}

// Cancel легален из любого нетерминального статуса для клиента, назначенного
// водителя или администратора. При AUTHORIZED/CAPTURED возврат у провайдера
// запрашивается до финализации CANCELLED. Конкурирующая отмена, проигравшая
// CAS, после перечитывания видит CANCELLED и получает идемпотентный успех.
func (e *Engine) Cancel(ctx context.Context, identity entities.Identity, deliveryID, reason string) (*entities.Delivery, error) {
	delivery, err := e.runTransition(ctx, identity, deliveryID, transitionSpec{
		action:   entities.ActionCancel,
		relation: ownership.IsAnyAssignedParty,
		detail:   reason,
		mutate: func(ctx context.Context, d *entities.Delivery) error {
			if d.PaymentState == entities.PaymentAuthorized || d.PaymentState == entities.PaymentCaptured {
				if err := e.payments.Refund(ctx, d); err != nil {
					return fmt.Errorf("refund before cancel: %w", err)
				}
				d.PaymentState = entities.PaymentRefunded
			}
			return nil
		},
		alreadyApplied: func(d *entities.Delivery) bool {
			return d.Status == entities.DeliveryCancelled
		},
	})
	if err != nil {
		return nil, err
	}

	e.releaseDriver(ctx, delivery)
	return delivery, nil
}

// AuthorizePayment делегирует Payment Integrity Guard. Тело запроса суммы не
// несет: сумма всегда derived из записи. Легально только от ACCEPTED и дальше.
func (e *Engine) AuthorizePayment(
	ctx context.Context,
	identity entities.Identity,
	deliveryID, idempotencyKey string,
) (*entities.ChargeResult, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	var adminOverride bool
	for attempt := 0; attempt < 2; attempt++ {
		delivery, err := e.repository.GetByID(ctx, deliveryID)
		if err != nil {
			e.emitAudit(ctx, deliveryID, identity, "authorize_payment", err, false, "")
			return nil, err
		}

		grant, err := e.ownershipGuard.Authorize(identity, delivery, ownership.IsCustomer)
		if err != nil {
			e.emitAudit(ctx, deliveryID, identity, "authorize_payment", err, false, "")
			return nil, err
		}
		adminOverride = grant.AdminOverride

		if delivery.Status == entities.DeliveryCreated || delivery.Status.IsTerminal() {
			err := fmt.Errorf("%w: payment requires an accepted, active delivery", transition.ErrIllegalTransition)
			e.emitAudit(ctx, deliveryID, identity, "authorize_payment", err, adminOverride, "")
			return nil, err
		}

		result, err := e.payments.AuthorizeCharge(ctx, delivery, idempotencyKey)
		if errors.Is(err, repository.ErrVersionConflict) && attempt == 0 {
			continue
		}
		e.emitAudit(ctx, deliveryID, identity, "authorize_payment", err, adminOverride, "")
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	e.emitAudit(ctx, deliveryID, identity, "authorize_payment", ErrContention, adminOverride, "")
	return nil, ErrContention
}

// GetDelivery — чтение под ownership-проверкой, те же uniform-отказы
// что и у переходов (иначе чтения становятся каналом перечисления ID).
func (e *Engine) GetDelivery(ctx context.Context, identity entities.Identity, deliveryID string) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := e.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	grant, err := e.ownershipGuard.Authorize(identity, delivery, ownership.IsAnyAssignedParty)
	if err != nil {
		return nil, err
	}
	if grant.AdminOverride {
		// Break-glass чтения администратора тоже остаются в аудите.
		e.emitAudit(ctx, deliveryID, identity, "read", nil, true, "")
	}
	return delivery, nil
}

// ApplyPaymentConfirmation применяет асинхронное подтверждение провайдера.
// Неверифицируемая подпись логируется и отбрасывается, запись не трогается.
func (e *Engine) ApplyPaymentConfirmation(ctx context.Context, payload []byte, signature string) error {
	systemIdentity := entities.Identity{ActorID: "payment-provider", Role: entities.RoleAdmin}

	conf, err := e.payments.ParseConfirmation(payload, signature)
	if err != nil {
		e.emitAudit(ctx, "", systemIdentity, "payment_confirmation", err, false, "")
		return err
	}

	for attempt := 0; attempt < 2; attempt++ {
		err := e.payments.ApplyConfirmation(ctx, conf)
		if errors.Is(err, repository.ErrVersionConflict) && attempt == 0 {
			continue
		}
		e.emitAudit(ctx, conf.DeliveryID, systemIdentity, "payment_confirmation", err, false, conf.Kind.String())
		return err
	}

	e.emitAudit(ctx, conf.DeliveryID, systemIdentity, "payment_confirmation", ErrContention, false, conf.Kind.String())
	return ErrContention
}

// ReconcilePendingCharges поднимает резервации, висящие в pending дольше
// допустимого, и эскалирует их в Audit Sink. Ничего не чинит сам: спорные
// списания разрешаются только вручную.
func (e *Engine) ReconcilePendingCharges(ctx context.Context) (int64, error) {
	before := time.Now().UTC().Add(-e.reconcileAfter)

	pending, err := e.repository.ListPendingCharges(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("list pending charges: %w", err)
	}

	for _, charge := range pending {
		e.emitAudit(ctx, charge.DeliveryID,
			entities.Identity{ActorID: "reconciler", Role: entities.RoleAdmin},
			"reconcile_charge", payment.ErrPaymentIndeterminate, false, charge.IdempotencyKey)
	}

	return int64(len(pending)), nil
}

type transitionSpec struct {
	action   entities.DeliveryAction
	relation ownership.Relation // пустое отношение: ownership не проверяется (accept)
	detail   string
	mutate   func(ctx context.Context, d *entities.Delivery) error
	// alreadyApplied: перечитанная после конфликта запись уже в целевом
	// состоянии — вернуть идемпотентный успех вместо ошибки.
	alreadyApplied func(d *entities.Delivery) bool
}

func (e *Engine) runTransition(
	ctx context.Context,
	identity entities.Identity,
	deliveryID string,
	spec transitionSpec,
) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	action := spec.action.String()
	var adminOverride bool

	for attempt := 0; attempt < 2; attempt++ {
		delivery, err := e.repository.GetByID(ctx, deliveryID)
		if err != nil {
			e.emitAudit(ctx, deliveryID, identity, action, err, false, spec.detail)
			return nil, err
		}

		if attempt > 0 && spec.alreadyApplied != nil && spec.alreadyApplied(delivery) {
			e.emitAudit(ctx, deliveryID, identity, action, nil, adminOverride, "already applied")
			return delivery, nil
		}

		if spec.relation != "" {
			grant, err := e.ownershipGuard.Authorize(identity, delivery, spec.relation)
			if err != nil {
				e.emitAudit(ctx, deliveryID, identity, action, err, false, spec.detail)
				return nil, err
			}
			adminOverride = grant.AdminOverride
		}

		next, err := e.machine.CanTransition(delivery.Status, spec.action, identity.Role)
		if err != nil {
			e.emitAudit(ctx, deliveryID, identity, action, err, adminOverride, spec.detail)
			return nil, err
		}

		from := delivery.Status
		delivery.Status = next
		if spec.mutate != nil {
			if err := spec.mutate(ctx, delivery); err != nil {
				e.emitAudit(ctx, deliveryID, identity, action, err, adminOverride, spec.detail)
				return nil, err
			}
		}

		record := entities.Transition{
			From:    from,
			To:      next,
			ActorID: identity.ActorID,
			At:      time.Now().UTC(),
		}
		delivery.Transitions = append(delivery.Transitions, record)

		expected := delivery.Version
		err = e.txManager.Do(ctx, func(ctx context.Context) error {
			if err := e.repository.UpdateCAS(ctx, delivery, expected); err != nil {
				return err
			}
			return e.repository.AppendTransition(ctx, delivery.ID, record)
		})
		if err == nil {
			e.emitAudit(ctx, deliveryID, identity, action, nil, adminOverride, spec.detail)
			return delivery, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, fmt.Errorf("write transition: %w", err)
		}
		// Проигрыш гонки за version: перечитываем и ретраим ровно один раз.
	}

	e.emitAudit(ctx, deliveryID, identity, action, ErrContention, adminOverride, spec.detail)
	return nil, ErrContention
}

func (e *Engine) releaseDriver(ctx context.Context, d *entities.Delivery) {
	if d.DriverID == nil {
		return
	}
	if err := e.drivers.MarkAvailable(ctx, *d.DriverID); err != nil {
		e.log.Warn("mark driver available failed",
			logger.NewField("driver", *d.DriverID),
			logger.NewField("error", err),
		)
	}
}

func (e *Engine) emitAudit(
	ctx context.Context,
	deliveryID string,
	identity entities.Identity,
	action string,
	opErr error,
	adminOverride bool,
	detail string,
) {
	event := entities.AuditEvent{
		ID:            uuid.NewString(),
		DeliveryID:    deliveryID,
		ActorID:       identity.ActorID,
		Role:          identity.Role,
		Action:        action,
		Outcome:       "accepted",
		Reason:        detail,
		Severity:      entities.AuditInfo,
		AdminOverride: adminOverride,
		At:            time.Now().UTC(),
	}

	if opErr != nil {
		event.Outcome = "rejected"
		event.Reason = rejectionReason(opErr)
		event.Severity = rejectionSeverity(opErr)
	}

	if err := e.auditSink.Record(ctx, event); err != nil {
		// Аудит не должен ронять операцию, но потеря события — инцидент.
		e.log.Error("audit sink record failed",
			logger.NewField("delivery", deliveryID),
			logger.NewField("action", action),
			logger.NewField("error", err),
		)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ownership.ErrNotOwner):
		return "not_owner"
	case errors.Is(err, ownership.ErrNotAssigned):
		return "not_assigned"
	case errors.Is(err, ownership.ErrRoleInsufficient), errors.Is(err, transition.ErrRoleInsufficient):
		return "role_insufficient"
	case errors.Is(err, transition.ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, payment.ErrFareMismatch):
		return "fare_mismatch"
	case errors.Is(err, payment.ErrPaymentIndeterminate):
		return "payment_indeterminate"
	case errors.Is(err, payment.ErrChargeDeclined):
		return "charge_declined"
	case errors.Is(err, payment.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, ErrContention):
		return "contention"
	case errors.Is(err, ErrDeliveryNotFound):
		return "not_found"
	case errors.Is(err, ErrDriverUnavailable):
		return "driver_unavailable"
	default:
		return "error"
	}
}

func rejectionSeverity(err error) entities.AuditSeverity {
	switch {
	case errors.Is(err, payment.ErrFareMismatch),
		errors.Is(err, payment.ErrPaymentIndeterminate):
		return entities.AuditCritical
	case ownership.IsAuthzError(err),
		errors.Is(err, transition.ErrRoleInsufficient),
		errors.Is(err, payment.ErrInvalidSignature):
		return entities.AuditWarn
	default:
		return entities.AuditInfo
	}
}
