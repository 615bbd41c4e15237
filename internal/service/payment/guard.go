package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
)

// Guard пересчитывает и фиксирует сумму списания в момент перехода.
// Сумма всегда derived на сервере: запрошенная клиентом сумма не участвует
// ни в одном решении о capture.
type Guard struct {
	store     Store
	provider  Provider
	fares     FareCalculator
	txManager TxManager
	epsilon   entities.Money
}

func New(
	store Store,
	provider Provider,
	fares FareCalculator,
	txManager TxManager,
	epsilon entities.Money,
) *Guard {
	return &Guard{
		store:     store,
		provider:  provider,
		fares:     fares,
		txManager: txManager,
		epsilon:   epsilon,
	}
}

// AuthorizeCharge проводит capture на сумму delivery.Fare.Total.
// Порядок строгий: replay-проверка ключа -> tamper-проверка тарифа ->
// резервация ключа через CAS -> внешний вызов -> финализация через CAS.
func (g *Guard) AuthorizeCharge(ctx context.Context, d *entities.Delivery, idempotencyKey string) (*entities.ChargeResult, error) {
	if strings.TrimSpace(idempotencyKey) == "" {
		return nil, ErrInvalidIdempotencyKey
	}

	amount := d.Fare.Total

	if record, seen := d.Charges[idempotencyKey]; seen {
		switch record.Outcome {
		case entities.ChargeCaptured, entities.ChargeDeclined:
			// Повтор с тем же ключом: отдаем записанный результат,
			// провайдера не трогаем.
			return &entities.ChargeResult{
				DeliveryID:     d.ID,
				IdempotencyKey: idempotencyKey,
				Amount:         record.Amount,
				Outcome:        record.Outcome,
				ProviderRef:    record.ProviderRef,
				Replayed:       true,
			}, nil
		case entities.ChargePending:
			// Резервация пережила таймаут предыдущего запроса.
			// Вызов провайдера с тем же ключом безопасен.
			return g.settle(ctx, d, idempotencyKey, record.Amount)
		}
	}

	if err := g.checkFareIntegrity(ctx, d); err != nil {
		return nil, err
	}

	if err := g.reserve(ctx, d, idempotencyKey, amount); err != nil {
		return nil, fmt.Errorf("reserve idempotency key: %w", err)
	}

	return g.settle(ctx, d, idempotencyKey, amount)
}

// checkFareIntegrity сверяет записанный fare с тем, что Fare Calculator
// выдал бы сейчас для сохраненного маршрута и класса ТС. Расхождение
// сверх epsilon — возможная порча записи или stale клиент.
func (g *Guard) checkFareIntegrity(ctx context.Context, d *entities.Delivery) error {
	current, err := g.fares.Quote(ctx, d.Pickup, d.Dropoff, d.VehicleClass)
	if err != nil {
		return fmt.Errorf("recompute fare: %w", err)
	}

	diff := current.Total - d.Fare.Total
	if diff < 0 {
		diff = -diff
	}
	if diff > g.epsilon {
		return fmt.Errorf("%w: stored and derived fares diverge beyond tolerance", ErrFareMismatch)
	}
	return nil
}

// reserve пишет pending-запись по ключу той же CAS-записью, что инкрементит
// version. Резервация остаётся при любом исходе кроме определенного отказа.
func (g *Guard) reserve(ctx context.Context, d *entities.Delivery, key string, amount entities.Money) error {
	record := entities.ChargeRecord{
		Amount:    amount,
		Outcome:   entities.ChargePending,
		CreatedAt: time.Now().UTC(),
	}

	expected := d.Version
	err := g.txManager.Do(ctx, func(ctx context.Context) error {
		if err := g.store.UpdateCAS(ctx, d, expected); err != nil {
			return err
		}
		return g.store.UpsertCharge(ctx, d.ID, key, record)
	})
	if err != nil {
		return err
	}

	if d.Charges == nil {
		d.Charges = make(map[string]entities.ChargeRecord, 1)
	}
	d.Charges[key] = record
	return nil
}

func (g *Guard) settle(ctx context.Context, d *entities.Delivery, key string, amount entities.Money) (*entities.ChargeResult, error) {
	providerRef, err := g.provider.Charge(ctx, amount, key)
	switch {
	case err == nil:
		// ok
	case isDeclined(err):
		// Провайдер определенно сообщил: списания не было.
		// Только в этом случае резервацию можно откатить.
		if rollbackErr := g.rollbackReservation(ctx, d, key); rollbackErr != nil {
			return nil, fmt.Errorf("rollback declined reservation: %w", rollbackErr)
		}
		return nil, ErrChargeDeclined
	default:
		// Таймаут или неоднозначный ответ: списание могло пройти.
		// Резервация остается, кейс уходит на ручную сверку.
		return nil, fmt.Errorf("%w: %s", ErrPaymentIndeterminate, err)
	}

	record := entities.ChargeRecord{
		Amount:      amount,
		Outcome:     entities.ChargeCaptured,
		ProviderRef: providerRef,
		CreatedAt:   d.Charges[key].CreatedAt,
	}

	d.PaymentState = entities.PaymentCaptured
	expected := d.Version
	err = g.txManager.Do(ctx, func(ctx context.Context) error {
		if err := g.store.UpdateCAS(ctx, d, expected); err != nil {
			return err
		}
		return g.store.UpsertCharge(ctx, d.ID, key, record)
	})
	if err != nil {
		return nil, fmt.Errorf("finalize capture: %w", err)
	}
	d.Charges[key] = record

	return &entities.ChargeResult{
		DeliveryID:     d.ID,
		IdempotencyKey: key,
		Amount:         amount,
		Outcome:        entities.ChargeCaptured,
		ProviderRef:    providerRef,
	}, nil
}

func (g *Guard) rollbackReservation(ctx context.Context, d *entities.Delivery, key string) error {
	expected := d.Version
	err := g.txManager.Do(ctx, func(ctx context.Context) error {
		if err := g.store.UpdateCAS(ctx, d, expected); err != nil {
			return err
		}
		return g.store.DeleteCharge(ctx, d.ID, key)
	})
	if err != nil {
		return err
	}
	delete(d.Charges, key)
	return nil
}

// Refund запрашивает возврат у провайдера по последнему captured-чарджу.
func (g *Guard) Refund(ctx context.Context, d *entities.Delivery) error {
	var ref string
	var amount entities.Money
	for _, record := range d.Charges {
		if record.Outcome == entities.ChargeCaptured {
			ref = record.ProviderRef
			amount = record.Amount
			break
		}
	}
	if ref == "" {
		// AUTHORIZED без captured-чарджа: возвращать нечего у провайдера.
		return nil
	}

	if err := g.provider.Refund(ctx, ref, amount); err != nil {
		return fmt.Errorf("provider refund: %w", err)
	}
	return nil
}

// ParseConfirmation верифицирует подпись провайдера и только потом
// разбирает payload. Неверифицируемое подтверждение никогда не применяется.
func (g *Guard) ParseConfirmation(payload []byte, signature string) (*entities.PaymentConfirmation, error) {
	if !g.provider.VerifySignature(payload, signature) {
		return nil, ErrInvalidSignature
	}

	var body struct {
		DeliveryID  string `json:"delivery_id"`
		Kind        string `json:"kind"`
		Amount      int64  `json:"amount"`
		ProviderRef string `json:"provider_ref"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("decode confirmation payload: %w", err)
	}

	return &entities.PaymentConfirmation{
		DeliveryID:  body.DeliveryID,
		Kind:        entities.ConfirmationKind(body.Kind),
		Amount:      entities.Money(body.Amount),
		ProviderRef: body.ProviderRef,
	}, nil
}

// ApplyConfirmation продвигает paymentState по верифицированному
// асинхронному подтверждению. CAPTURED возможен только при статусе
// от ACCEPTED и сумме, равной записанному fare.
func (g *Guard) ApplyConfirmation(ctx context.Context, conf *entities.PaymentConfirmation) error {
	d, err := g.store.GetByID(ctx, conf.DeliveryID)
	if err != nil {
		return fmt.Errorf("load delivery: %w", err)
	}

	expected := d.Version

	switch conf.Kind {
	case entities.ConfirmationCaptured:
		if !statusAtOrBeyondAccepted(d.Status) {
			return fmt.Errorf("%w: status %s", ErrPaymentNotCapturable, d.Status)
		}
		if conf.Amount != d.Fare.Total {
			return fmt.Errorf("%w: confirmed amount differs from stored fare", ErrFareMismatch)
		}
		d.PaymentState = entities.PaymentCaptured
		return g.txManager.Do(ctx, func(ctx context.Context) error {
			if err := g.store.UpdateCAS(ctx, d, expected); err != nil {
				return err
			}
			if key, record, ok := pendingChargeByRefOrAmount(d, conf); ok {
				record.Outcome = entities.ChargeCaptured
				record.ProviderRef = conf.ProviderRef
				return g.store.UpsertCharge(ctx, d.ID, key, record)
			}
			return nil
		})

	case entities.ConfirmationRefunded:
		d.PaymentState = entities.PaymentRefunded
		return g.txManager.Do(ctx, func(ctx context.Context) error {
			return g.store.UpdateCAS(ctx, d, expected)
		})

	case entities.ConfirmationFailed:
		// Определенный отказ: снимаем подвисшую резервацию, если есть.
		key, _, ok := pendingChargeByRefOrAmount(d, conf)
		if !ok {
			return nil
		}
		return g.txManager.Do(ctx, func(ctx context.Context) error {
			if err := g.store.UpdateCAS(ctx, d, expected); err != nil {
				return err
			}
			return g.store.DeleteCharge(ctx, d.ID, key)
		})

	default:
		return fmt.Errorf("unknown confirmation kind %q", conf.Kind)
	}
}

// isDeclined: гейтвей провайдера маппит определенный отказ в ErrChargeDeclined.
func isDeclined(err error) bool {
	return errors.Is(err, ErrChargeDeclined)
}

func pendingChargeByRefOrAmount(d *entities.Delivery, conf *entities.PaymentConfirmation) (string, entities.ChargeRecord, bool) {
	for key, record := range d.Charges {
		if record.Outcome != entities.ChargePending {
			continue
		}
		if record.ProviderRef == conf.ProviderRef || record.Amount == conf.Amount {
			return key, record, true
		}
	}
	return "", entities.ChargeRecord{}, false
}

func statusAtOrBeyondAccepted(s entities.DeliveryStatus) bool {
	switch s {
	case entities.DeliveryAccepted, entities.DeliveryPickedUp, entities.DeliveryInTransit, entities.DeliveryDelivered:
		return true
	default:
		return false
	}
}
