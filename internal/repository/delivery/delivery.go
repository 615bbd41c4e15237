package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/lifecycle"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	readInitialInterval = 50 * time.Millisecond
	readMaxInterval     = 500 * time.Millisecond
	readMaxElapsedTime  = 2 * time.Second
	readRandomization   = 0.5
	readMultiplier      = 2.0
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
	// retrier только для чтений: запись ретраится ровно одним
	// version-conflict ретраем выше, слепой повтор записи опасен.
	retrier retrier
}

func New(querier Querier) *Repository {
	retryConfig := retrierconfig.Config{
		InitialInterval: readInitialInterval,
		MaxInterval:     readMaxInterval,
		MaxElapsedTime:  readMaxElapsedTime,
		Randomization:   readRandomization,
		Multiplier:      readMultiplier,
		ShouldRetry:     isRetryableRead,
	}

	return &Repository{
		querier: querier,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func isRetryableRead(err error) bool {
	return !errors.Is(err, pgx.ErrNoRows)
}

func (r *Repository) Create(ctx context.Context, deliveryEntity *entities.Delivery) error {
	model := FromDomain(deliveryEntity)

	query := `
		INSERT INTO deliveries (
			id, status, customer_id, driver_id,
			pickup_lat, pickup_lon, dropoff_lat, dropoff_lon,
			vehicle_class,
			fare_base, fare_distance, fare_margin, fare_total,
			fare_distance_meters, fare_duration_seconds,
			payment_state, version, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		model.ID,
		model.Status,
		model.CustomerID,
		model.DriverID,
		model.PickupLat,
		model.PickupLon,
		model.DropoffLat,
		model.DropoffLon,
		model.VehicleClass,
		model.FareBase,
		model.FareDistance,
		model.FareMargin,
		model.FareTotal,
		model.FareDistanceMeters,
		model.FareDurationSeconds,
		model.PaymentState,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("delivery %s already exists: %w", model.ID, err)
		}
		return fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	query := `
		SELECT
			id, status, customer_id, driver_id,
			pickup_lat, pickup_lon, dropoff_lat, dropoff_lon,
			vehicle_class,
			fare_base, fare_distance, fare_margin, fare_total,
			fare_distance_meters, fare_duration_seconds,
			payment_state, version, created_at, updated_at
		FROM deliveries
		WHERE id = $1
	`

	var model DeliveryDB
	err := r.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return r.querier.QueryRow(ctx, query, deliveryID).Scan(
			&model.ID,
			&model.Status,
			&model.CustomerID,
			&model.DriverID,
			&model.PickupLat,
			&model.PickupLon,
			&model.DropoffLat,
			&model.DropoffLon,
			&model.VehicleClass,
			&model.FareBase,
			&model.FareDistance,
			&model.FareMargin,
			&model.FareTotal,
			&model.FareDistanceMeters,
			&model.FareDurationSeconds,
			&model.PaymentState,
			&model.Version,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	transitions, err := r.getTransitions(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	charges, err := r.getCharges(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&model, transitions, charges), nil
}

// UpdateCAS применяет запись только если stored version равен expectedVersion,
// и инкрементит version той же записью. Ноль затронутых строк при существующей
// записи — проигранная гонка, repository.ErrVersionConflict.
func (r *Repository) UpdateCAS(ctx context.Context, deliveryEntity *entities.Delivery, expectedVersion int64) error {
	model := FromDomain(deliveryEntity)

	builder := qb.
		Update("deliveries").
		Set("status", model.Status).
		Set("driver_id", model.DriverID).
		Set("payment_state", model.PaymentState).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": model.ID, "version": expectedVersion}).
		Suffix("RETURNING version, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var newVersion int64
	var updatedAt time.Time
	err = r.querier.QueryRow(ctx, query, args...).Scan(&newVersion, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrVersionConflict
		}
		return fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	deliveryEntity.Version = newVersion
	deliveryEntity.UpdatedAt = updatedAt
	return nil
}

// AppendTransition пишет строку в append-only лог переходов. Строки никогда
// не обновляются и не удаляются.
func (r *Repository) AppendTransition(ctx context.Context, deliveryID string, t entities.Transition) error {
	query := `
		INSERT INTO delivery_transitions (delivery_id, from_status, to_status, actor_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(ctx, query, deliveryID, t.From.String(), t.To.String(), t.ActorID, t.At)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository append transition error: %w", err)
	}
	return nil
}

func (r *Repository) UpsertCharge(ctx context.Context, deliveryID, idempotencyKey string, record entities.ChargeRecord) error {
	query := `
		INSERT INTO delivery_charges (delivery_id, idempotency_key, amount, outcome, provider_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (delivery_id, idempotency_key)
		DO UPDATE SET outcome = EXCLUDED.outcome, provider_ref = EXCLUDED.provider_ref
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		deliveryID,
		idempotencyKey,
		int64(record.Amount),
		record.Outcome.String(),
		record.ProviderRef,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository upsert charge error: %w", err)
	}
	return nil
}

func (r *Repository) DeleteCharge(ctx context.Context, deliveryID, idempotencyKey string) error {
	query := `
		DELETE FROM delivery_charges WHERE delivery_id = $1 AND idempotency_key = $2
	`

	_, err := r.querier.Exec(ctx, query, deliveryID, idempotencyKey)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete charge error: %w", err)
	}
	return nil
}

func (r *Repository) ListPendingCharges(ctx context.Context, before time.Time) ([]entities.PendingCharge, error) {
	query := `
		SELECT delivery_id, idempotency_key, amount, created_at
		FROM delivery_charges
		WHERE outcome = 'pending' AND created_at < $1
		ORDER BY created_at ASC
	`

	var pending []entities.PendingCharge
	err := r.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		rows, err := r.querier.Query(ctx, query, before)
		if err != nil {
			return fmt.Errorf("unexpected delivery repository list pending charges error: %w", err)
		}
		defer rows.Close()

		pending = pending[:0]
		for rows.Next() {
			var charge entities.PendingCharge
			var amount int64
			if err := rows.Scan(&charge.DeliveryID, &charge.IdempotencyKey, &amount, &charge.CreatedAt); err != nil {
				return fmt.Errorf("unexpected delivery repository scan pending charge error: %w", err)
			}
			charge.Amount = entities.Money(amount)
			pending = append(pending, charge)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("unexpected delivery repository list pending charges error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pending, nil
}

func (r *Repository) getTransitions(ctx context.Context, deliveryID string) ([]TransitionDB, error) {
	query := `
		SELECT delivery_id, from_status, to_status, actor_id, occurred_at
		FROM delivery_transitions
		WHERE delivery_id = $1
		ORDER BY id ASC
	`

	var transitions []TransitionDB
	err := r.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		rows, err := r.querier.Query(ctx, query, deliveryID)
		if err != nil {
			return fmt.Errorf("unexpected delivery repository get transitions error: %w", err)
		}
		defer rows.Close()

		transitions = transitions[:0]
		for rows.Next() {
			var t TransitionDB
			if err := rows.Scan(&t.DeliveryID, &t.FromStatus, &t.ToStatus, &t.ActorID, &t.OccurredAt); err != nil {
				return fmt.Errorf("unexpected delivery repository scan transition error: %w", err)
			}
			transitions = append(transitions, t)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("unexpected delivery repository get transitions error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transitions, nil
}

func (r *Repository) getCharges(ctx context.Context, deliveryID string) ([]ChargeDB, error) {
	query := `
		SELECT delivery_id, idempotency_key, amount, outcome, COALESCE(provider_ref, ''), created_at
		FROM delivery_charges
		WHERE delivery_id = $1
	`

	var charges []ChargeDB
	err := r.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		rows, err := r.querier.Query(ctx, query, deliveryID)
		if err != nil {
			return fmt.Errorf("unexpected delivery repository get charges error: %w", err)
		}
		defer rows.Close()

		charges = charges[:0]
		for rows.Next() {
			var c ChargeDB
			if err := rows.Scan(&c.DeliveryID, &c.IdempotencyKey, &c.Amount, &c.Outcome, &c.ProviderRef, &c.CreatedAt); err != nil {
				return fmt.Errorf("unexpected delivery repository scan charge error: %w", err)
			}
			charges = append(charges, c)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("unexpected delivery repository get charges error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return charges, nil
}
