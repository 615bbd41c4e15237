package drivers

import (
	"context"
	"fmt"
)

// Ключ общего набора доступных водителей. Несколько инстансов сервиса
// делят одно состояние через Redis.
const availableSetKey = "drivers:available"

// Registry отслеживает доступность водителей для назначения на доставку.
type Registry struct {
	client client
}

func New(client client) *Registry {
	return &Registry{client: client}
}

func (r *Registry) IsAvailable(ctx context.Context, driverID string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, availableSetKey, driverID).Result()
	if err != nil {
		return false, fmt.Errorf("gateway drivers, check %s: %w", driverID, err)
	}
	return ok, nil
}

func (r *Registry) MarkBusy(ctx context.Context, driverID string) error {
	if err := r.client.SRem(ctx, availableSetKey, driverID).Err(); err != nil {
		return fmt.Errorf("gateway drivers, mark busy %s: %w", driverID, err)
	}
	return nil
}

func (r *Registry) MarkAvailable(ctx context.Context, driverID string) error {
	if err := r.client.SAdd(ctx, availableSetKey, driverID).Err(); err != nil {
		return fmt.Errorf("gateway drivers, mark available %s: %w", driverID, err)
	}
	return nil
}
