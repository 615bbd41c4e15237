package delivery

import (
	"time"

	"dispatch/internal/entities"
)

func ToDomain(d *DeliveryDB, transitions []TransitionDB, charges []ChargeDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	delivery := &entities.Delivery{
		ID:           d.ID,
		Status:       entities.DeliveryStatus(d.Status),
		CustomerID:   d.CustomerID,
		DriverID:     d.DriverID,
		Pickup:       entities.Location{Lat: d.PickupLat, Lon: d.PickupLon},
		Dropoff:      entities.Location{Lat: d.DropoffLat, Lon: d.DropoffLon},
		VehicleClass: entities.VehicleClass(d.VehicleClass),
		Fare: entities.FareBreakdown{
			Base:           entities.Money(d.FareBase),
			Distance:       entities.Money(d.FareDistance),
			Margin:         entities.Money(d.FareMargin),
			Total:          entities.Money(d.FareTotal),
			DistanceMeters: d.FareDistanceMeters,
			Duration:       time.Duration(d.FareDurationSeconds) * time.Second,
		},
		PaymentState: entities.PaymentState(d.PaymentState),
		Charges:      make(map[string]entities.ChargeRecord, len(charges)),
		Version:      d.Version,
		Transitions:  make([]entities.Transition, 0, len(transitions)),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}

	for _, t := range transitions {
		delivery.Transitions = append(delivery.Transitions, entities.Transition{
			From:    entities.DeliveryStatus(t.FromStatus),
			To:      entities.DeliveryStatus(t.ToStatus),
			ActorID: t.ActorID,
			At:      t.OccurredAt,
		})
	}

	for _, c := range charges {
		delivery.Charges[c.IdempotencyKey] = entities.ChargeRecord{
			Amount:      entities.Money(c.Amount),
			Outcome:     entities.ChargeOutcome(c.Outcome),
			ProviderRef: c.ProviderRef,
			CreatedAt:   c.CreatedAt,
		}
	}

	return delivery
}

func FromDomain(d *entities.Delivery) *DeliveryDB {
	if d == nil {
		return nil
	}
	return &DeliveryDB{
		ID:                  d.ID,
		Status:              d.Status.String(),
		CustomerID:          d.CustomerID,
		DriverID:            d.DriverID,
		PickupLat:           d.Pickup.Lat,
		PickupLon:           d.Pickup.Lon,
		DropoffLat:          d.Dropoff.Lat,
		DropoffLon:          d.Dropoff.Lon,
		VehicleClass:        d.VehicleClass.String(),
		FareBase:            int64(d.Fare.Base),
		FareDistance:        int64(d.Fare.Distance),
		FareMargin:          int64(d.Fare.Margin),
		FareTotal:           int64(d.Fare.Total),
		FareDistanceMeters:  d.Fare.DistanceMeters,
		FareDurationSeconds: int64(d.Fare.Duration / time.Second),
		PaymentState:        d.PaymentState.String(),
		Version:             d.Version,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}
