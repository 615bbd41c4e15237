package delivery

import "time"

type DeliveryDB struct {
	ID                  string
	Status              string
	CustomerID          string
	DriverID            *string
	PickupLat           float64
	PickupLon           float64
	DropoffLat          float64
	DropoffLon          float64
	VehicleClass        string
	FareBase            int64
	FareDistance        int64
	FareMargin          int64
	FareTotal           int64
	FareDistanceMeters  int64
	FareDurationSeconds int64
	PaymentState        string
	Version             int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type TransitionDB struct {
	DeliveryID string
	FromStatus string
	ToStatus   string
	ActorID    string
	OccurredAt time.Time
}

type ChargeDB struct {
	DeliveryID     string
	IdempotencyKey string
	Amount         int64
	Outcome        string
	ProviderRef    string
	CreatedAt      time.Time
}
