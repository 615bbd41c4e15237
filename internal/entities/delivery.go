package entities

import "time"

type Delivery struct {
	ID           string
	Status       DeliveryStatus
	CustomerID   string
	DriverID     *string
	Pickup       Location
	Dropoff      Location
	VehicleClass VehicleClass
	Fare         FareBreakdown
	PaymentState PaymentState
	Charges      map[string]ChargeRecord
	Version      int64
	Transitions  []Transition
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DeliveryStatus string

const (
	DeliveryCreated   DeliveryStatus = "created"
	DeliveryAccepted  DeliveryStatus = "accepted"
	DeliveryPickedUp  DeliveryStatus = "picked_up"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

// IsTerminal сообщает, что из статуса больше нет легальных переходов.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

type DeliveryAction string

const (
	ActionAccept   DeliveryAction = "accept"
	ActionPickup   DeliveryAction = "pickup"
	ActionStart    DeliveryAction = "start"
	ActionComplete DeliveryAction = "complete"
	ActionCancel   DeliveryAction = "cancel"
)

func (a DeliveryAction) String() string {
	return string(a)
}

type VehicleClass string

const (
	VehicleBike VehicleClass = "bike"
	VehicleCar  VehicleClass = "car"
	VehicleVan  VehicleClass = "van"
)

const DefaultVehicleClass = VehicleBike

func (v VehicleClass) String() string {
	return string(v)
}

type Location struct {
	Lat float64
	Lon float64
}

// Transition — одна принятая смена статуса. Лог переходов append-only:
// записи никогда не переписываются, читается в порядке version.
type Transition struct {
	From    DeliveryStatus
	To      DeliveryStatus
	ActorID string
	At      time.Time
}
