package lifecycle

import (
	"errors"

	"dispatch/internal/service/ownership"
	"dispatch/internal/service/transition"
)

var (
	ErrInvalidLocation     = errors.New("invalid location")
	ErrInvalidVehicleClass = errors.New("invalid vehicle class")
	ErrInvalidDeliveryID   = errors.New("invalid delivery id")

	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrDriverUnavailable = errors.New("driver is not available")

	// ErrContention — CAS не прошла и после единственного автоматического
	// ретрая. Транзиентная, вызывающий может повторить запрос.
	ErrContention = errors.New("delivery contention")
)

// IsForbidden собирает все отказы, которые наружу отдаются единым generic
// forbidden. Неизвестный ID схлопывается туда же: различимые ответы
// "нет записи" и "не ваша запись" раскрывали бы существование ID.
func IsForbidden(err error) bool {
	return ownership.IsAuthzError(err) ||
		errors.Is(err, transition.ErrRoleInsufficient) ||
		errors.Is(err, ErrDeliveryNotFound)
}
