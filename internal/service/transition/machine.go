package transition

import (
	"fmt"

	"dispatch/internal/entities"
)

// edge описывает единственный легальный переход для пары (status, action)
// и роли, которым он разрешен. Generic-операции "установить статус X" нет
// умышленно: skip-state и out-of-order переходы невозможны по построению.
type edge struct {
	to    entities.DeliveryStatus
	roles map[entities.Role]struct{}
}

type Machine struct {
	edges map[entities.DeliveryStatus]map[entities.DeliveryAction]edge
}

func New() *Machine {
	driverOnly := roleSet(entities.RoleDriver)
	// cancel — отдельное всегда доступное до терминала ребро,
	// а не спецслучай happy path.
	cancelRoles := roleSet(entities.RoleCustomer, entities.RoleDriver, entities.RoleAdmin)

	return &Machine{
		edges: map[entities.DeliveryStatus]map[entities.DeliveryAction]edge{
			entities.DeliveryCreated: {
				entities.ActionAccept: {to: entities.DeliveryAccepted, roles: driverOnly},
				entities.ActionCancel: {to: entities.DeliveryCancelled, roles: cancelRoles},
			},
			entities.DeliveryAccepted: {
				entities.ActionPickup: {to: entities.DeliveryPickedUp, roles: driverOnly},
				entities.ActionCancel: {to: entities.DeliveryCancelled, roles: cancelRoles},
			},
			entities.DeliveryPickedUp: {
				entities.ActionStart:  {to: entities.DeliveryInTransit, roles: driverOnly},
				entities.ActionCancel: {to: entities.DeliveryCancelled, roles: cancelRoles},
			},
			entities.DeliveryInTransit: {
				entities.ActionComplete: {to: entities.DeliveryDelivered, roles: driverOnly},
			},
		},
	}
}

// CanTransition возвращает единственный целевой статус для (current, action)
// или ошибку. Отсутствующее в таблице ребро — ErrIllegalTransition, оно
// отличимо от отказа по ownership. Терминальные статусы отклоняют всё.
func (m *Machine) CanTransition(
	current entities.DeliveryStatus,
	action entities.DeliveryAction,
	role entities.Role,
) (entities.DeliveryStatus, error) {
	if current.IsTerminal() {
		return "", fmt.Errorf("%w: delivery is %s", ErrIllegalTransition, current)
	}

	actions, ok := m.edges[current]
	if !ok {
		return "", fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, current)
	}

	target, ok := actions[action]
	if !ok {
		return "", fmt.Errorf("%w: %s is not allowed from %s", ErrIllegalTransition, action, current)
	}

	if _, ok := target.roles[role]; !ok {
		return "", fmt.Errorf("%w: role %s may not %s", ErrRoleInsufficient, role, action)
	}

	return target.to, nil
}

func roleSet(roles ...entities.Role) map[entities.Role]struct{} {
	set := make(map[entities.Role]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}
