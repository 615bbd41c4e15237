package ownership

import (
	"fmt"

	"dispatch/internal/entities"
)

type Relation string

const (
	IsCustomer       Relation = "is_customer"
	IsAssignedDriver Relation = "is_assigned_driver"
	IsAdmin          Relation = "is_admin"
	IsAnyAssignedParty Relation = "is_any_assigned_party"
)

// Grant возвращается при успешной авторизации. AdminOverride помечает
// break-glass доступ администратора для усиленного аудита.
type Grant struct {
	AdminOverride bool
}

type Guard struct{}

func New() *Guard {
	return &Guard{}
}

// Authorize решает, состоит ли identity в требуемом отношении к записи.
// Проверка идет строго по полям записи (customerId, driverId), никогда
// по полям из тела запроса. Причина отказа специфична для Audit Sink,
// наружу все отказы схлопываются в единый forbidden (см. handlers).
func (g *Guard) Authorize(identity entities.Identity, d *entities.Delivery, required Relation) (Grant, error) {
	if identity.Role == entities.RoleAdmin {
		return Grant{AdminOverride: true}, nil
	}

	switch required {
	case IsCustomer:
		if identity.Role != entities.RoleCustomer {
			return Grant{}, fmt.Errorf("%w: role %s", ErrRoleInsufficient, identity.Role)
		}
		if d.CustomerID != identity.ActorID {
			return Grant{}, ErrNotOwner
		}
		return Grant{}, nil

	case IsAssignedDriver:
		if identity.Role != entities.RoleDriver {
			return Grant{}, fmt.Errorf("%w: role %s", ErrRoleInsufficient, identity.Role)
		}
		if d.DriverID == nil || *d.DriverID != identity.ActorID {
			return Grant{}, ErrNotAssigned
		}
		return Grant{}, nil

	case IsAdmin:
		// Не-админ сюда уже не попадает.
		return Grant{}, fmt.Errorf("%w: role %s", ErrRoleInsufficient, identity.Role)

	case IsAnyAssignedParty:
		if identity.Role == entities.RoleCustomer && d.CustomerID == identity.ActorID {
			return Grant{}, nil
		}
		if identity.Role == entities.RoleDriver && d.DriverID != nil && *d.DriverID == identity.ActorID {
			return Grant{}, nil
		}
		if identity.Role == entities.RoleCustomer {
			return Grant{}, ErrNotOwner
		}
		return Grant{}, ErrNotAssigned

	default:
		return Grant{}, fmt.Errorf("%w: unknown relation %q", ErrRoleInsufficient, required)
	}
}
