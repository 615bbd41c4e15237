package entities

type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return true
	default:
		return false
	}
}

// Identity — проверенная пара (actor, role) из Identity Context.
// Роль берется только из верифицированного токена, никогда из тела запроса.
type Identity struct {
	ActorID string
	Role    Role
}
