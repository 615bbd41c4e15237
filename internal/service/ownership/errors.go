package ownership

import "errors"

// Причины отказа различимы для аудита (enumeration vs misrouted call),
// наружу не протекают.
var (
	ErrNotOwner         = errors.New("identity is not the delivery customer")
	ErrNotAssigned      = errors.New("identity is not the assigned driver")
	ErrRoleInsufficient = errors.New("role insufficient for relation")
)

// IsAuthzError группирует весь authorization-класс ошибок:
// хендлеры отдают на них единый generic forbidden, ретраев нет.
func IsAuthzError(err error) bool {
	return errors.Is(err, ErrNotOwner) ||
		errors.Is(err, ErrNotAssigned) ||
		errors.Is(err, ErrRoleInsufficient)
}
