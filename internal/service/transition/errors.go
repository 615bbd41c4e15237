package transition

import "errors"

var (
	ErrIllegalTransition = errors.New("illegal transition")
	ErrRoleInsufficient  = errors.New("role insufficient")
)
