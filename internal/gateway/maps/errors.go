package maps

import "errors"

var ErrNoRoute = errors.New("no route between points")
