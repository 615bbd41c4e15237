//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maps_test
package maps

import (
	"context"

	gmaps "googlemaps.github.io/maps"
)

type client interface {
	Directions(ctx context.Context, r *gmaps.DirectionsRequest) ([]gmaps.Route, []gmaps.GeocodedWaypoint, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
