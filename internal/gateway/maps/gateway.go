package maps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	gmaps "googlemaps.github.io/maps"
	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "google-maps"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// RouteGateway оценивает маршрут через Google Maps Directions API.
type RouteGateway struct {
	client  client
	retrier retrier
}

func New(apiKey string) (*RouteGateway, error) {
	mapsClient, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gateway maps, create client: %w", err)
	}

	return newWithClient(mapsClient), nil
}

func newWithClient(c client) *RouteGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &RouteGateway{
		client:  c,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *RouteGateway) Route(ctx context.Context, pickup, dropoff entities.Location) (*entities.RouteEstimate, error) {
	req := &gmaps.DirectionsRequest{
		Origin:      formatLatLng(pickup),
		Destination: formatLatLng(dropoff),
		Mode:        gmaps.TravelModeDriving,
	}

	var routes []gmaps.Route

	err := g.executeWithMetrics(ctx, "Directions", func(ctx context.Context) error {
		var err error
		routes, _, err = g.client.Directions(ctx, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway maps, directions: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, ErrNoRoute
	}

	var (
		meters   int64
		duration time.Duration
	)
	for _, leg := range routes[0].Legs {
		meters += int64(leg.Distance.Meters)
		duration += leg.Duration
	}

	return &entities.RouteEstimate{
		DistanceMeters: meters,
		Duration:       duration,
	}, nil
}

func formatLatLng(l entities.Location) string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lon, 'f', -1, 64)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	// Отмену контекста бессмысленно ретраить, остальное считаем транзиентным.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
