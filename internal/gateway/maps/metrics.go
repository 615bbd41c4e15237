package maps

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RouteRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_gateway_retries_total",
			Help: "Total number of routing gateway retry attempts",
		},
		[]string{"service", "method", "outcome"},
	)

	RouteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "route_gateway_request_duration_seconds",
			Help:    "Duration of routing gateway requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "outcome"},
	)
)

func (g *RouteGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := outcomeLabel(err)
	RouteRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		RouteRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
