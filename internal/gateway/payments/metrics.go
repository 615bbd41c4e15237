package payments

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_gateway_retries_total",
			Help: "Total number of payment gateway retry attempts",
		},
		[]string{"service", "method", "outcome"},
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_gateway_request_duration_seconds",
			Help:    "Duration of payment gateway requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "outcome"},
	)
)

func (g *ProviderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := outcomeLabel(err)
	ProviderRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		ProviderRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
