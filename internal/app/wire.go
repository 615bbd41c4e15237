//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	auditGateway "dispatch/internal/gateway/audit"
	mapsGateway "dispatch/internal/gateway/maps"
	"dispatch/internal/handlers/tasks/payment_reconcile"
	"dispatch/internal/pkg/config"
	lifecycleService "dispatch/internal/service/lifecycle"
	"dispatch/pkg/logger"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	auditProducer *auditGateway.Producer,
	routeGateway *mapsGateway.RouteGateway,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideDeliveryRepository,

		provideOwnershipGuard,
		provideTransitionMachine,
		providePaymentProviderGateway,
		provideFareQuoteFactory,
		provideDriverRegistry,
		providePaymentGuard,
		provideLifecycleEngine,

		providePaymentReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Engine)),
		wire.Bind(new(payment_reconcile.Service), new(*lifecycleService.Engine)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	auditProducer *auditGateway.Producer,
	routeGateway *mapsGateway.RouteGateway,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDeliveryRepository,

		provideOwnershipGuard,
		provideTransitionMachine,
		providePaymentProviderGateway,
		provideFareQuoteFactory,
		provideDriverRegistry,
		providePaymentGuard,
		provideLifecycleEngine,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
