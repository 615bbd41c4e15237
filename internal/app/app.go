package app

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"dispatch/internal/entities"
	auditGateway "dispatch/internal/gateway/audit"
	driversGateway "dispatch/internal/gateway/drivers"
	mapsGateway "dispatch/internal/gateway/maps"
	paymentsGateway "dispatch/internal/gateway/payments"
	"dispatch/internal/handlers/rest/delivery_accept_post"
	"dispatch/internal/handlers/rest/delivery_cancel_post"
	"dispatch/internal/handlers/rest/delivery_complete_post"
	"dispatch/internal/handlers/rest/delivery_get"
	"dispatch/internal/handlers/rest/delivery_payment_post"
	"dispatch/internal/handlers/rest/delivery_pickup_post"
	"dispatch/internal/handlers/rest/delivery_post"
	"dispatch/internal/handlers/rest/delivery_start_post"
	"dispatch/internal/handlers/rest/payment_webhook_post"
	"dispatch/internal/handlers/tasks/payment_reconcile"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/fare_quote"
	deliveryRepo "dispatch/internal/repository/delivery"
	lifecycleService "dispatch/internal/service/lifecycle"
	ownershipService "dispatch/internal/service/ownership"
	paymentService "dispatch/internal/service/payment"
	transitionService "dispatch/internal/service/transition"
	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceLifecycle  ServiceLifecycle
	BackgroundWorkers *background.Worker
}

type ServiceLifecycle interface {
	delivery_post.Service
	delivery_get.Service
	delivery_accept_post.Service
	delivery_pickup_post.Service
	delivery_start_post.Service
	delivery_complete_post.Service
	delivery_cancel_post.Service
	delivery_payment_post.Service
	payment_webhook_post.Service
}

type KafkaWorkerApp struct {
	ServiceLifecycle *lifecycleService.Engine
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideOwnershipGuard() *ownershipService.Guard {
	return ownershipService.New()
}

func provideTransitionMachine() *transitionService.Machine {
	return transitionService.New()
}

func providePaymentProviderGateway(cfg *config.Config) *paymentsGateway.ProviderGateway {
	return paymentsGateway.New(
		cfg.Payments.ProviderURL,
		cfg.Payments.WebhookSecret,
		cfg.Payments.ProviderTimeout,
	)
}

func provideFareQuoteFactory(routeGateway *mapsGateway.RouteGateway) *fare_quote.FareQuoteFactory {
	return fare_quote.New(routeGateway)
}

func provideDriverRegistry(redisClient *redis.Client) *driversGateway.Registry {
	return driversGateway.New(redisClient)
}

func providePaymentGuard(
	repository *deliveryRepo.Repository,
	provider *paymentsGateway.ProviderGateway,
	fares *fare_quote.FareQuoteFactory,
	txManager *tx.Manager,
	cfg *config.Config,
) *paymentService.Guard {
	return paymentService.New(
		repository,
		provider,
		fares,
		txManager,
		entities.Money(cfg.Payments.FareEpsilonMinorUnits),
	)
}

func provideLifecycleEngine(
	log logger.Logger,
	repository *deliveryRepo.Repository,
	ownershipGuard *ownershipService.Guard,
	machine *transitionService.Machine,
	payments *paymentService.Guard,
	fares *fare_quote.FareQuoteFactory,
	drivers *driversGateway.Registry,
	auditProducer *auditGateway.Producer,
	txManager *tx.Manager,
	cfg *config.Config,
) *lifecycleService.Engine {
	return lifecycleService.New(
		log,
		repository,
		ownershipGuard,
		machine,
		payments,
		fares,
		drivers,
		auditProducer,
		txManager,
		cfg.Tasks.PaymentReconcileAfter,
	)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.PaymentReconcileInterval)
}

func providePaymentReconcileTask(
	log logger.Logger,
	lifecycleService payment_reconcile.Service,
	interval ReconcileInterval,
) *payment_reconcile.PaymentReconcile {
	return payment_reconcile.NewPaymentReconcile(log, lifecycleService, time.Duration(interval))
}

func provideTaskList(
	paymentReconcileTask *payment_reconcile.PaymentReconcile,
) []background.Task {
	return []background.Task{
		paymentReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
