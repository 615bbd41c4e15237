package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		PaymentReconcileInterval time.Duration
		// PaymentReconcileAfter — возраст pending-резервации, после которого
		// она считается зависшей и попадает в сверку.
		PaymentReconcileAfter time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Auth struct {
		JWTSigningKey string
		JWTIssuer     string
	}

	Payments struct {
		ProviderURL     string
		ProviderTimeout time.Duration
		WebhookSecret   string
		// FareEpsilonMinorUnits — допустимое расхождение тарифа при tamper
		// check. 0 означает точное совпадение.
		FareEpsilonMinorUnits int64
	}

	Maps struct {
		APIKey string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Kafka struct {
		PortHealthcheck    string
		Brokers            string
		AuditTopic         string
		ConfirmationsTopic string
		ConsumerGroup      string
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PaymentConfirmation PaymentConfirmation
	}

	PaymentConfirmation struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Auth     Auth
		Payments Payments
		Maps     Maps
		Redis    Redis
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	reconcileInterval, err := osGetEnvDuration("BACKGROUND_PAYMENT_RECONCILE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reconcileAfter, err := osGetEnvDuration("BACKGROUND_PAYMENT_RECONCILE_AFTER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	confirmationTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PAYMENT_CONFIRMATION_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	providerTimeout, err := osGetEnvDuration("PAYMENT_PROVIDER_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	fareEpsilon, err := osGetInt64("PAYMENT_FARE_EPSILON_MINOR_UNITS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			PaymentReconcileInterval: reconcileInterval,
			PaymentReconcileAfter:    reconcileAfter,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Auth: Auth{
			JWTSigningKey: os.Getenv("AUTH_JWT_SIGNING_KEY"),
			JWTIssuer:     os.Getenv("AUTH_JWT_ISSUER"),
		},
		Payments: Payments{
			ProviderURL:           os.Getenv("PAYMENT_PROVIDER_URL"),
			ProviderTimeout:       providerTimeout,
			WebhookSecret:         os.Getenv("PAYMENT_WEBHOOK_SECRET"),
			FareEpsilonMinorUnits: fareEpsilon,
		},
		Maps: Maps{
			APIKey: os.Getenv("MAPS_API_KEY"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Kafka: Kafka{
			Brokers:            os.Getenv("KAFKA_BROKERS"),
			AuditTopic:         os.Getenv("KAFKA_AUDIT_TOPIC"),
			ConfirmationsTopic: os.Getenv("KAFKA_CONFIRMATIONS_TOPIC"),
			ConsumerGroup:      os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:    os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PaymentConfirmation: PaymentConfirmation{
					ProcessTimeout: confirmationTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Auth.JWTSigningKey == "" {
		return errors.New("AUTH_JWT_SIGNING_KEY is required")
	}
	if cfg.Auth.JWTIssuer == "" {
		return errors.New("AUTH_JWT_ISSUER is required")
	}

	if cfg.Payments.ProviderURL == "" {
		return errors.New("PAYMENT_PROVIDER_URL is required")
	}
	if cfg.Payments.ProviderTimeout == time.Duration(0) {
		return errors.New("PAYMENT_PROVIDER_TIMEOUT is required")
	}
	if cfg.Payments.WebhookSecret == "" {
		return errors.New("PAYMENT_WEBHOOK_SECRET is required")
	}
	if cfg.Payments.FareEpsilonMinorUnits < 0 {
		return errors.New("PAYMENT_FARE_EPSILON_MINOR_UNITS must not be negative")
	}

	if cfg.Maps.APIKey == "" {
		return errors.New("MAPS_API_KEY is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Tasks.PaymentReconcileInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_INTERVAL is required")
	}
	if cfg.Tasks.PaymentReconcileAfter == time.Duration(0) {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_AFTER is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.AuditTopic == "" {
		return errors.New("KAFKA_AUDIT_TOPIC is required")
	}
	if cfg.Kafka.ConfirmationsTopic == "" {
		return errors.New("KAFKA_CONFIRMATIONS_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.PaymentConfirmation.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PAYMENT_CONFIRMATION_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
