//go:generate mockgen -source=producer.go -destination=./producer_mocks_test.go -package=audit_test
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type syncProducer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
	Close() error
}

// Producer пишет события аудита в Kafka. Ключ сообщения — delivery_id,
// чтобы события одной доставки попадали в одну партицию по порядку.
type Producer struct {
	log      logger.Logger
	producer syncProducer
	topic    string
}

func NewSaramaConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true

	return cfg, nil
}

func NewProducer(log logger.Logger, brokers []string, topic, kafkaVersion string) (*Producer, error) {
	saramaConfig, err := NewSaramaConfig(kafkaVersion)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	auditLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", topic),
	)

	return &Producer{
		log:      auditLog,
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *Producer) Record(ctx context.Context, event entities.AuditEvent) error {
	payload, err := json.Marshal(fromDomain(event))
	if err != nil {
		return fmt.Errorf("gateway audit, marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.DeliveryID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("gateway audit, send event %s: %w", event.ID, err)
	}

	p.log.Info("audit event recorded",
		logger.NewField("event_id", event.ID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)

	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
