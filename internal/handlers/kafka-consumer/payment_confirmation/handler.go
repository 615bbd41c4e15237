package payment_confirmation

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"dispatch/internal/service/lifecycle"
	"dispatch/internal/service/payment"
	"dispatch/pkg/logger"
)

// signatureHeader — HMAC подпись тела, та же схема проверки, что у HTTP
// вебхука. Сообщение без валидной подписи логируется и пропускается.
const signatureHeader = "signature"

type Handler struct {
	lifecycleService         Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, lifecycleService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		lifecycleService:         lifecycleService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.confirmation: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.confirmation: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	msgLog := h.log.With(
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	err := h.lifecycleService.ApplyPaymentConfirmation(ctx, message.Value, extractSignature(message))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmation handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, payment.ErrInvalidSignature):
			msgLog.Warn("payment.confirmation message with invalid signature dropped")

		case errors.Is(err, lifecycle.ErrContention):
			// Проигрыш CAS гонки после ретрая: не коммитим, переиграем сообщение.
			msgLog.Warn("payment.confirmation lost version race, message will be reprocessed")
			return false

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmation handler failed to apply confirmation")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.confirmation: applied")

	sess.MarkMessage(message, "")
	return false
}

func extractSignature(message *sarama.ConsumerMessage) string {
	for _, header := range message.Headers {
		if header != nil && string(header.Key) == signatureHeader {
			return string(header.Value)
		}
	}
	return ""
}
