package payment_webhook_post

import (
	"errors"
	"io"
	"net/http"

	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/service/payment"
	"dispatch/pkg/logger"
)

const headerProviderSignature = "X-Provider-Signature"

// Вебхук не за auth middleware: провайдер аутентифицируется HMAC подписью
// тела, а не Bearer токеном.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	signature := r.Header.Get(headerProviderSignature)

	err = h.service.ApplyPaymentConfirmation(r.Context(), payload, signature)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			h.log.With(
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("webhook with invalid signature dropped")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		respond.Error(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
