package delivery_payment_post

import (
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/auth"
)

const headerIdempotencyKey = "Idempotency-Key"

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

// ServeHTTP не читает тело запроса: сумма списания всегда выводится из
// записи доставки на сервере, клиент управляет только Idempotency-Key.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	deliveryID := mux.Vars(r)["id"]
	idempotencyKey := r.Header.Get(headerIdempotencyKey)

	result, err := h.service.AuthorizePayment(r.Context(), identity, deliveryID, idempotencyKey)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, toDTO(result))
}

func toDTO(result *entities.ChargeResult) dto.PaymentAuthorizeResponse {
	return dto.PaymentAuthorizeResponse{
		DeliveryID:     result.DeliveryID,
		IdempotencyKey: result.IdempotencyKey,
		Amount:         int64(result.Amount),
		Outcome:        string(result.Outcome),
		ProviderRef:    result.ProviderRef,
		Replayed:       result.Replayed,
	}
}
