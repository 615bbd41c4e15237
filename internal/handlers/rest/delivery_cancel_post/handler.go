package delivery_cancel_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/auth"
)

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
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	deliveryID := mux.Vars(r)["id"]

	// Тело опционально: отмена без причины легальна.
	var cancelDTO dto.DeliveryCancelRequest
	err := json.NewDecoder(r.Body).Decode(&cancelDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryEntity, err := h.service.Cancel(r.Context(), identity, deliveryID, cancelDTO.Reason)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, respond.DeliveryToDTO(deliveryEntity))
}
