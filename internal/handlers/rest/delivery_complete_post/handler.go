package delivery_complete_post

import (
	"net/http"

	"github.com/gorilla/mux"

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

	deliveryEntity, err := h.service.Complete(r.Context(), identity, deliveryID)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, respond.DeliveryToDTO(deliveryEntity))
}
