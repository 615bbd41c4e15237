package delivery_post

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/entities"
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

	var createDTO dto.DeliveryCreateRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pickup := entities.Location{Lat: createDTO.PickupLat, Lon: createDTO.PickupLon}
	dropoff := entities.Location{Lat: createDTO.DropoffLat, Lon: createDTO.DropoffLon}

	deliveryEntity, err := h.service.Create(r.Context(), identity, pickup, dropoff, entities.VehicleClass(createDTO.VehicleClass))
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, respond.DeliveryToDTO(deliveryEntity))
}
