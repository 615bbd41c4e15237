// Package respond — общий маппинг доменных ошибок и сущностей в HTTP.
// Все хендлеры доставок используют одну и ту же таблицу статусов, чтобы
// отказ в доступе и несуществующий ID были неотличимы снаружи.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/lifecycle"
	"dispatch/internal/service/payment"
	"dispatch/internal/service/transition"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log handlerLogger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error пишет статус по доменной ошибке. Тела намеренно скупые:
// Forbidden не различает "чужая доставка" и "нет такой доставки".
func Error(w http.ResponseWriter, log handlerLogger, err error) {
	status, body := classify(err)
	JSON(w, log, status, body)
}

func classify(err error) (int, dto.ErrorResponse) {
	switch {
	case lifecycle.IsForbidden(err):
		return http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"}

	case errors.Is(err, lifecycle.ErrInvalidDeliveryID),
		errors.Is(err, lifecycle.ErrInvalidLocation),
		errors.Is(err, lifecycle.ErrInvalidVehicleClass),
		errors.Is(err, payment.ErrInvalidIdempotencyKey):
		return http.StatusBadRequest, dto.ErrorResponse{Error: "Bad Request"}

	case errors.Is(err, transition.ErrIllegalTransition):
		return http.StatusConflict, dto.ErrorResponse{
			Error:   "Conflict",
			Message: err.Error(),
		}

	case errors.Is(err, lifecycle.ErrDriverUnavailable):
		return http.StatusConflict, dto.ErrorResponse{
			Error:   "Conflict",
			Message: "driver is not available",
		}

	case errors.Is(err, lifecycle.ErrContention):
		return http.StatusConflict, dto.ErrorResponse{
			Error:   "Conflict",
			Message: "concurrent update, retry the request",
		}

	case errors.Is(err, payment.ErrFareMismatch),
		errors.Is(err, payment.ErrChargeDeclined):
		return http.StatusPaymentRequired, dto.ErrorResponse{
			Error:   "Payment Required",
			Message: "payment could not be completed",
		}

	case errors.Is(err, payment.ErrPaymentNotCapturable):
		return http.StatusConflict, dto.ErrorResponse{
			Error:   "Conflict",
			Message: "delivery is not payable in its current state",
		}

	case errors.Is(err, payment.ErrPaymentIndeterminate):
		return http.StatusBadGateway, dto.ErrorResponse{
			Error:   "Bad Gateway",
			Message: "payment outcome unknown, pending reconciliation",
		}

	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"}
	}
}

func DeliveryToDTO(d *entities.Delivery) dto.DeliveryResponse {
	resp := dto.DeliveryResponse{
		ID:           d.ID,
		Status:       string(d.Status),
		CustomerID:   d.CustomerID,
		DriverID:     d.DriverID,
		PickupLat:    d.Pickup.Lat,
		PickupLon:    d.Pickup.Lon,
		DropoffLat:   d.Dropoff.Lat,
		DropoffLon:   d.Dropoff.Lon,
		VehicleClass: string(d.VehicleClass),
		Fare: dto.FareBreakdown{
			Base:            int64(d.Fare.Base),
			Distance:        int64(d.Fare.Distance),
			Margin:          int64(d.Fare.Margin),
			Total:           int64(d.Fare.Total),
			DistanceMeters:  d.Fare.DistanceMeters,
			DurationSeconds: int64(d.Fare.Duration.Seconds()),
		},
		PaymentState: string(d.PaymentState),
		Version:      d.Version,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}

	return resp
}
