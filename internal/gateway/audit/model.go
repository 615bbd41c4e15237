package audit

import (
	"time"

	"dispatch/internal/entities"
)

type eventMessage struct {
	ID            string    `json:"id"`
	DeliveryID    string    `json:"delivery_id"`
	ActorID       string    `json:"actor_id"`
	Role          string    `json:"role"`
	Action        string    `json:"action"`
	Outcome       string    `json:"outcome"`
	Reason        string    `json:"reason,omitempty"`
	Severity      string    `json:"severity"`
	AdminOverride bool      `json:"admin_override"`
	At            time.Time `json:"at"`
}

func fromDomain(event entities.AuditEvent) eventMessage {
	return eventMessage{
		ID:            event.ID,
		DeliveryID:    event.DeliveryID,
		ActorID:       event.ActorID,
		Role:          string(event.Role),
		Action:        event.Action,
		Outcome:       event.Outcome,
		Reason:        event.Reason,
		Severity:      string(event.Severity),
		AdminOverride: event.AdminOverride,
		At:            event.At,
	}
}
