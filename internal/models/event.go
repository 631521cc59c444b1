package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventIncidentCreated    = "incident.created"
	EventStatusChanged      = "incident.status_changed"
	EventIncidentReassigned = "incident.reassigned"
)

// IncidentEvent - событие об изменении инцидента для внешних подписчиков
type IncidentEvent struct {
	ID         uuid.UUID     `json:"id"`
	Kind       string        `json:"kind"`
	IncidentID string        `json:"incident_id"`
	Type       EmergencyType `json:"type"`
	Status     Status        `json:"status"`
	Message    string        `json:"message,omitempty"`
	Responder  string        `json:"responder_id,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

// NewIncidentEvent собирает событие по текущему состоянию инцидента
func NewIncidentEvent(kind string, incident *Incident, message string) IncidentEvent {
	event := IncidentEvent{
		ID:         uuid.New(),
		Kind:       kind,
		IncidentID: incident.ID,
		Type:       incident.Type,
		Status:     incident.Status,
		Message:    message,
		Timestamp:  time.Now(),
	}
	if incident.AssignedResponder != nil {
		event.Responder = incident.AssignedResponder.ID
	}
	return event
}
