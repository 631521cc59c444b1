package models

import (
	"time"
)

// AuditEntry - запись журнала диспетчерских действий
type AuditEntry struct {
	ID          int64     `json:"id"`
	IncidentID  string    `json:"incident_id"`
	Action      string    `json:"action"`
	Status      Status    `json:"status"`
	ResponderID string    `json:"responder_id"`
	Message     string    `json:"message"`
	RecordedAt  time.Time `json:"recorded_at"`
}
