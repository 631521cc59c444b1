package models

import (
	"time"
)

// Status - состояние инцидента в жизненном цикле
type Status string

const (
	StatusReceived   Status = "received"
	StatusDispatched Status = "dispatched"
	StatusEnroute    Status = "enroute"
	StatusArrived    Status = "arrived"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// IsActive сообщает, считается ли инцидент ещё открытым
func (s Status) IsActive() bool {
	return s != StatusResolved && s != StatusClosed
}

// Severity - степень тяжести происшествия
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

const (
	SourceOnline      = "online"
	SourceOfflineSync = "offline_sync"

	DefaultLanguage = "en-US"
)

// Location - координаты точки
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StatusUpdate - запись в ленте статусов инцидента
type StatusUpdate struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Metadata связывает инцидент с отчётом, созданным офлайн
type Metadata struct {
	OfflineID string `json:"offline_id,omitempty"`
	Source    string `json:"source"`
}

// Incident - зарегистрированное происшествие
type Incident struct {
	ID                string             `json:"id"`
	Description       string             `json:"description"`
	Location          Location           `json:"location"`
	Type              EmergencyType      `json:"type"`
	Severity          Severity           `json:"severity"`
	DetectedType      EmergencyType      `json:"detected_type"`
	Confidence        float64            `json:"confidence"`
	AssignedResponder *AssignedResponder `json:"assigned_responder"`
	Status            Status             `json:"status"`
	Timestamp         time.Time          `json:"timestamp"`
	Language          string             `json:"language"`
	Updates           []StatusUpdate     `json:"updates"`
	Metadata          Metadata           `json:"metadata"`
}

// AppendUpdate добавляет запись в ленту и синхронизирует текущий статус
func (i *Incident) AppendUpdate(status Status, at time.Time, message string) {
	i.Status = status
	i.Updates = append(i.Updates, StatusUpdate{
		Status:    status,
		Timestamp: at,
		Message:   message,
	})
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() *Incident {
	if i == nil {
		return nil
	}
	c := *i
	c.Updates = make([]StatusUpdate, len(i.Updates))
	copy(c.Updates, i.Updates)
	if i.AssignedResponder != nil {
		c.AssignedResponder = i.AssignedResponder.Clone()
	}
	return &c
}

// IncidentStats - агрегированные счётчики по всем инцидентам
type IncidentStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Critical int `json:"critical"`
	Resolved int `json:"resolved"`
}

// IncidentFilter - параметры выборки инцидентов
type IncidentFilter struct {
	Status Status
	Type   EmergencyType
	Limit  int
}

// IncidentList - результат выборки вместе со статистикой
type IncidentList struct {
	Incidents []*Incident   `json:"incidents"`
	Stats     IncidentStats `json:"stats"`
}

// LiveUpdates - лента статусов одного инцидента
type LiveUpdates struct {
	Updates       []StatusUpdate `json:"updates"`
	CurrentStatus Status         `json:"current_status"`
}
