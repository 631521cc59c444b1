package v1

import (
	"time"

	"github.com/shenikar/dispatch_system/internal/models"
)

// LocationDTO - координаты места происшествия
// @Description Координаты места происшествия
type LocationDTO struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// ReportEmergencyRequest DTO для сообщения о происшествии
// @Description DTO для сообщения о происшествии
type ReportEmergencyRequest struct {
	Description string       `json:"description" validate:"required,max=2000"`
	Location    *LocationDTO `json:"location" validate:"required"`
	UserType    string       `json:"user_type,omitempty" validate:"omitempty,oneof=medical fire police"`
	Severity    string       `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Language    string       `json:"language,omitempty"`
	OfflineID   string       `json:"offline_id,omitempty"`
}

// SyncOfflineRequest DTO для пакетной отправки офлайн-отчётов.
// Отдельные отчёты проверяются сервисом, ошибка одного не отклоняет пакет.
// @Description DTO для пакетной отправки офлайн-отчётов
type SyncOfflineRequest struct {
	Reports []OfflineReportDTO `json:"reports" validate:"required"`
}

// OfflineReportDTO - отчёт, накопленный клиентом без связи
// @Description Отчёт, накопленный клиентом без связи
type OfflineReportDTO struct {
	Description string       `json:"description"`
	Location    *LocationDTO `json:"location"`
	UserType    string       `json:"user_type,omitempty"`
	Severity    string       `json:"severity,omitempty"`
	Language    string       `json:"language,omitempty"`
	OfflineID   string       `json:"offline_id"`
}

// ClassifyRequest DTO для предварительной классификации текста
// @Description DTO для предварительной классификации текста
type ClassifyRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
}

// UpdateStatusRequest DTO для ручной смены статуса
// @Description DTO для ручной смены статуса
type UpdateStatusRequest struct {
	IncidentID string `json:"incident_id" validate:"required"`
	Status     string `json:"status" validate:"required"`
	Message    string `json:"message,omitempty"`
}

// ReassignRequest DTO для переназначения экипажа
// @Description DTO для переназначения экипажа
type ReassignRequest struct {
	ResponderType string `json:"responder_type" validate:"required,oneof=medical fire police"`
}

// ETAResponse DTO расчётного времени прибытия
type ETAResponse struct {
	Minutes int    `json:"minutes"`
	Range   string `json:"range"`
}

// ResponderResponse DTO для ответа с информацией об экипаже
// @Description DTO для ответа с информацией об экипаже
type ResponderResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Type       string           `json:"type"`
	Location   *models.Location `json:"location,omitempty"`
	Available  bool             `json:"available"`
	LastUpdate time.Time        `json:"last_update"`
}

// AssignedResponderResponse DTO снимка назначенного экипажа
type AssignedResponderResponse struct {
	ResponderResponse
	AssignedAt time.Time   `json:"assigned_at"`
	ETA        ETAResponse `json:"eta"`
}

// StatusUpdateResponse DTO записи ленты статусов
type StatusUpdateResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                string                     `json:"id"`
	Description       string                     `json:"description"`
	Location          models.Location            `json:"location"`
	Type              string                     `json:"type"`
	Severity          string                     `json:"severity"`
	DetectedType      string                     `json:"detected_type"`
	Confidence        float64                    `json:"confidence"`
	AssignedResponder *AssignedResponderResponse `json:"assigned_responder,omitempty"`
	Status            string                     `json:"status"`
	Timestamp         time.Time                  `json:"timestamp"`
	Language          string                     `json:"language"`
	Updates           []StatusUpdateResponse     `json:"updates"`
	Metadata          models.Metadata            `json:"metadata"`
}

// IncidentListResponse DTO для выборки инцидентов со статистикой
// @Description DTO для выборки инцидентов со статистикой
type IncidentListResponse struct {
	Incidents []*IncidentResponse  `json:"incidents"`
	Stats     models.IncidentStats `json:"stats"`
}

// LiveUpdatesResponse DTO ленты статусов инцидента
// @Description DTO ленты статусов инцидента
type LiveUpdatesResponse struct {
	Updates       []StatusUpdateResponse `json:"updates"`
	CurrentStatus string                 `json:"current_status"`
}

// ResponderListResponse DTO для выборки экипажей со статистикой
// @Description DTO для выборки экипажей со статистикой
type ResponderListResponse struct {
	Responders []*ResponderResponse  `json:"responders"`
	Stats      models.ResponderStats `json:"stats"`
}

// ClassifyResponse DTO результата классификации
// @Description DTO результата классификации
type ClassifyResponse struct {
	Type              string         `json:"type"`
	Confidence        float64        `json:"confidence"`
	Scores            map[string]int `json:"scores"`
	SuggestedSeverity string         `json:"suggested_severity"`
}

// liveMessage - сообщение, отправляемое клиенту по websocket
type liveMessage struct {
	Kind          string                 `json:"kind"`
	IncidentID    string                 `json:"incident_id"`
	CurrentStatus string                 `json:"current_status,omitempty"`
	Updates       []StatusUpdateResponse `json:"updates,omitempty"`
	Event         *models.IncidentEvent  `json:"event,omitempty"`
}
