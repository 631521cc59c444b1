package v1

import (
	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/shenikar/dispatch_system/internal/service"
)

func locationToModel(dto *LocationDTO) *models.Location {
	if dto == nil || dto.Lat == nil || dto.Lng == nil {
		return nil
	}
	return &models.Location{Lat: *dto.Lat, Lng: *dto.Lng}
}

// DTOToCreateInput преобразует DTO сообщения или офлайн-отчёта во входные данные сервиса
func DTOToCreateInput(dto any) service.CreateIncidentInput {
	switch v := dto.(type) {
	case ReportEmergencyRequest:
		return service.CreateIncidentInput{
			Description: v.Description,
			Location:    locationToModel(v.Location),
			UserType:    models.EmergencyType(v.UserType),
			Severity:    models.Severity(v.Severity),
			Language:    v.Language,
			OfflineID:   v.OfflineID,
		}
	case OfflineReportDTO:
		return service.CreateIncidentInput{
			Description: v.Description,
			Location:    locationToModel(v.Location),
			UserType:    models.EmergencyType(v.UserType),
			Severity:    models.Severity(v.Severity),
			Language:    v.Language,
			OfflineID:   v.OfflineID,
		}
	}
	return service.CreateIncidentInput{}
}

// ModelToResponderResponse преобразует экипаж в DTO для ответа
func ModelToResponderResponse(model *models.Responder) *ResponderResponse {
	return &ResponderResponse{
		ID:         model.ID,
		Name:       model.Name,
		Type:       string(model.Type),
		Location:   model.Location,
		Available:  model.Available,
		LastUpdate: model.LastUpdate,
	}
}

func updatesToResponse(updates []models.StatusUpdate) []StatusUpdateResponse {
	out := make([]StatusUpdateResponse, len(updates))
	for i, u := range updates {
		out[i] = StatusUpdateResponse{
			Status:    string(u.Status),
			Timestamp: u.Timestamp,
			Message:   u.Message,
		}
	}
	return out
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:           model.ID,
		Description:  model.Description,
		Location:     model.Location,
		Type:         string(model.Type),
		Severity:     string(model.Severity),
		DetectedType: string(model.DetectedType),
		Confidence:   model.Confidence,
		Status:       string(model.Status),
		Timestamp:    model.Timestamp,
		Language:     model.Language,
		Updates:      updatesToResponse(model.Updates),
		Metadata:     model.Metadata,
	}
	if a := model.AssignedResponder; a != nil {
		resp.AssignedResponder = &AssignedResponderResponse{
			ResponderResponse: *ModelToResponderResponse(&a.Responder),
			AssignedAt:        a.AssignedAt,
			ETA:               ETAResponse{Minutes: a.ETA.Minutes, Range: a.ETA.Range},
		}
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelToIncidentListResponse(list *models.IncidentList) *IncidentListResponse {
	return &IncidentListResponse{
		Incidents: ModelsToIncidentResponses(list.Incidents),
		Stats:     list.Stats,
	}
}

func ModelToResponderListResponse(list *models.ResponderList) *ResponderListResponse {
	responders := make([]*ResponderResponse, len(list.Responders))
	for i, r := range list.Responders {
		responders[i] = ModelToResponderResponse(r)
	}
	return &ResponderListResponse{Responders: responders, Stats: list.Stats}
}

func ModelToLiveUpdatesResponse(live *models.LiveUpdates) *LiveUpdatesResponse {
	return &LiveUpdatesResponse{
		Updates:       updatesToResponse(live.Updates),
		CurrentStatus: string(live.CurrentStatus),
	}
}

func ClassificationToResponse(c *service.Classification) *ClassifyResponse {
	scores := make(map[string]int, len(c.Scores))
	for t, score := range c.Scores {
		scores[string(t)] = score
	}
	return &ClassifyResponse{
		Type:              string(c.Type),
		Confidence:        c.Confidence,
		Scores:            scores,
		SuggestedSeverity: string(c.SuggestedSeverity),
	}
}
