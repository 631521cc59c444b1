package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/dispatch_system/internal/config"
	"github.com/shenikar/dispatch_system/internal/detection"
	"github.com/shenikar/dispatch_system/internal/live"
	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/shenikar/dispatch_system/internal/service"
	"github.com/shenikar/dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var operatorKey = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*live.Hub, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	hub := live.NewHub(logger)
	handler := NewHandler(mockService, hub, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return hub, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleIncident(id string) *models.Incident {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.Incident{
		ID:           id,
		Description:  "chest pain",
		Location:     models.Location{Lat: 10, Lng: 10},
		Type:         models.TypeMedical,
		Severity:     models.SeverityMedium,
		DetectedType: models.TypeMedical,
		Confidence:   1,
		AssignedResponder: &models.AssignedResponder{
			Responder:  models.Responder{ID: "AMB-1", Name: "Ambulance 1", Type: models.TypeMedical},
			AssignedAt: now,
			ETA:        models.ETA{Minutes: 8, Range: "8-12 minutes"},
		},
		Status:    models.StatusReceived,
		Timestamp: now,
		Language:  models.DefaultLanguage,
		Updates: []models.StatusUpdate{
			{Status: models.StatusReceived, Timestamp: now, Message: "Emergency reported successfully"},
		},
		Metadata: models.Metadata{Source: models.SourceOnline},
	}
}

func TestReportEmergency_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.CreateIncidentInput) (*models.Incident, error) {
			assert.Equal(t, "chest pain", input.Description)
			require.NotNil(t, input.Location)
			assert.Equal(t, 0.0, input.Location.Lat)
			assert.Equal(t, models.TypeMedical, input.UserType)
			return sampleIncident("INC-0001"), nil
		}).Times(1)

	body := `{"description":"chest pain","location":{"lat":0,"lng":0},"user_type":"medical"}`
	w := makeRequest(router, "POST", "/api/v1/emergency/report", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "INC-0001", resp.ID)
	assert.Equal(t, "received", resp.Status)
	require.NotNil(t, resp.AssignedResponder)
	assert.Equal(t, "AMB-1", resp.AssignedResponder.ID)
	assert.Equal(t, "8-12 minutes", resp.AssignedResponder.ETA.Range)
	require.Len(t, resp.Updates, 1)
}

func TestReportEmergency_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/emergency/report", bytes.NewBufferString(`{"description": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportEmergency_ValidationError(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		errText string
	}{
		{
			name:    "missing description",
			body:    `{"location":{"lat":1,"lng":1}}`,
			errText: "Error:Field validation for 'Description' failed on the 'required' tag",
		},
		{
			name:    "missing location",
			body:    `{"description":"fire"}`,
			errText: "Error:Field validation for 'Location' failed on the 'required' tag",
		},
		{
			name:    "latitude out of range",
			body:    `{"description":"fire","location":{"lat":123,"lng":1}}`,
			errText: "Error:Field validation for 'Lat' failed on the 'latitude' tag",
		},
		{
			name:    "unknown user type",
			body:    `{"description":"fire","location":{"lat":1,"lng":1},"user_type":"coastguard"}`,
			errText: "Error:Field validation for 'UserType' failed on the 'oneof' tag",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "POST", "/api/v1/emergency/report", bytes.NewBufferString(tc.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.errText)
		})
	}
}

func TestReportEmergency_ServiceErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", fmt.Errorf("service: description and location are required: %w", models.ErrValidation), http.StatusBadRequest, "description and location are required"},
		{"internal", errors.New("no responders configured"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			body := `{"description":"fire","location":{"lat":1,"lng":1}}`
			w := makeRequest(router, "POST", "/api/v1/emergency/report", bytes.NewBufferString(body))

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestSyncOffline_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SyncOfflineReports(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reports []service.CreateIncidentInput) (*service.SyncResult, error) {
			require.Len(t, reports, 2)
			assert.Equal(t, "off-1", reports[0].OfflineID)
			assert.Nil(t, reports[1].Location)
			return &service.SyncResult{
				Synced:  1,
				Failed:  1,
				Results: []service.SyncedReport{{OfflineID: "off-1", DispatchID: "INC-0001"}},
				Errors:  []service.FailedReport{{OfflineID: "off-2", Error: "description and location are required"}},
			}, nil
		}).Times(1)

	body := `{"reports":[
		{"description":"chest pain","location":{"lat":1,"lng":1},"offline_id":"off-1"},
		{"description":"no location","offline_id":"off-2"}
	]}`
	w := makeRequest(router, "POST", "/api/v1/emergency/sync-offline", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp service.SyncResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Synced)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, "INC-0001", resp.Results[0].DispatchID)
}

func TestSyncOffline_EmptyBatch(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SyncOfflineReports(gomock.Any(), gomock.Len(0)).Return(&service.SyncResult{
		Results: []service.SyncedReport{},
		Errors:  []service.FailedReport{},
	}, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/emergency/sync-offline", bytes.NewBufferString(`{"reports":[]}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp service.SyncResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Synced)
	assert.Equal(t, 0, resp.Failed)
}

func TestSyncOffline_MissingReports(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SyncOfflineReports(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/emergency/sync-offline", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Reports' failed on the 'required' tag")
}

func TestSyncOffline_ReportsNotArray(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SyncOfflineReports(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/emergency/sync-offline", bytes.NewBufferString(`{"reports":"off-1"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestClassify_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Classify(gomock.Any(), "house fire").Return(&service.Classification{
		Result: detection.Result{
			Type:       models.TypeFire,
			Confidence: 1,
			Scores:     map[models.EmergencyType]int{models.TypeFire: 1},
		},
		SuggestedSeverity: models.SeverityHigh,
	}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/emergency/classify", bytes.NewBufferString(`{"description":"house fire"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fire", resp.Type)
	assert.Equal(t, "high", resp.SuggestedSeverity)
	assert.Equal(t, 1, resp.Scores["fire"])
}

func TestListIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	expectedFilter := models.IncidentFilter{Status: models.StatusReceived, Type: models.TypeMedical, Limit: 5}
	mockService.EXPECT().ListIncidents(gomock.Any(), expectedFilter).Return(&models.IncidentList{
		Incidents: []*models.Incident{sampleIncident("INC-0002"), sampleIncident("INC-0001")},
		Stats:     models.IncidentStats{Total: 3, Active: 2, Critical: 0, Resolved: 1},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergency/incidents?status=received&type=medical&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Incidents, 2)
	assert.Equal(t, 3, resp.Stats.Total)
	assert.Equal(t, 1, resp.Stats.Resolved)
}

func TestListIncidents_DefaultLimit(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidents(gomock.Any(), models.IncidentFilter{Limit: service.DefaultListLimit}).
		Return(&models.IncidentList{Incidents: []*models.Incident{}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergency/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"incidents":[]`)
}

func TestListIncidents_InvalidLimit(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/emergency/incidents?limit=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid limit")
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergency/incidents", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetIncident(gomock.Any(), "INC-0007").Return(sampleIncident("INC-0007"), nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergency/incidents/INC-0007", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INC-0007", resp.ID)
	assert.Equal(t, "online", resp.Metadata.Source)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: could not get incident: %w", models.ErrNotFound)

	mockService.EXPECT().GetIncident(gomock.Any(), "INC-0404").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergency/incidents/INC-0404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestUpdateStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	resolved := sampleIncident("INC-0001")
	resolved.AppendUpdate(models.StatusResolved, resolved.Timestamp.Add(time.Minute), "Status updated to resolved")

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), "INC-0001", models.StatusResolved, "").
		Return(resolved, nil).
		Times(1)

	body := `{"incident_id":"INC-0001","status":"resolved"}`
	w := makeRequest(router, "POST", "/api/v1/status/update", bytes.NewBufferString(body), operatorKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resolved", resp.Status)
	assert.Len(t, resp.Updates, 2)
}

func TestUpdateStatus_RequiresAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := `{"incident_id":"INC-0001","status":"resolved"}`
	w := makeRequest(router, "POST", "/api/v1/status/update", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		UpdateStatus(gomock.Any(), "INC-0404", models.StatusArrived, "on scene").
		Return(nil, fmt.Errorf("service: could not update status: %w", models.ErrNotFound)).
		Times(1)

	body := `{"incident_id":"INC-0404","status":"arrived","message":"on scene"}`
	w := makeRequest(router, "POST", "/api/v1/status/update", bytes.NewBufferString(body), operatorKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/status/update", bytes.NewBufferString(`{"incident_id":"INC-0001"}`), operatorKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Status' failed on the 'required' tag")
}

func TestGetLiveUpdates_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := sampleIncident("INC-0001")

	mockService.EXPECT().GetLiveUpdates(gomock.Any(), "INC-0001").Return(&models.LiveUpdates{
		Updates:       incident.Updates,
		CurrentStatus: incident.Status,
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/status/updates/INC-0001", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LiveUpdatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "received", resp.CurrentStatus)
	assert.Len(t, resp.Updates, 1)
}

func TestGetLiveUpdates_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetLiveUpdates(gomock.Any(), "INC-0404").Return(nil, models.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/status/updates/INC-0404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListResponders_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	available := true

	mockService.EXPECT().
		ListResponders(gomock.Any(), models.ResponderFilter{Type: models.TypeFire, Available: &available}).
		Return(&models.ResponderList{
			Responders: []*models.Responder{{ID: "FIRE-1", Type: models.TypeFire, Available: true}},
			Stats:      models.ResponderStats{Total: 3, Available: 2, Medical: 1, Police: 1, Fire: 1},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/status/responders?type=fire&available=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ResponderListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Responders, 1)
	assert.Equal(t, "FIRE-1", resp.Responders[0].ID)
	assert.Equal(t, 2, resp.Stats.Available)
}

func TestListResponders_InvalidAvailable(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListResponders(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/status/responders?available=maybe", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid available filter")
}

func TestReassignIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reassigned := sampleIncident("INC-0001")
	reassigned.Type = models.TypeFire
	reassigned.AssignedResponder.ID = "FIRE-1"

	mockService.EXPECT().ReassignIncident(gomock.Any(), "INC-0001", models.TypeFire).Return(reassigned, nil).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/admin/assign/INC-0001", bytes.NewBufferString(`{"responder_type":"fire"}`), operatorKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fire", resp.Type)
	assert.Equal(t, "FIRE-1", resp.AssignedResponder.ID)
}

func TestReassignIncident_Errors(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		ReassignIncident(gomock.Any(), "INC-0404", models.TypePolice).
		Return(nil, fmt.Errorf("service: could not reassign incident: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "PUT", "/api/v1/admin/assign/INC-0404", bytes.NewBufferString(`{"responder_type":"police"}`), operatorKey)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, "PUT", "/api/v1/admin/assign/INC-0001", bytes.NewBufferString(`{"responder_type":"navy"}`), operatorKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "PUT", "/api/v1/admin/assign/INC-0001", bytes.NewBufferString(`{"responder_type":"fire"}`),
		map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStreamLiveUpdates(t *testing.T) {
	hub, mockService, router := newTestHandler(t)
	incident := sampleIncident("INC-0001")

	mockService.EXPECT().GetLiveUpdates(gomock.Any(), "INC-0001").Return(&models.LiveUpdates{
		Updates:       incident.Updates,
		CurrentStatus: incident.Status,
	}, nil).Times(1)

	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/status/updates/INC-0001/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var snapshot liveMessage
	require.NoError(t, conn.ReadJSON(&snapshot))
	assert.Equal(t, liveKindSnapshot, snapshot.Kind)
	assert.Equal(t, "received", snapshot.CurrentStatus)
	assert.Len(t, snapshot.Updates, 1)

	// Подписка оформлена до отправки снимка
	require.Equal(t, 1, hub.Subscribers("INC-0001"))
	incident.AppendUpdate(models.StatusDispatched, time.Now(), "Responder dispatched")
	require.NoError(t, hub.Publish(context.Background(), models.NewIncidentEvent(models.EventStatusChanged, incident, "Responder dispatched")))

	var update liveMessage
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, liveKindEvent, update.Kind)
	assert.Equal(t, "dispatched", update.CurrentStatus)
	require.NotNil(t, update.Event)
	assert.Equal(t, "Responder dispatched", update.Event.Message)
}

func TestStreamLiveUpdates_NotFound(t *testing.T) {
	hub, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetLiveUpdates(gomock.Any(), "INC-0404").Return(nil, models.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/status/updates/INC-0404/ws", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, hub.Subscribers("INC-0404"))
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantBody   string
	}{
		{"valid X-API-Key", map[string]string{"X-API-Key": "valid-key"}, http.StatusOK, ""},
		{"valid bearer", map[string]string{"Authorization": "Bearer valid-key"}, http.StatusOK, ""},
		{"missing key", map[string]string{}, http.StatusUnauthorized, "API key required"},
		{"invalid key", map[string]string{"X-API-Key": "invalid-key"}, http.StatusUnauthorized, "Invalid API key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			logger := logrus.New()
			logger.SetOutput(&bytes.Buffer{})

			cfg := &config.Config{
				APIKeys: []string{"valid-key"},
			}

			router.Use(APIKeyAuthMiddleware(cfg, logger))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := makeRequest(router, "GET", "/test", nil, tc.headers)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}
