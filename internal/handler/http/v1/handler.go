package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/dispatch_system/internal/config"
	"github.com/shenikar/dispatch_system/internal/live"
	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/shenikar/dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

// LiveFeed - источник событий для websocket-подписчиков
type LiveFeed interface {
	Subscribe(incidentID string) *live.Subscriber
	Unsubscribe(sub *live.Subscriber)
	Subscribers(incidentID string) int
}

type Handler struct {
	incidentService service.IncidentService
	feed            LiveFeed
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, feed LiveFeed, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		feed:            feed,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Report an emergency
// @Description Register an emergency, classify it and dispatch the nearest responder
// @Tags Emergency
// @Accept json
// @Produce json
// @Param report body ReportEmergencyRequest true "Emergency report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/report [post]
func (h *Handler) reportEmergency(c *gin.Context) {
	var input ReportEmergencyRequest
	log := h.logger.WithField("method", "reportEmergency")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.CreateIncident(c.Request.Context(), DTOToCreateInput(input))
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Sync offline reports
// @Description Submit reports collected while the client was offline. Each report is processed independently.
// @Tags Emergency
// @Accept json
// @Produce json
// @Param reports body SyncOfflineRequest true "Offline reports"
// @Success 200 {object} service.SyncResult
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/sync-offline [post]
func (h *Handler) syncOffline(c *gin.Context) {
	var input SyncOfflineRequest
	log := h.logger.WithField("method", "syncOffline")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reports := make([]service.CreateIncidentInput, len(input.Reports))
	for i, r := range input.Reports {
		reports[i] = DTOToCreateInput(r)
	}

	result, err := h.incidentService.SyncOfflineReports(c.Request.Context(), reports)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Classify a description
// @Description Detect the emergency type and suggest a severity without creating an incident
// @Tags Emergency
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Description to classify"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /emergency/classify [post]
func (h *Handler) classify(c *gin.Context) {
	var input ClassifyRequest
	log := h.logger.WithField("method", "classify")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ClassificationToResponse(h.incidentService.Classify(c.Request.Context(), input.Description)))
}

// @Summary Get a list of incidents
// @Description Get incidents sorted newest first, with stats over all incidents
// @Tags Emergency
// @Accept json
// @Produce json
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by emergency type"
// @Param limit query int false "Maximum number of incidents" default(50)
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultListLimit)))
	if err != nil {
		log.WithError(err).Warn("Invalid limit")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	filter := models.IncidentFilter{
		Status: models.Status(c.Query("status")),
		Type:   models.EmergencyType(c.Query("type")),
		Limit:  limit,
	}

	list, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentListResponse(list))
}

// @Summary Get incident by ID
// @Description Get a single incident by its dispatch ID
// @Tags Emergency
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Set any status on an incident. Resolving releases the responder. Requires API key.
// @Tags Status
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param update body UpdateStatusRequest true "Status update"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /status/update [post]
func (h *Handler) updateStatus(c *gin.Context) {
	var input UpdateStatusRequest
	log := h.logger.WithField("method", "updateStatus")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.UpdateStatus(c.Request.Context(), input.IncidentID, models.Status(input.Status), input.Message)
	if err != nil {
		h.respondError(c, log.WithField("id", input.IncidentID), err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get live updates
// @Description Get the status timeline and current status of an incident
// @Tags Status
// @Accept json
// @Produce json
// @Param incidentId path string true "Incident ID"
// @Success 200 {object} LiveUpdatesResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /status/updates/{incidentId} [get]
func (h *Handler) getLiveUpdates(c *gin.Context) {
	id := c.Param("incidentId")
	log := h.logger.WithField("method", "getLiveUpdates").WithField("id", id)

	updates, err := h.incidentService.GetLiveUpdates(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToLiveUpdatesResponse(updates))
}

// @Summary List responders
// @Description List responders with optional filters and stats over the whole directory
// @Tags Status
// @Accept json
// @Produce json
// @Param type query string false "Filter by responder type"
// @Param available query bool false "Filter by availability"
// @Success 200 {object} ResponderListResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /status/responders [get]
func (h *Handler) listResponders(c *gin.Context) {
	log := h.logger.WithField("method", "listResponders")

	filter := models.ResponderFilter{Type: models.EmergencyType(c.Query("type"))}
	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			log.WithError(err).Warn("Invalid available filter")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid available filter"})
			return
		}
		filter.Available = &available
	}

	list, err := h.incidentService.ListResponders(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err, "responder not found")
		return
	}
	c.JSON(http.StatusOK, ModelToResponderListResponse(list))
}

// @Summary Reassign an incident
// @Description Re-run assignment for an incident with a new responder type. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body ReassignRequest true "New responder type"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/assign/{id} [put]
func (h *Handler) reassignIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "reassignIncident").WithField("id", id)

	var input ReassignRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.ReassignIncident(c.Request.Context(), id, models.EmergencyType(input.ResponderType))
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
