package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	operator := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Приём сообщений о происшествиях
	emergency := api.Group("/emergency")
	{
		emergency.POST("/report", h.reportEmergency)
		emergency.POST("/sync-offline", h.syncOffline)
		emergency.POST("/classify", h.classify)
		emergency.GET("/incidents", h.listIncidents)
		emergency.GET("/incidents/:id", h.getIncident)
	}

	// Ход выполнения вызова
	status := api.Group("/status")
	{
		status.POST("/update", operator, h.updateStatus)
		status.GET("/updates/:incidentId", h.getLiveUpdates)
		status.GET("/updates/:incidentId/ws", h.streamLiveUpdates)
		status.GET("/responders", h.listResponders)
	}

	// Действия оператора
	admin := api.Group("/admin", operator)
	{
		admin.PUT("/assign/:id", h.reassignIncident)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
