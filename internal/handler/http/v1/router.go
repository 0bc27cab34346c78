package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты только для чтения
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/map", h.listPins)
		incidents.GET("/:id", h.getIncident)
	}
	api.GET("/helpers", h.getLeaderboard)

	// Изменяющие маршруты закрыты ключом, если ключи настроены
	actions := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		actions.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		actions.POST("/incidents", h.reportIncident)
		actions.POST("/incidents/:id/resolve", h.resolveIncident)
		actions.POST("/drills", h.launchDrill)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
