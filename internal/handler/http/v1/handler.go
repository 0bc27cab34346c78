package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/resqnet/internal/config"
	"github.com/shenikar/resqnet/internal/models"
	"github.com/shenikar/resqnet/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	helperService   service.HelperService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, helperService service.HelperService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		helperService:   helperService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Report a new incident
// @Description Report an incident. Blank reporter and location are replaced with defaults, unknown types become Other, urgency is clamped to 1..3. Requires API key when keys are configured.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body ReportIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

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

	incident, err := h.incidentService.ReportIncident(c.Request.Context(), DTOToReportInput(input))
	if err != nil {
		log.WithError(err).Error("Failed to report incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get the incident list
// @Description Get all incidents ordered by severity (high first), then by report time.
// @Tags Incidents
// @Produce json
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.WithError(err).Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to get incident from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Resolve an incident
// @Description Mark a pending incident as resolved and credit the responder. Resolving a missing or already resolved incident is a no-op with resolved=false. Requires API key when keys are configured.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} ResolveResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	result, err := h.incidentService.ResolveIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to resolve incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve incident"})
		return
	}
	c.JSON(http.StatusOK, ResolveResultToResponse(id, result))
}

// @Summary Launch a drill
// @Description Generate a batch of synthetic incidents tagged with a new drill batch number. Requires API key when keys are configured.
// @Tags Drills
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param drill body LaunchDrillRequest false "Drill parameters"
// @Success 201 {object} DrillResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /drills [post]
func (h *Handler) launchDrill(c *gin.Context) {
	var input LaunchDrillRequest
	log := h.logger.WithField("method", "launchDrill")

	// тело необязательно: пустое тело (в том числе chunked без данных) дает io.EOF
	if c.Request.Body != nil {
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.incidentService.LaunchDrill(c.Request.Context(), input.BatchSize)
	if err != nil {
		log.WithError(err).Error("Failed to launch drill in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, DrillResultToResponse(result))
}

// @Summary Get incident statistics
// @Description Get totals, pending/resolved counts and type and severity distributions.
// @Tags Admin
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Get map pins
// @Description Get approximate coordinates of all incidents in report order.
// @Tags Incidents
// @Produce json
// @Success 200 {array} PinResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/map [get]
func (h *Handler) listPins(c *gin.Context) {
	log := h.logger.WithField("method", "listPins")

	pins, err := h.incidentService.ListPins(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list pins from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, PinsToResponse(pins))
}

// @Summary Get helpers leaderboard
// @Description Get helpers ordered by points with their rank tier.
// @Tags Helpers
// @Produce json
// @Success 200 {array} LeaderboardEntryResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /helpers [get]
func (h *Handler) getLeaderboard(c *gin.Context) {
	log := h.logger.WithField("method", "getLeaderboard")

	entries, err := h.helperService.Leaderboard(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get leaderboard from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, LeaderboardToResponse(entries))
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
