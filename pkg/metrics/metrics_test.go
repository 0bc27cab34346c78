package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestManager() *Manager {
	return NewManager(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))
}

func TestManager_IncidentLifecycle(t *testing.T) {
	m := newTestManager()

	m.IncidentReported("Flood")
	m.IncidentReported("Flood")
	m.IncidentReported("Roadblock")
	m.IncidentResolved()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.incidentsReported.WithLabelValues("Flood")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.incidentsReported.WithLabelValues("Roadblock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.incidentsResolved))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.incidentsPending))
}

func TestManager_DrillsAndPoints(t *testing.T) {
	m := newTestManager()

	m.DrillLaunched()
	m.PointsAwarded("Riya", 15)
	m.PointsAwarded("Riya", 20)
	m.PointsAwarded("Riya", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.drillsLaunched))
	assert.Equal(t, 35.0, testutil.ToFloat64(m.pointsAwarded.WithLabelValues("Riya")))
}

func TestManager_GinMiddleware(t *testing.T) {
	m := newTestManager()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.GinMiddleware())
	router.GET("/api/v1/incidents/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/INC1_0", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/incidents/:id", http.MethodGet, "404"))
	assert.Equal(t, 1.0, got)
}
