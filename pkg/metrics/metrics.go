// Package metrics - метрики Prometheus для сервиса инцидентов.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultNamespace = "resqnet"

// Option настраивает Manager
type Option func(*Manager)

// WithNamespace задает пространство имен метрик
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithRegistry задает реестр, по умолчанию prometheus.DefaultRegisterer
func WithRegistry(reg prometheus.Registerer) Option {
	return func(m *Manager) {
		if reg != nil {
			m.registry = reg
		}
	}
}

type Manager struct {
	namespace string
	registry  prometheus.Registerer

	incidentsReported *prometheus.CounterVec
	incidentsResolved prometheus.Counter
	incidentsPending  prometheus.Gauge
	drillsLaunched    prometheus.Counter
	pointsAwarded     *prometheus.CounterVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.incidentsReported = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "incidents_reported_total",
		Help:      "Number of reported incidents by type.",
	}, []string{"type"})
	m.incidentsResolved = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "incidents_resolved_total",
		Help:      "Number of incidents moved from Pending to Resolved.",
	})
	m.incidentsPending = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "incidents_pending",
		Help:      "Number of incidents waiting for a responder.",
	})
	m.drillsLaunched = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "drills_launched_total",
		Help:      "Number of drill batches launched.",
	})
	m.pointsAwarded = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "helper_points_awarded_total",
		Help:      "Points credited to helpers, including streak bonuses.",
	}, []string{"helper"})
	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "method"})

	return m
}

// IncidentReported учитывает новый инцидент, он сразу попадает в Pending
func (m *Manager) IncidentReported(incidentType string) {
	m.incidentsReported.WithLabelValues(incidentType).Inc()
	m.incidentsPending.Inc()
}

func (m *Manager) IncidentResolved() {
	m.incidentsResolved.Inc()
	m.incidentsPending.Dec()
}

func (m *Manager) DrillLaunched() {
	m.drillsLaunched.Inc()
}

func (m *Manager) PointsAwarded(helper string, points int) {
	if points > 0 {
		m.pointsAwarded.WithLabelValues(helper).Add(float64(points))
	}
}

// GinMiddleware считает запросы и их длительность по шаблону маршрута
func (m *Manager) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.httpRequests.WithLabelValues(endpoint, c.Request.Method, status).Inc()
		m.httpRequestDuration.WithLabelValues(endpoint, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
