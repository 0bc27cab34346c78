package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/resqnet/internal/config"
	"github.com/shenikar/resqnet/internal/geo"
	"github.com/shenikar/resqnet/internal/models"
	"github.com/shenikar/resqnet/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks
//go:generate mockgen -source=helper.go -destination=mocks/mock_helper.go -package=mocks

// Наборы значений для учений
var (
	drillReporters = []string{"Ravi", "Ananya", "Local"}
	drillTypes     = []models.IncidentType{models.TypeMedicalEmergency, models.TypeFlood, models.TypeRoadblock}
	drillLocations = []string{"Market", "Highway", "Colony", "Hospital"}
)

// IncidentRepository определяет контракт для хранилища инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	// CreateBatch сохраняет инциденты под новым номером серии и возвращает этот номер
	CreateBatch(ctx context.Context, incidents []*models.Incident) (int, error)
	MarkResolved(ctx context.Context, id string, at time.Time) (*models.Incident, bool, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
}

// Geocoder ставит метку на карту по адресу
type Geocoder interface {
	Locate(location string) geo.Point
}

// ReportInput - данные сообщения об инциденте до нормализации
type ReportInput struct {
	Reporter string
	Type     string
	Location string
	Urgency  int
}

// ResolveResult - итог попытки закрыть инцидент
type ResolveResult struct {
	Incident *models.Incident
	// Resolved - был ли переход Pending -> Resolved именно в этом вызове
	Resolved bool
	// Credited - нашелся ли помощник с именем ответственного
	Credited  bool
	Responder string
	Points    int
}

// DrillResult - итог запуска учений
type DrillResult struct {
	Batch     int
	Incidents []*models.Incident
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	ReportIncident(ctx context.Context, input ReportInput) (*models.Incident, error)
	ResolveIncident(ctx context.Context, id string) (*ResolveResult, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	LaunchDrill(ctx context.Context, batchSize int) (*DrillResult, error)
	GetStats(ctx context.Context) (*models.Stats, error)
	ListPins(ctx context.Context) ([]models.Pin, error)
}

// Option настраивает incidentService
type Option func(*incidentService)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *incidentService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRand подменяет источник случайности для учений
func WithRand(rng *rand.Rand) Option {
	return func(s *incidentService) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithMetrics подключает метрики
func WithMetrics(m Metrics) Option {
	return func(s *incidentService) {
		if m != nil {
			s.metrics = m
		}
	}
}

type incidentService struct {
	repo      IncidentRepository
	helpers   HelperService
	geocoder  Geocoder
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	metrics   Metrics
	now       func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewIncidentService(
	repo IncidentRepository,
	helpers HelperService,
	geocoder Geocoder,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
	opts ...Option,
) IncidentService {
	seed := cfg.DrillSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if publisher == nil {
		publisher = webhook.NoopPublisher{}
	}

	s := &incidentService{
		repo:      repo,
		helpers:   helpers,
		geocoder:  geocoder,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		metrics:   noopMetrics{},
		now:       time.Now,
		rng:       rand.New(rand.NewSource(seed)), //nolint:gosec // учения не требуют криптостойкости
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReportIncident создает инцидент, некорректные поля приводятся к значениям по умолчанию
func (s *incidentService) ReportIncident(ctx context.Context, input ReportInput) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ReportIncident",
		"type":    input.Type,
	})
	log.Info("Attempting to report a new incident")

	incident, err := s.create(ctx, input)
	if err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not report incident: %w", err)
	}

	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"severity":    incident.Severity,
	}).Info("Incident reported successfully")

	s.publish(ctx, log, webhook.NewIncidentEvent(webhook.EventIncidentReported, incident, incident.CreatedAt))
	return incident, nil
}

// ResolveIncident закрывает инцидент и начисляет очки ответственному.
// Отсутствующий или уже закрытый инцидент - не ошибка, Resolved будет false.
func (s *incidentService) ResolveIncident(ctx context.Context, id string) (*ResolveResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ResolveIncident",
		"incident_id": id,
	})
	log.Info("Attempting to resolve incident")

	incident, changed, err := s.repo.MarkResolved(ctx, id, s.now())
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.Warn("Attempted to resolve a non-existent incident")
			return &ResolveResult{}, nil
		}
		log.WithError(err).Error("Failed to resolve incident in repository")
		return nil, fmt.Errorf("service: could not resolve incident: %w", err)
	}

	result := &ResolveResult{Incident: incident}
	if !changed {
		log.Info("Incident is already resolved")
		return result, nil
	}
	s.metrics.IncidentResolved()

	// Очки получает не автор сообщения, а ответственный из конфигурации.
	// Закрытие не откатывается: сбой начисления только пишется в лог
	credited, err := s.helpers.AwardPoints(ctx, s.cfg.ResponderName, s.cfg.ResolvePoints)
	switch {
	case err != nil:
		credited = false
		log.WithError(err).WithField("responder", s.cfg.ResponderName).Error("Failed to award points for resolution")
	case !credited:
		log.WithField("responder", s.cfg.ResponderName).Warn("Responder does not match any helper, leaderboard unchanged")
	}

	result.Resolved = true
	result.Credited = credited
	result.Responder = s.cfg.ResponderName
	result.Points = s.cfg.ResolvePoints

	log.Info("Incident resolved successfully")
	s.publish(ctx, log, webhook.NewIncidentEvent(webhook.EventIncidentResolved, incident, *incident.ResolvedAt))
	return result, nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "incident",
			"method":      "GetIncident",
			"incident_id": id,
		}).WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает инциденты по убыванию тяжести, затем по времени создания
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	incidents, err := s.repo.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	// Стабильная сортировка сохраняет порядок добавления при равных ключах
	slices.SortStableFunc(incidents, func(a, b *models.Incident) int {
		if a.Severity != b.Severity {
			return b.Severity - a.Severity
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// LaunchDrill генерирует batchSize учебных инцидентов под новым номером серии
func (s *incidentService) LaunchDrill(ctx context.Context, batchSize int) (*DrillResult, error) {
	if batchSize <= 0 {
		batchSize = s.cfg.DrillBatchSize
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "LaunchDrill",
		"batch_size": batchSize,
	})
	log.Info("Launching drill")

	incidents := make([]*models.Incident, batchSize)
	for i := range incidents {
		incidents[i] = s.build(s.randomReport())
	}

	batch, err := s.repo.CreateBatch(ctx, incidents)
	if err != nil {
		log.WithError(err).Error("Failed to store drill incidents")
		return nil, fmt.Errorf("service: could not launch drill: %w", err)
	}
	for _, incident := range incidents {
		s.metrics.IncidentReported(string(incident.Type))
	}
	result := &DrillResult{Batch: batch, Incidents: incidents}
	s.metrics.DrillLaunched()

	log.WithField("batch", batch).Info("Drill launched successfully")
	s.publish(ctx, log, webhook.NewDrillEvent(batch, batchSize, s.now()))
	return result, nil
}

// GetStats собирает сводку: всего, ожидают, закрыты, распределение по типам и тяжести
func (s *incidentService) GetStats(ctx context.Context) (*models.Stats, error) {
	incidents, err := s.repo.ListIncidents(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not collect stats: %w", err)
	}

	stats := &models.Stats{
		Total:      len(incidents),
		ByType:     make(map[models.IncidentType]int),
		BySeverity: make(map[int]int),
	}
	for _, inc := range incidents {
		if inc.IsPending() {
			stats.Pending++
		} else {
			stats.Resolved++
		}
		stats.ByType[inc.Type]++
		stats.BySeverity[inc.Severity]++
	}
	return stats, nil
}

// ListPins возвращает метки для карты в порядке добавления
func (s *incidentService) ListPins(ctx context.Context) ([]models.Pin, error) {
	incidents, err := s.repo.ListIncidents(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list pins: %w", err)
	}

	pins := make([]models.Pin, len(incidents))
	for i, inc := range incidents {
		pins[i] = models.Pin{
			IncidentID: inc.ID,
			Latitude:   inc.Latitude,
			Longitude:  inc.Longitude,
			Severity:   inc.Severity,
			Status:     inc.Status,
		}
	}
	return pins, nil
}

func (s *incidentService) create(ctx context.Context, input ReportInput) (*models.Incident, error) {
	incident := s.build(input)
	if err := s.repo.Create(ctx, incident); err != nil {
		return nil, err
	}
	s.metrics.IncidentReported(string(incident.Type))
	return incident, nil
}

// build нормализует ввод и ставит метку, ID назначает хранилище
func (s *incidentService) build(input ReportInput) *models.Incident {
	reporter := strings.TrimSpace(input.Reporter)
	if reporter == "" {
		reporter = models.DefaultReporter
	}
	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = models.DefaultLocation
	}
	incidentType := models.ParseIncidentType(input.Type)
	point := s.geocoder.Locate(location)

	return &models.Incident{
		Reporter:  reporter,
		Type:      incidentType,
		Location:  location,
		Latitude:  point.Lat,
		Longitude: point.Lon,
		Severity:  models.ScoreIncident(incidentType, models.ClampUrgency(input.Urgency)),
		Status:    models.StatusPending,
		CreatedAt: s.now(),
	}
}

func (s *incidentService) randomReport() ReportInput {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	return ReportInput{
		Reporter: drillReporters[s.rng.Intn(len(drillReporters))],
		Type:     string(drillTypes[s.rng.Intn(len(drillTypes))]),
		Location: drillLocations[s.rng.Intn(len(drillLocations))],
		Urgency:  models.MinSeverity + s.rng.Intn(models.MaxSeverity),
	}
}

// publish отправляет событие; сбой доставки не отменяет уже выполненную операцию
func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, event webhook.WebhookEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_kind", event.Kind).Warn("Failed to publish incident event")
	}
}
