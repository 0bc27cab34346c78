package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/resqnet/internal/models"
)

const (
	webhookQueueKey = "incident_events"
)

type EventKind string

const (
	EventIncidentReported EventKind = "incident.reported"
	EventIncidentResolved EventKind = "incident.resolved"
	EventDrillLaunched    EventKind = "drill.launched"
)

// WebhookEvent - событие об изменении состояния инцидентов
type WebhookEvent struct {
	ID         uuid.UUID        `json:"id"`
	Kind       EventKind        `json:"kind"`
	IncidentID string           `json:"incident_id,omitempty"`
	Incident   *models.Incident `json:"incident,omitempty"`
	Batch      int              `json:"batch,omitempty"`
	Count      int              `json:"count,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

// NewIncidentEvent создает событие по инциденту
func NewIncidentEvent(kind EventKind, incident *models.Incident, at time.Time) WebhookEvent {
	return WebhookEvent{
		ID:         uuid.New(),
		Kind:       kind,
		IncidentID: incident.ID,
		Incident:   incident,
		Timestamp:  at,
	}
}

// NewDrillEvent создает событие о запуске учений
func NewDrillEvent(batch, count int, at time.Time) WebhookEvent {
	return WebhookEvent{
		ID:        uuid.New(),
		Kind:      EventDrillLaunched,
		Batch:     batch,
		Count:     count,
		Timestamp: at,
	}
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH слева, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NoopPublisher используется, когда ни очередь, ни журнал не настроены
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, WebhookEvent) error { return nil }

// MultiPublisher рассылает событие всем издателям и собирает их ошибки
type MultiPublisher []WebhookPublisher

func (m MultiPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
