package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/resqnet/internal/models"
	"github.com/shenikar/resqnet/internal/service"
)

// IncidentRepository хранит инциденты в памяти процесса в порядке добавления
type IncidentRepository struct {
	mu        sync.RWMutex
	incidents []*models.Incident
	byID      map[string]*models.Incident
	batch     int
}

func NewIncidentRepository() service.IncidentRepository {
	return &IncidentRepository{
		byID: make(map[string]*models.Incident),
	}
}

// Create присваивает инциденту ID вида INC<n>_<batch> и сохраняет его копию
func (r *IncidentRepository) Create(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	incident.ID = fmt.Sprintf("INC%d_%d", len(r.incidents)+1, r.batch)
	if _, exists := r.byID[incident.ID]; exists {
		return fmt.Errorf("incident with id %s already exists", incident.ID)
	}

	stored := cloneIncident(incident)
	r.incidents = append(r.incidents, stored)
	r.byID[stored.ID] = stored
	return nil
}

// CreateBatch открывает новую серию учений и сохраняет в ней все инциденты.
// Номер серии и ID назначаются под одной блокировкой, чужие записи не попадают между ними
func (r *IncidentRepository) CreateBatch(_ context.Context, incidents []*models.Incident) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	batch := r.batch + 1
	base := len(r.incidents)
	for i, incident := range incidents {
		id := fmt.Sprintf("INC%d_%d", base+i+1, batch)
		if _, exists := r.byID[id]; exists {
			return 0, fmt.Errorf("incident with id %s already exists", id)
		}
		incident.ID = id
	}

	r.batch = batch
	for _, incident := range incidents {
		stored := cloneIncident(incident)
		r.incidents = append(r.incidents, stored)
		r.byID[stored.ID] = stored
	}
	return batch, nil
}

// GetByID возвращает инцидент по его ID
func (r *IncidentRepository) GetByID(_ context.Context, id string) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incident, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrIncidentNotFound)
	}
	return cloneIncident(incident), nil
}

// MarkResolved переводит инцидент Pending -> Resolved. Второй результат false, если инцидент уже был закрыт
func (r *IncidentRepository) MarkResolved(_ context.Context, id string, at time.Time) (*models.Incident, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	incident, ok := r.byID[id]
	if !ok {
		return nil, false, fmt.Errorf("incident with id %s not found for resolve: %w", id, models.ErrIncidentNotFound)
	}
	if !incident.IsPending() {
		return cloneIncident(incident), false, nil
	}

	resolvedAt := at
	incident.Status = models.StatusResolved
	incident.ResolvedAt = &resolvedAt
	return cloneIncident(incident), true, nil
}

// ListIncidents возвращает все инциденты в порядке добавления
func (r *IncidentRepository) ListIncidents(_ context.Context) ([]*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*models.Incident, len(r.incidents))
	for i, incident := range r.incidents {
		incidents[i] = cloneIncident(incident)
	}
	return incidents, nil
}

func cloneIncident(src *models.Incident) *models.Incident {
	dst := *src
	if src.ResolvedAt != nil {
		at := *src.ResolvedAt
		dst.ResolvedAt = &at
	}
	return &dst
}
