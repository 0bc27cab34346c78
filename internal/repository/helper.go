package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/resqnet/internal/models"
	"github.com/shenikar/resqnet/internal/service"
)

// HelperRepository - фиксированный список помощников, создается один раз при старте
type HelperRepository struct {
	mu      sync.RWMutex
	helpers []*models.Helper
}

// NewHelperRepository засевает помощников с нулевыми счетчиками, дубликаты имен пропускаются
func NewHelperRepository(names []string) service.HelperRepository {
	r := &HelperRepository{}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		r.helpers = append(r.helpers, &models.Helper{Name: name})
	}
	return r
}

// Award начисляет очки помощнику с точно совпадающим именем
func (r *HelperRepository) Award(_ context.Context, name string, points int) (*models.Helper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.helpers {
		if h.Name == name {
			h.Award(points)
			copied := *h
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("helper %q: %w", name, models.ErrHelperNotFound)
}

// ListHelpers возвращает помощников в порядке засева
func (r *HelperRepository) ListHelpers(_ context.Context) ([]*models.Helper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	helpers := make([]*models.Helper, len(r.helpers))
	for i, h := range r.helpers {
		copied := *h
		helpers[i] = &copied
	}
	return helpers, nil
}
