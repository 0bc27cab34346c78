package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/resqnet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidentRepository_CreateAssignsIDs(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()

	first := &models.Incident{Type: models.TypeFlood, Status: models.StatusPending}
	second := &models.Incident{Type: models.TypeRoadblock, Status: models.StatusPending}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, "INC1_0", first.ID)
	assert.Equal(t, "INC2_0", second.ID)

	drill := []*models.Incident{
		{Type: models.TypeFlood, Status: models.StatusPending},
		{Type: models.TypeRoadblock, Status: models.StatusPending},
	}
	batch, err := repo.CreateBatch(ctx, drill)
	require.NoError(t, err)
	assert.Equal(t, 1, batch)
	assert.Equal(t, "INC3_1", drill[0].ID)
	assert.Equal(t, "INC4_1", drill[1].ID)

	// ручные сообщения после учений получают номер текущей серии
	third := &models.Incident{Type: models.TypeOther, Status: models.StatusPending}
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, "INC5_1", third.ID)
}

func TestIncidentRepository_ConcurrentBatchesKeepOwnSuffix(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()

	const drills, size = 8, 25
	batches := make([]int, drills)
	created := make([][]*models.Incident, drills)

	var wg sync.WaitGroup
	for i := 0; i < drills; i++ {
		created[i] = make([]*models.Incident, size)
		for j := range created[i] {
			created[i][j] = &models.Incident{Type: models.TypeFlood, Status: models.StatusPending}
		}
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			batch, err := repo.CreateBatch(ctx, created[i])
			assert.NoError(t, err)
			batches[i] = batch
		}(i)
		// ручные сообщения вклиниваются между учениями
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, &models.Incident{Type: models.TypeOther, Status: models.StatusPending}))
		}()
	}
	wg.Wait()

	seen := make(map[int]struct{}, drills)
	for i, batch := range batches {
		seen[batch] = struct{}{}
		suffix := fmt.Sprintf("_%d", batch)
		for _, inc := range created[i] {
			assert.True(t, strings.HasSuffix(inc.ID, suffix), "incident %s outside batch %d", inc.ID, batch)
		}
	}
	assert.Len(t, seen, drills)

	incidents, err := repo.ListIncidents(ctx)
	require.NoError(t, err)
	assert.Len(t, incidents, drills*size+drills)
}

func TestIncidentRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()

	for _, typ := range []models.IncidentType{models.TypeRoadblock, models.TypeMedicalEmergency, models.TypeFlood} {
		require.NoError(t, repo.Create(ctx, &models.Incident{Type: typ, Status: models.StatusPending}))
	}

	incidents, err := repo.ListIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 3)
	assert.Equal(t, models.TypeRoadblock, incidents[0].Type)
	assert.Equal(t, models.TypeMedicalEmergency, incidents[1].Type)
	assert.Equal(t, models.TypeFlood, incidents[2].Type)

	// изменения копии не затрагивают хранилище
	incidents[0].Status = models.StatusResolved
	stored, err := repo.GetByID(ctx, incidents[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestIncidentRepository_GetByID_NotFound(t *testing.T) {
	repo := NewIncidentRepository()

	incident, err := repo.GetByID(context.Background(), "INC404_0")
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestIncidentRepository_MarkResolved_OneWay(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()
	incident := &models.Incident{Type: models.TypeFlood, Status: models.StatusPending}
	require.NoError(t, repo.Create(ctx, incident))

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	resolved, changed, err := repo.MarkResolved(ctx, incident.ID, at)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.StatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, at, *resolved.ResolvedAt)

	again, changed, err := repo.MarkResolved(ctx, incident.ID, at.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, at, *again.ResolvedAt)
}

func TestIncidentRepository_MarkResolved_NotFound(t *testing.T) {
	repo := NewIncidentRepository()

	_, changed, err := repo.MarkResolved(context.Background(), "missing", time.Now())
	assert.False(t, changed)
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestIncidentRepository_ConcurrentCreateUniqueIDs(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &models.Incident{Type: models.TypeOther, Status: models.StatusPending})
		}()
	}
	wg.Wait()

	incidents, err := repo.ListIncidents(ctx)
	require.NoError(t, err)
	ids := make(map[string]struct{}, len(incidents))
	for _, inc := range incidents {
		ids[inc.ID] = struct{}{}
	}
	assert.Len(t, ids, 100)
}
