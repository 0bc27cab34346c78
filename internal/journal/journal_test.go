package journal

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/resqnet/internal/models"
	"github.com/shenikar/resqnet/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecer struct {
	sql  string
	args []any
	tag  pgconn.CommandTag
	err  error
}

func (f *fakeExecer) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql = sql
	f.args = args
	return f.tag, f.err
}

func TestPublish_InsertsEvent(t *testing.T) {
	db := &fakeExecer{tag: pgconn.NewCommandTag("INSERT 0 1")}
	j := NewPostgresJournal(db)
	event := webhook.NewIncidentEvent(webhook.EventIncidentReported, &models.Incident{ID: "INC1_0"}, time.Now())

	require.NoError(t, j.Publish(context.Background(), event))

	assert.Contains(t, db.sql, "INSERT INTO incident_events")
	require.Len(t, db.args, 7)
	assert.Equal(t, event.ID, db.args[0])
	assert.Equal(t, "incident.reported", db.args[1])
	assert.Equal(t, "INC1_0", db.args[2])

	var stored webhook.WebhookEvent
	require.NoError(t, json.Unmarshal(db.args[5].([]byte), &stored))
	assert.Equal(t, event.ID, stored.ID)
}

func TestPublish_ExecError(t *testing.T) {
	db := &fakeExecer{err: errors.New("connection refused")}
	j := NewPostgresJournal(db)

	err := j.Publish(context.Background(), webhook.NewDrillEvent(1, 50, time.Now()))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to append incident event")
}

func TestPublish_NothingStored(t *testing.T) {
	db := &fakeExecer{tag: pgconn.NewCommandTag("INSERT 0 0")}
	j := NewPostgresJournal(db)

	err := j.Publish(context.Background(), webhook.NewDrillEvent(1, 50, time.Now()))
	assert.ErrorContains(t, err, "was not stored")
}
