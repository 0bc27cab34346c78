// Package journal пишет события об инцидентах в PostgreSQL.
// Журнал только дописывается: состояние сервиса из него не восстанавливается.
package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/resqnet/internal/webhook"
)

// Execer - часть pgxpool.Pool, нужная журналу
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type PostgresJournal struct {
	db Execer
}

func NewPostgresJournal(db Execer) *PostgresJournal {
	return &PostgresJournal{db: db}
}

// Publish дописывает событие в таблицу incident_events
func (j *PostgresJournal) Publish(ctx context.Context, event webhook.WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal journal event: %w", err)
	}

	query := `
		INSERT INTO incident_events (id, kind, incident_id, batch, count, payload, occurred_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7);
	`
	cmdTag, err := j.db.Exec(ctx, query,
		event.ID,
		string(event.Kind),
		event.IncidentID,
		event.Batch,
		event.Count,
		payload,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append incident event: %w", err)
	}
	if cmdTag.RowsAffected() != 1 {
		return fmt.Errorf("incident event %s was not stored", event.ID)
	}
	return nil
}
