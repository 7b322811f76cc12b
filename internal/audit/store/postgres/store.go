package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"carelog/internal/audit"
	txcontext "carelog/pkg/platform/tx"
)

// Store persists audit events in the audit_event table. Appends join the
// surrounding transaction when one is carried in context so a rolled-back
// domain write never leaves an orphaned trail entry.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	query := `
		INSERT INTO audit_event (
			id, occurred_at, action, resident_id, home_id, residency_id, group_id, reason
		) VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.NewString(),
		event.Timestamp,
		event.Action,
		event.ResidentID,
		event.HomeID,
		event.ResidencyID,
		event.GroupID,
		event.Reason,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *Store) ListByResident(ctx context.Context, residentID string) ([]audit.Event, error) {
	query := `
		SELECT occurred_at, action,
			COALESCE(resident_id::text, ''),
			COALESCE(home_id::text, ''),
			COALESCE(residency_id::text, ''),
			COALESCE(group_id::text, ''),
			reason
		FROM audit_event
		WHERE resident_id = $1
		ORDER BY occurred_at
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var e audit.Event
		if err := rows.Scan(&e.Timestamp, &e.Action, &e.ResidentID, &e.HomeID, &e.ResidencyID, &e.GroupID, &e.Reason); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
