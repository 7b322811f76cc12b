package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"carelog/internal/residency/models"
	id "carelog/pkg/domain"
	"carelog/pkg/platform/sentinel"
	txcontext "carelog/pkg/platform/tx"
)

// PostgresStore persists residencies in PostgreSQL. This store is pure I/O;
// the overlap invariant is enforced by the service inside a transaction that
// locks the resident row first (LockResident), so the read-validate-write
// sequence never races a concurrent insert for the same resident.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) q(ctx context.Context) querier {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// LockResident takes a row-level lock on the resident, serializing all
// residency writes for that resident for the rest of the transaction.
// Locking the parent row rather than the residency rows also covers the
// first-residency case where there is nothing to lock yet.
func (s *PostgresStore) LockResident(ctx context.Context, residentID id.ResidentID) error {
	if _, ok := txcontext.From(ctx); !ok {
		return fmt.Errorf("lock resident: no transaction in context")
	}
	var locked string
	err := s.q(ctx).QueryRowContext(ctx, `SELECT id::text FROM resident WHERE id = $1 FOR UPDATE`, residentID.String()).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sentinel.ErrNotFound
		}
		return fmt.Errorf("lock resident: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, residency *models.Residency) error {
	query := `
		INSERT INTO residency (id, resident_id, home_id, move_in, move_out, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.q(ctx).ExecContext(ctx, query,
		residency.ID.String(),
		residency.ResidentID.String(),
		residency.HomeID.String(),
		residency.MoveIn,
		nullableTime(residency.MoveOut),
		residency.CreatedAt,
		residency.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && (pqErr.Code == "23505" || pqErr.Code == "23P01") {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create residency: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, residency *models.Residency) error {
	query := `
		UPDATE residency
		SET move_in = $2, move_out = $3, updated_at = $4
		WHERE id = $1
	`
	res, err := s.q(ctx).ExecContext(ctx, query,
		residency.ID.String(),
		residency.MoveIn,
		nullableTime(residency.MoveOut),
		residency.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update residency: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update residency: rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

const residencyColumns = `id::text, resident_id::text, home_id::text, move_in, move_out, created_at, updated_at`

func (s *PostgresStore) FindByID(ctx context.Context, residencyID id.ResidencyID) (*models.Residency, error) {
	query := `SELECT ` + residencyColumns + ` FROM residency WHERE id = $1`
	residency, err := scanResidency(s.q(ctx).QueryRowContext(ctx, query, residencyID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find residency: %w", err)
	}
	return residency, nil
}

func (s *PostgresStore) ListByResident(ctx context.Context, residentID id.ResidentID) ([]*models.Residency, error) {
	query := `SELECT ` + residencyColumns + ` FROM residency WHERE resident_id = $1 ORDER BY move_in`
	return s.list(ctx, query, residentID.String())
}

func (s *PostgresStore) ListOpenByResident(ctx context.Context, residentID id.ResidentID) ([]*models.Residency, error) {
	query := `SELECT ` + residencyColumns + ` FROM residency WHERE resident_id = $1 AND move_out IS NULL`
	return s.list(ctx, query, residentID.String())
}

func (s *PostgresStore) ListOpenByHome(ctx context.Context, homeID id.HomeID) ([]*models.Residency, error) {
	query := `SELECT ` + residencyColumns + ` FROM residency WHERE home_id = $1 AND move_out IS NULL ORDER BY move_in`
	return s.list(ctx, query, homeID.String())
}

func (s *PostgresStore) ListByHomeAsOf(ctx context.Context, homeID id.HomeID, asOf time.Time) ([]*models.Residency, error) {
	asOf = models.TruncateToDay(asOf)
	query := `
		SELECT ` + residencyColumns + `
		FROM residency
		WHERE home_id = $1
		  AND move_in <= $2
		  AND (move_out IS NULL OR move_out >= $2)
		ORDER BY move_in
	`
	return s.list(ctx, query, homeID.String(), asOf)
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]*models.Residency, error) {
	rows, err := s.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list residencies: %w", err)
	}
	defer rows.Close()

	var out []*models.Residency
	for rows.Next() {
		residency, err := scanResidency(rows)
		if err != nil {
			return nil, fmt.Errorf("scan residency: %w", err)
		}
		out = append(out, residency)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResidency(row rowScanner) (*models.Residency, error) {
	var residency models.Residency
	var rawID, rawResidentID, rawHomeID string
	var moveOut sql.NullTime
	if err := row.Scan(&rawID, &rawResidentID, &rawHomeID, &residency.MoveIn, &moveOut, &residency.CreatedAt, &residency.UpdatedAt); err != nil {
		return nil, err
	}
	residencyID, err := id.ParseResidencyID(rawID)
	if err != nil {
		return nil, err
	}
	residentID, err := id.ParseResidentID(rawResidentID)
	if err != nil {
		return nil, err
	}
	homeID, err := id.ParseHomeID(rawHomeID)
	if err != nil {
		return nil, err
	}
	residency.ID = residencyID
	residency.ResidentID = residentID
	residency.HomeID = homeID
	residency.MoveIn = models.TruncateToDay(residency.MoveIn)
	if moveOut.Valid {
		out := models.TruncateToDay(moveOut.Time)
		residency.MoveOut = &out
	}
	return &residency, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
