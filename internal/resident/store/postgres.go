package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"carelog/internal/resident/models"
	id "carelog/pkg/domain"
	"carelog/pkg/platform/sentinel"
	txcontext "carelog/pkg/platform/tx"
)

// PostgresStore persists residents in PostgreSQL.
// This store is pure I/O; invariants live in the models constructors.
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

func (s *PostgresStore) Create(ctx context.Context, resident *models.Resident) error {
	query := `
		INSERT INTO resident (id, first_name, last_initial, on_hiatus, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.q(ctx).ExecContext(ctx, query,
		resident.ID.String(),
		resident.FirstName,
		resident.LastInitial,
		resident.OnHiatus,
		resident.CreatedAt,
		resident.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create resident: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, resident *models.Resident) error {
	query := `
		UPDATE resident
		SET first_name = $2, last_initial = $3, on_hiatus = $4, updated_at = $5
		WHERE id = $1
	`
	res, err := s.q(ctx).ExecContext(ctx, query,
		resident.ID.String(),
		resident.FirstName,
		resident.LastInitial,
		resident.OnHiatus,
		resident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update resident: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update resident: rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, residentID id.ResidentID) (*models.Resident, error) {
	query := `
		SELECT id::text, first_name, last_initial, on_hiatus, created_at, updated_at
		FROM resident
		WHERE id = $1
	`
	resident, err := scanResident(s.q(ctx).QueryRowContext(ctx, query, residentID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find resident: %w", err)
	}
	return resident, nil
}

func (s *PostgresStore) FindByIDs(ctx context.Context, residentIDs []id.ResidentID) ([]*models.Resident, error) {
	if len(residentIDs) == 0 {
		return nil, nil
	}
	ids := make([]string, len(residentIDs))
	for i, rid := range residentIDs {
		ids[i] = rid.String()
	}
	query := `
		SELECT id::text, first_name, last_initial, on_hiatus, created_at, updated_at
		FROM resident
		WHERE id = ANY($1)
		ORDER BY first_name, last_initial
	`
	rows, err := s.q(ctx).QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("find residents: %w", err)
	}
	defer rows.Close()
	return collectResidents(rows)
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Resident, error) {
	query := `
		SELECT id::text, first_name, last_initial, on_hiatus, created_at, updated_at
		FROM resident
		ORDER BY first_name, last_initial
	`
	rows, err := s.q(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	defer rows.Close()
	return collectResidents(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResident(row rowScanner) (*models.Resident, error) {
	var resident models.Resident
	var rawID string
	if err := row.Scan(&rawID, &resident.FirstName, &resident.LastInitial, &resident.OnHiatus, &resident.CreatedAt, &resident.UpdatedAt); err != nil {
		return nil, err
	}
	parsed, err := id.ParseResidentID(rawID)
	if err != nil {
		return nil, err
	}
	resident.ID = parsed
	return &resident, nil
}

func collectResidents(rows *sql.Rows) ([]*models.Resident, error) {
	var out []*models.Resident
	for rows.Next() {
		resident, err := scanResident(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resident: %w", err)
		}
		out = append(out, resident)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
