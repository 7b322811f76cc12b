package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"carelog/internal/home/models"
	id "carelog/pkg/domain"
	"carelog/pkg/platform/sentinel"
	txcontext "carelog/pkg/platform/tx"
)

// PostgresStore persists homes and home groups in PostgreSQL.
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

func (s *PostgresStore) Create(ctx context.Context, home *models.Home) error {
	var groupID any
	if home.GroupID != nil {
		groupID = home.GroupID.String()
	}
	query := `
		INSERT INTO home (id, name, group_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.q(ctx).ExecContext(ctx, query, home.ID.String(), home.Name, groupID, home.CreatedAt, home.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create home: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, homeID id.HomeID) (*models.Home, error) {
	query := `
		SELECT id::text, name, group_id::text, created_at, updated_at
		FROM home
		WHERE id = $1
	`
	home, err := scanHome(s.q(ctx).QueryRowContext(ctx, query, homeID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find home: %w", err)
	}
	return home, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Home, error) {
	query := `
		SELECT id::text, name, group_id::text, created_at, updated_at
		FROM home
		ORDER BY name
	`
	rows, err := s.q(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list homes: %w", err)
	}
	defer rows.Close()

	var out []*models.Home
	for rows.Next() {
		home, err := scanHome(rows)
		if err != nil {
			return nil, fmt.Errorf("scan home: %w", err)
		}
		out = append(out, home)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateGroup(ctx context.Context, group *models.HomeGroup) error {
	query := `
		INSERT INTO home_group (id, name, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.q(ctx).ExecContext(ctx, query, group.ID.String(), group.Name, group.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create home group: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindGroupByID(ctx context.Context, groupID id.HomeGroupID) (*models.HomeGroup, error) {
	query := `SELECT id::text, name, created_at FROM home_group WHERE id = $1`
	var group models.HomeGroup
	var rawID string
	err := s.q(ctx).QueryRowContext(ctx, query, groupID.String()).Scan(&rawID, &group.Name, &group.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find home group: %w", err)
	}
	parsed, err := id.ParseHomeGroupID(rawID)
	if err != nil {
		return nil, err
	}
	group.ID = parsed
	return &group, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHome(row rowScanner) (*models.Home, error) {
	var home models.Home
	var rawID string
	var rawGroupID sql.NullString
	if err := row.Scan(&rawID, &home.Name, &rawGroupID, &home.CreatedAt, &home.UpdatedAt); err != nil {
		return nil, err
	}
	parsed, err := id.ParseHomeID(rawID)
	if err != nil {
		return nil, err
	}
	home.ID = parsed
	if rawGroupID.Valid {
		groupID, err := id.ParseHomeGroupID(rawGroupID.String)
		if err != nil {
			return nil, err
		}
		home.GroupID = &groupID
	}
	return &home, nil
}
