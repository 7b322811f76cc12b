package store

import (
	"context"
	"database/sql"
	"fmt"

	activitymodels "carelog/internal/activity/models"
	"carelog/internal/work/models"
	id "carelog/pkg/domain"
	"carelog/pkg/platform/tx"
)

// PostgresStore persists work records and runs the hour aggregations in SQL.
// Role and home shares use window functions so each query is a single round
// trip.
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
	if dbTx, ok := tx.From(ctx); ok {
		return dbTx
	}
	return s.db
}

func (s *PostgresStore) Create(ctx context.Context, work *models.Work) error {
	const query = `
		INSERT INTO work (id, home_id, work_type, caregiver_role, date, duration_minutes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.q(ctx).ExecContext(ctx, query,
		work.ID.String(),
		work.HomeID.String(),
		work.WorkType,
		string(work.CaregiverRole),
		work.Date,
		work.DurationMinutes,
		work.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByHome(ctx context.Context, homeID id.HomeID) ([]*models.Work, error) {
	const query = `
		SELECT id, home_id, work_type, caregiver_role, date, duration_minutes, created_at
		FROM work
		WHERE home_id = $1
		ORDER BY date, created_at`
	rows, err := s.q(ctx).QueryContext(ctx, query, homeID.String())
	if err != nil {
		return nil, fmt.Errorf("list work: %w", err)
	}
	defer rows.Close()

	var out []*models.Work
	for rows.Next() {
		var (
			record    models.Work
			rawID     string
			rawHomeID string
			rawRole   string
		)
		if err := rows.Scan(&rawID, &rawHomeID, &record.WorkType, &rawRole, &record.Date, &record.DurationMinutes, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan work: %w", err)
		}
		workID, err := id.ParseWorkID(rawID)
		if err != nil {
			return nil, err
		}
		hID, err := id.ParseHomeID(rawHomeID)
		if err != nil {
			return nil, err
		}
		record.ID = workID
		record.HomeID = hID
		record.CaregiverRole = activitymodels.CaregiverRole(rawRole)
		out = append(out, &record)
	}
	return out, rows.Err()
}

func (s *PostgresStore) TotalsByRoleAndType(ctx context.Context, homeID id.HomeID) ([]*models.RoleTypeHours, error) {
	const query = `
		WITH work_totals_by_type AS (
			SELECT
				caregiver_role,
				work_type,
				SUM(duration_minutes) / 60.0 AS total_hours
			FROM work
			WHERE home_id = $1
			GROUP BY caregiver_role, work_type
		),
		with_role_totals AS (
			SELECT
				*,
				SUM(total_hours) OVER (PARTITION BY caregiver_role) AS role_total_hours
			FROM work_totals_by_type
		)
		SELECT
			caregiver_role,
			work_type,
			total_hours,
			role_total_hours,
			total_hours::float / role_total_hours::float AS percent_of_role_total_hours
		FROM with_role_totals
		ORDER BY caregiver_role, work_type`
	rows, err := s.q(ctx).QueryContext(ctx, query, homeID.String())
	if err != nil {
		return nil, fmt.Errorf("aggregate work by role and type: %w", err)
	}
	defer rows.Close()

	var out []*models.RoleTypeHours
	for rows.Next() {
		var (
			row     models.RoleTypeHours
			rawRole string
		)
		if err := rows.Scan(&rawRole, &row.WorkType, &row.TotalHours, &row.RoleTotalHours, &row.PercentOfRole); err != nil {
			return nil, fmt.Errorf("scan work aggregate: %w", err)
		}
		row.Role = activitymodels.CaregiverRole(rawRole)
		out = append(out, &row)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DailyTotalsByRoleAndType(ctx context.Context, homeID id.HomeID) ([]*models.DailyRoleTypeHours, error) {
	const query = `
		WITH daily_totals_by_type AS (
			SELECT
				date,
				caregiver_role,
				work_type,
				SUM(duration_minutes) / 60.0 AS daily_total_hours
			FROM work
			WHERE home_id = $1
			GROUP BY date, caregiver_role, work_type
		),
		with_role_totals AS (
			SELECT
				*,
				SUM(daily_total_hours) OVER (PARTITION BY date, caregiver_role) AS daily_role_total_hours
			FROM daily_totals_by_type
		)
		SELECT
			date,
			caregiver_role,
			work_type,
			daily_total_hours,
			daily_role_total_hours,
			daily_total_hours::float / daily_role_total_hours::float AS percent_of_role_total_hours
		FROM with_role_totals
		ORDER BY date, caregiver_role, work_type`
	rows, err := s.q(ctx).QueryContext(ctx, query, homeID.String())
	if err != nil {
		return nil, fmt.Errorf("aggregate daily work: %w", err)
	}
	defer rows.Close()

	var out []*models.DailyRoleTypeHours
	for rows.Next() {
		var (
			row     models.DailyRoleTypeHours
			rawRole string
		)
		if err := rows.Scan(&row.Date, &rawRole, &row.WorkType, &row.TotalHours, &row.RoleTotalHours, &row.PercentOfRole); err != nil {
			return nil, fmt.Errorf("scan daily work aggregate: %w", err)
		}
		row.Role = activitymodels.CaregiverRole(rawRole)
		out = append(out, &row)
	}
	return out, rows.Err()
}

func (s *PostgresStore) TotalsByRole(ctx context.Context, homeID id.HomeID) ([]*models.RoleHours, error) {
	const query = `
		WITH work_totals_by_role AS (
			SELECT
				caregiver_role,
				(SUM(duration_minutes) / 60.0)::float AS total_hours
			FROM work
			WHERE home_id = $1
			GROUP BY caregiver_role
		)
		SELECT
			caregiver_role,
			total_hours,
			total_hours / SUM(total_hours) OVER () AS percent_of_home_total_hours
		FROM work_totals_by_role
		ORDER BY caregiver_role`
	rows, err := s.q(ctx).QueryContext(ctx, query, homeID.String())
	if err != nil {
		return nil, fmt.Errorf("aggregate work by role: %w", err)
	}
	defer rows.Close()

	var out []*models.RoleHours
	for rows.Next() {
		var (
			row     models.RoleHours
			rawRole string
		)
		if err := rows.Scan(&rawRole, &row.TotalHours, &row.PercentOfHome); err != nil {
			return nil, fmt.Errorf("scan role aggregate: %w", err)
		}
		row.Role = activitymodels.CaregiverRole(rawRole)
		out = append(out, &row)
	}
	return out, rows.Err()
}
