package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"carelog/internal/activity/models"
	residencymodels "carelog/internal/residency/models"
	id "carelog/pkg/domain"
	txcontext "carelog/pkg/platform/tx"
)

// PostgresStore persists resident activity records in PostgreSQL. Records are
// append-only; there is deliberately no update or delete.
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

// CreateBatch inserts every record of a group submission. Callers run it
// inside a transaction so either all rows commit or none do.
func (s *PostgresStore) CreateBatch(ctx context.Context, records []*models.ResidentActivity) error {
	query := `
		INSERT INTO resident_activity (
			id, resident_id, residency_id, home_id, group_id,
			activity_type, caregiver_role, activity_date, activity_minutes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for _, record := range records {
		_, err := s.q(ctx).ExecContext(ctx, query,
			record.ID.String(),
			record.ResidentID.String(),
			record.ResidencyID.String(),
			record.HomeID.String(),
			record.GroupID.String(),
			record.ActivityType.String(),
			record.CaregiverRole.String(),
			record.ActivityDate,
			record.ActivityMinutes,
			record.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("create resident activity: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) CountByResidentSince(ctx context.Context, residentID id.ResidentID, since time.Time) (int, error) {
	since = residencymodels.TruncateToDay(since)
	var count int
	err := s.q(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM resident_activity WHERE resident_id = $1 AND activity_date >= $2`,
		residentID.String(), since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count resident activity: %w", err)
	}
	return count, nil
}

// CountByResidentsSince returns counts for a whole resident set in one query.
// Residents with no matching records appear with a zero count.
func (s *PostgresStore) CountByResidentsSince(ctx context.Context, residentIDs []id.ResidentID, since time.Time) (map[id.ResidentID]int, error) {
	counts := make(map[id.ResidentID]int, len(residentIDs))
	if len(residentIDs) == 0 {
		return counts, nil
	}
	ids := make([]string, len(residentIDs))
	for i, rid := range residentIDs {
		ids[i] = rid.String()
		counts[rid] = 0
	}
	since = residencymodels.TruncateToDay(since)
	query := `
		SELECT resident_id::text, COUNT(*)
		FROM resident_activity
		WHERE resident_id = ANY($1) AND activity_date >= $2
		GROUP BY resident_id
	`
	rows, err := s.q(ctx).QueryContext(ctx, query, pq.Array(ids), since)
	if err != nil {
		return nil, fmt.Errorf("count resident activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rawID string
		var count int
		if err := rows.Scan(&rawID, &count); err != nil {
			return nil, fmt.Errorf("scan activity count: %w", err)
		}
		rid, err := id.ParseResidentID(rawID)
		if err != nil {
			return nil, err
		}
		counts[rid] = count
	}
	return counts, rows.Err()
}

const activityColumns = `id::text, resident_id::text, residency_id::text, home_id::text, group_id::text,
	activity_type, caregiver_role, activity_date, activity_minutes, created_at`

func (s *PostgresStore) ListByResident(ctx context.Context, residentID id.ResidentID) ([]*models.ResidentActivity, error) {
	query := `SELECT ` + activityColumns + ` FROM resident_activity WHERE resident_id = $1 ORDER BY activity_date DESC`
	return s.list(ctx, query, residentID.String())
}

func (s *PostgresStore) ListByGroup(ctx context.Context, groupID id.ActivityGroupID) ([]*models.ResidentActivity, error) {
	query := `SELECT ` + activityColumns + ` FROM resident_activity WHERE group_id = $1`
	return s.list(ctx, query, groupID.String())
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]*models.ResidentActivity, error) {
	rows, err := s.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resident activities: %w", err)
	}
	defer rows.Close()

	var out []*models.ResidentActivity
	for rows.Next() {
		record, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resident activity: %w", err)
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func scanActivity(rows *sql.Rows) (*models.ResidentActivity, error) {
	var record models.ResidentActivity
	var rawID, rawResidentID, rawResidencyID, rawHomeID, rawGroupID string
	var activityType, caregiverRole string
	if err := rows.Scan(&rawID, &rawResidentID, &rawResidencyID, &rawHomeID, &rawGroupID,
		&activityType, &caregiverRole, &record.ActivityDate, &record.ActivityMinutes, &record.CreatedAt); err != nil {
		return nil, err
	}
	activityID, err := id.ParseActivityID(rawID)
	if err != nil {
		return nil, err
	}
	residentID, err := id.ParseResidentID(rawResidentID)
	if err != nil {
		return nil, err
	}
	residencyID, err := id.ParseResidencyID(rawResidencyID)
	if err != nil {
		return nil, err
	}
	homeID, err := id.ParseHomeID(rawHomeID)
	if err != nil {
		return nil, err
	}
	groupID, err := id.ParseActivityGroupID(rawGroupID)
	if err != nil {
		return nil, err
	}
	record.ID = activityID
	record.ResidentID = residentID
	record.ResidencyID = residencyID
	record.HomeID = homeID
	record.GroupID = groupID
	record.ActivityType = models.ActivityType(activityType)
	record.CaregiverRole = models.CaregiverRole(caregiverRole)
	record.ActivityDate = residencymodels.TruncateToDay(record.ActivityDate)
	return &record, nil
}
