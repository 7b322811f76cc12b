package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	activitymodels "carelog/internal/activity/models"
	homemodels "carelog/internal/home/models"
	"carelog/internal/work/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
	"carelog/pkg/platform/sentinel"
)

// Store is the work persistence surface, including the SQL-side aggregations.
type Store interface {
	Create(ctx context.Context, work *models.Work) error
	ListByHome(ctx context.Context, homeID id.HomeID) ([]*models.Work, error)
	TotalsByRoleAndType(ctx context.Context, homeID id.HomeID) ([]*models.RoleTypeHours, error)
	DailyTotalsByRoleAndType(ctx context.Context, homeID id.HomeID) ([]*models.DailyRoleTypeHours, error)
	TotalsByRole(ctx context.Context, homeID id.HomeID) ([]*models.RoleHours, error)
}

// HomeDirectory verifies the home exists before recording work against it.
type HomeDirectory interface {
	FindByID(ctx context.Context, homeID id.HomeID) (*homemodels.Home, error)
}

// Service records caregiver work and serves the staffing-hours reports.
type Service struct {
	work   Store
	homes  HomeDirectory
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(work Store, homes HomeDirectory, opts ...Option) *Service {
	s := &Service{
		work:  work,
		homes: homes,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Record stores one block of performed work.
func (s *Service) Record(ctx context.Context, homeID id.HomeID, workType string, role activitymodels.CaregiverRole, date time.Time, durationMinutes int) (*models.Work, error) {
	if _, err := s.homes.FindByID(ctx, homeID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "home not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load home")
	}

	work, err := models.NewWork(id.NewWorkID(), homeID, workType, role, date, durationMinutes, s.now())
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, err.Error())
		}
		return nil, err
	}
	if err := s.work.Create(ctx, work); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record work")
	}

	s.logger.InfoContext(ctx, "work recorded",
		"work_id", work.ID,
		"home_id", homeID,
		"caregiver_role", role,
		"duration_minutes", durationMinutes,
	)
	return work, nil
}

// ListByHome returns the raw work records for a home.
func (s *Service) ListByHome(ctx context.Context, homeID id.HomeID) ([]*models.Work, error) {
	records, err := s.work.ListByHome(ctx, homeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list work")
	}
	return records, nil
}

// TotalHoursByRoleAndType returns hours per role and work type, each with
// its share of the role's total.
func (s *Service) TotalHoursByRoleAndType(ctx context.Context, homeID id.HomeID) ([]*models.RoleTypeHours, error) {
	rows, err := s.work.TotalsByRoleAndType(ctx, homeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to aggregate work hours")
	}
	return rows, nil
}

// DailyHoursByRoleAndType is TotalHoursByRoleAndType broken down per day.
func (s *Service) DailyHoursByRoleAndType(ctx context.Context, homeID id.HomeID) ([]*models.DailyRoleTypeHours, error) {
	rows, err := s.work.DailyTotalsByRoleAndType(ctx, homeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to aggregate daily work hours")
	}
	return rows, nil
}

// HomeHoursByRole returns each role's total hours and its share of the
// home's overall hours.
func (s *Service) HomeHoursByRole(ctx context.Context, homeID id.HomeID) ([]*models.RoleHours, error) {
	rows, err := s.work.TotalsByRole(ctx, homeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to aggregate role hours")
	}
	return rows, nil
}
