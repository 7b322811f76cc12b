package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"carelog/internal/resident/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
	"carelog/pkg/platform/sentinel"
)

// Store is the persistence surface the service needs. Implementations live in
// internal/resident/store.
type Store interface {
	Create(ctx context.Context, resident *models.Resident) error
	Update(ctx context.Context, resident *models.Resident) error
	FindByID(ctx context.Context, residentID id.ResidentID) (*models.Resident, error)
	List(ctx context.Context) ([]*models.Resident, error)
}

// Service manages resident records.
type Service struct {
	residents Store
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(residents Store, opts ...Option) *Service {
	s := &Service{residents: residents, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

func (s *Service) Create(ctx context.Context, firstName, lastInitial string) (*models.Resident, error) {
	firstName = strings.TrimSpace(firstName)
	lastInitial = strings.TrimSpace(lastInitial)

	resident, err := models.NewResident(id.NewResidentID(), firstName, lastInitial, s.now())
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, err.Error())
		}
		return nil, err
	}

	if err := s.residents.Create(ctx, resident); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create resident")
	}
	s.logger.InfoContext(ctx, "resident created", "resident_id", resident.ID)
	return resident, nil
}

func (s *Service) Get(ctx context.Context, residentID id.ResidentID) (*models.Resident, error) {
	resident, err := s.residents.FindByID(ctx, residentID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "resident not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load resident")
	}
	return resident, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Resident, error) {
	residents, err := s.residents.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list residents")
	}
	return residents, nil
}

// SetHiatus flips the hiatus flag. Hiatus residents keep their residency and
// history; only activity-level classification is affected.
func (s *Service) SetHiatus(ctx context.Context, residentID id.ResidentID, onHiatus bool) (*models.Resident, error) {
	resident, err := s.Get(ctx, residentID)
	if err != nil {
		return nil, err
	}
	resident.SetHiatus(onHiatus, s.now())
	if err := s.residents.Update(ctx, resident); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "resident not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update resident")
	}
	s.logger.InfoContext(ctx, "resident hiatus changed", "resident_id", resident.ID, "on_hiatus", onHiatus)
	return resident, nil
}
