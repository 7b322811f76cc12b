package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"carelog/internal/audit"
	homemodels "carelog/internal/home/models"
	residentmodels "carelog/internal/resident/models"
	"carelog/internal/residency/metrics"
	"carelog/internal/residency/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
	"carelog/pkg/platform/sentinel"
	"carelog/pkg/platform/tx"
)

// Store is the residency persistence surface. Implementations live in
// internal/residency/store.
type Store interface {
	// LockResident serializes residency writes for one resident within the
	// current transaction.
	LockResident(ctx context.Context, residentID id.ResidentID) error
	Create(ctx context.Context, residency *models.Residency) error
	Update(ctx context.Context, residency *models.Residency) error
	FindByID(ctx context.Context, residencyID id.ResidencyID) (*models.Residency, error)
	ListByResident(ctx context.Context, residentID id.ResidentID) ([]*models.Residency, error)
	ListOpenByResident(ctx context.Context, residentID id.ResidentID) ([]*models.Residency, error)
	ListOpenByHome(ctx context.Context, homeID id.HomeID) ([]*models.Residency, error)
	ListByHomeAsOf(ctx context.Context, homeID id.HomeID, asOf time.Time) ([]*models.Residency, error)
}

// ResidentDirectory resolves resident records for query results.
type ResidentDirectory interface {
	FindByID(ctx context.Context, residentID id.ResidentID) (*residentmodels.Resident, error)
	FindByIDs(ctx context.Context, residentIDs []id.ResidentID) ([]*residentmodels.Resident, error)
}

// HomeDirectory resolves home records for query results.
type HomeDirectory interface {
	FindByID(ctx context.Context, homeID id.HomeID) (*homemodels.Home, error)
}

// AuditPublisher records residency changes. Best-effort: audit failures are
// logged, never surfaced to the caller.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service owns the residency lifecycle and the "who lives where" queries.
// Every write runs the overlap validator inside one transaction with the
// resident row locked, so concurrent move-ins cannot race past the check.
type Service struct {
	residencies Store
	residents   ResidentDirectory
	homes       HomeDirectory
	txRunner    tx.Runner
	logger      *slog.Logger
	metrics     *metrics.Metrics
	audit       AuditPublisher
	now         func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(residencies Store, residents ResidentDirectory, homes HomeDirectory, txRunner tx.Runner, opts ...Option) *Service {
	s := &Service{
		residencies: residencies,
		residents:   residents,
		homes:       homes,
		txRunner:    txRunner,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// MoveIn records a resident moving into a home. moveOut may be set when
// backfilling history. The read-validate-write sequence is one transaction.
func (s *Service) MoveIn(ctx context.Context, residentID id.ResidentID, homeID id.HomeID, moveIn time.Time, moveOut *time.Time) (*models.Residency, error) {
	if _, err := s.residents.FindByID(ctx, residentID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "resident not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load resident")
	}
	if _, err := s.homes.FindByID(ctx, homeID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "home not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load home")
	}

	residency, err := models.NewResidency(id.NewResidencyID(), residentID, homeID, moveIn, moveOut, s.now())
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, err.Error())
		}
		return nil, err
	}

	err = s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.residencies.LockResident(ctx, residentID); err != nil {
			return err
		}
		existing, err := s.residencies.ListByResident(ctx, residentID)
		if err != nil {
			return err
		}
		if err := models.Validate(residency, existing); err != nil {
			return err
		}
		return s.residencies.Create(ctx, residency)
	})
	if err != nil {
		return nil, s.rejectWrite(ctx, err, "move-in", residentID)
	}

	s.metrics.RecordCreated()
	s.emitAudit(ctx, audit.Event{
		Action:      audit.ActionResidencyCreated,
		ResidentID:  residentID.String(),
		HomeID:      homeID.String(),
		ResidencyID: residency.ID.String(),
	})
	s.logger.InfoContext(ctx, "residency created",
		"residency_id", residency.ID,
		"resident_id", residentID,
		"home_id", homeID,
	)
	return residency, nil
}

// MoveOut closes an open residency. The closed interval is revalidated so a
// bad move-out date cannot corrupt history.
func (s *Service) MoveOut(ctx context.Context, residencyID id.ResidencyID, moveOut time.Time) (*models.Residency, error) {
	var closed *models.Residency
	err := s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		residency, err := s.residencies.FindByID(ctx, residencyID)
		if err != nil {
			return err
		}
		if !residency.IsOpen() {
			return dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeConflict, "residency is already closed")
		}
		if err := s.residencies.LockResident(ctx, residency.ResidentID); err != nil {
			return err
		}
		existing, err := s.residencies.ListByResident(ctx, residency.ResidentID)
		if err != nil {
			return err
		}
		residency.Close(moveOut, s.now())
		if err := models.Validate(residency, existing); err != nil {
			return err
		}
		if err := s.residencies.Update(ctx, residency); err != nil {
			return err
		}
		closed = residency
		return nil
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "residency not found")
		}
		return nil, s.rejectWrite(ctx, err, "move-out", id.ResidentID{})
	}

	s.metrics.RecordClosed()
	s.emitAudit(ctx, audit.Event{
		Action:      audit.ActionResidencyClosed,
		ResidentID:  closed.ResidentID.String(),
		HomeID:      closed.HomeID.String(),
		ResidencyID: closed.ID.String(),
	})
	s.logger.InfoContext(ctx, "residency closed",
		"residency_id", closed.ID,
		"resident_id", closed.ResidentID,
	)
	return closed, nil
}

// CurrentResidents returns the residents with an open residency at the home.
// This is the default "currently resident" semantics used by reporting; for
// historical queries use ResidentsAsOf.
func (s *Service) CurrentResidents(ctx context.Context, homeID id.HomeID) ([]*residentmodels.Resident, error) {
	residencies, err := s.residencies.ListOpenByHome(ctx, homeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list open residencies")
	}
	return s.resolveResidents(ctx, residencies)
}

// ResidentsAsOf returns the residents housed at the home on the given day,
// counting both the move-in and move-out days as residence.
func (s *Service) ResidentsAsOf(ctx context.Context, homeID id.HomeID, asOf time.Time) ([]*residentmodels.Resident, error) {
	residencies, err := s.residencies.ListByHomeAsOf(ctx, homeID, asOf)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list residencies")
	}
	return s.resolveResidents(ctx, residencies)
}

// CurrentResidencies returns the open residencies for a home.
func (s *Service) CurrentResidencies(ctx context.Context, homeID id.HomeID) ([]*models.Residency, error) {
	residencies, err := s.residencies.ListOpenByHome(ctx, homeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list open residencies")
	}
	return residencies, nil
}

// CurrentResidencyFor returns the single open residency for a resident.
// Zero open residencies fails with a not-found; more than one means a write
// path skipped validation and fails loudly rather than picking one.
func (s *Service) CurrentResidencyFor(ctx context.Context, residentID id.ResidentID) (*models.Residency, error) {
	open, err := s.residencies.ListOpenByResident(ctx, residentID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list open residencies")
	}
	switch len(open) {
	case 0:
		return nil, dErrors.Wrap(models.ErrResidencyNotFound, dErrors.CodeNotFound, "resident has no current residency")
	case 1:
		return open[0], nil
	default:
		return nil, dErrors.Wrap(models.ErrMultipleCurrentResidencies, dErrors.CodeInvariantViolation, "resident has multiple open residencies")
	}
}

// CurrentHomeFor returns the home the resident currently lives in.
func (s *Service) CurrentHomeFor(ctx context.Context, residentID id.ResidentID) (*homemodels.Home, error) {
	residency, err := s.CurrentResidencyFor(ctx, residentID)
	if err != nil {
		return nil, err
	}
	home, err := s.homes.FindByID(ctx, residency.HomeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load home")
	}
	return home, nil
}

// ListForResident returns a resident's full occupancy history.
func (s *Service) ListForResident(ctx context.Context, residentID id.ResidentID) ([]*models.Residency, error) {
	residencies, err := s.residencies.ListByResident(ctx, residentID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list residencies")
	}
	return residencies, nil
}

func (s *Service) resolveResidents(ctx context.Context, residencies []*models.Residency) ([]*residentmodels.Resident, error) {
	if len(residencies) == 0 {
		return nil, nil
	}
	ids := make([]id.ResidentID, len(residencies))
	for i, residency := range residencies {
		ids[i] = residency.ResidentID
	}
	residents, err := s.residents.FindByIDs(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load residents")
	}
	return residents, nil
}

// rejectWrite translates validator sentinels into coded errors and bumps the
// rejection metric. The sentinel stays in the chain so transactional callers
// can match with errors.Is.
func (s *Service) rejectWrite(ctx context.Context, err error, operation string, residentID id.ResidentID) error {
	switch {
	case errors.Is(err, models.ErrInvalidDateOrder):
		s.metrics.RecordRejected("invalid_date_order")
		return dErrors.Wrap(err, dErrors.CodeValidation, "move-in date must precede move-out date")
	case errors.Is(err, models.ErrOverlappingResidency):
		s.metrics.RecordRejected("overlapping_residency")
		return dErrors.Wrap(err, dErrors.CodeValidation, "resident cannot have overlapping residencies")
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "record not found")
	case dErrors.HasCode(err, dErrors.CodeConflict):
		return err
	default:
		s.logger.ErrorContext(ctx, "residency write failed",
			"operation", operation,
			"resident_id", residentID,
			"error", err.Error(),
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "residency write failed")
	}
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", event.Action, "error", err.Error())
	}
}
