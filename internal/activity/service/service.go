package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,ResidencyDirectory,ResidentDirectory,CountCache,AuditPublisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"carelog/internal/activity/metrics"
	"carelog/internal/activity/models"
	"carelog/internal/audit"
	residentmodels "carelog/internal/resident/models"
	residencymodels "carelog/internal/residency/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
	"carelog/pkg/platform/tx"
)

// RecentWindow is how far back an activity still counts toward a resident's
// recent-activity total. The window has no upper bound: anything on or after
// the cutoff counts, including future-dated entries.
const RecentWindow = 7 * 24 * time.Hour

// Store is the activity persistence surface.
type Store interface {
	CreateBatch(ctx context.Context, records []*models.ResidentActivity) error
	CountByResidentSince(ctx context.Context, residentID id.ResidentID, since time.Time) (int, error)
	CountByResidentsSince(ctx context.Context, residentIDs []id.ResidentID, since time.Time) (map[id.ResidentID]int, error)
	ListByResident(ctx context.Context, residentID id.ResidentID) ([]*models.ResidentActivity, error)
	ListByGroup(ctx context.Context, groupID id.ActivityGroupID) ([]*models.ResidentActivity, error)
}

// ResidencyDirectory resolves where residents currently live. Activities are
// pinned to the residency open at recording time, so every submission goes
// through here.
type ResidencyDirectory interface {
	CurrentResidencyFor(ctx context.Context, residentID id.ResidentID) (*residencymodels.Residency, error)
	CurrentResidencies(ctx context.Context, homeID id.HomeID) ([]*residencymodels.Residency, error)
}

// ResidentDirectory resolves resident records for annotated listings.
type ResidentDirectory interface {
	FindByIDs(ctx context.Context, residentIDs []id.ResidentID) ([]*residentmodels.Resident, error)
}

// CountCache is an optional read-through cache for recent-activity counts.
type CountCache interface {
	Get(ctx context.Context, residentID id.ResidentID, since time.Time) (int, bool)
	Set(ctx context.Context, residentID id.ResidentID, since time.Time, count int)
	Invalidate(ctx context.Context, residentIDs []id.ResidentID)
}

// AuditPublisher records accepted and rejected submissions.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// ResidentActivityCount pairs a resident with their recent-activity total.
type ResidentActivityCount struct {
	Resident *residentmodels.Resident `json:"resident"`
	Count    int                      `json:"count"`
}

// Service records group activity submissions and answers recent-activity
// count queries. A group submission is all-or-nothing: if any listed resident
// has no open residency, no records are written.
type Service struct {
	activities  Store
	residencies ResidencyDirectory
	residents   ResidentDirectory
	txRunner    tx.Runner
	cache       CountCache
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

func WithCountCache(cache CountCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(activities Store, residencies ResidencyDirectory, residents ResidentDirectory, txRunner tx.Runner, opts ...Option) *Service {
	s := &Service{
		activities:  activities,
		residencies: residencies,
		residents:   residents,
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

// RecordGroupActivity fans a group submission out into one record per
// resident. Every resident must have exactly one open residency; a single
// ineligible resident rejects the whole submission with no records written.
func (s *Service) RecordGroupActivity(ctx context.Context, sub *models.GroupSubmission) ([]*models.ResidentActivity, error) {
	if err := sub.Validate(); err != nil {
		s.metrics.RecordRejected("invalid_submission")
		return nil, err
	}

	// Resolve every residency before writing anything, so a late failure
	// never leaves a partial group behind.
	records := make([]*models.ResidentActivity, 0, len(sub.ResidentIDs))
	groupID := id.NewActivityGroupID()
	now := s.now()
	for _, residentID := range sub.ResidentIDs {
		residency, err := s.residencies.CurrentResidencyFor(ctx, residentID)
		if err != nil {
			return nil, s.rejectSubmission(ctx, err, residentID, sub)
		}
		records = append(records, models.NewResidentActivity(id.NewActivityID(), groupID, residency, sub, residentID, now))
	}

	err := s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		return s.activities.CreateBatch(ctx, records)
	})
	if err != nil {
		s.metrics.RecordRejected("write_failed")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist activity records")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, sub.ResidentIDs)
	}
	s.metrics.RecordGroup(len(records))
	for _, record := range records {
		s.emitAudit(ctx, audit.Event{
			Action:      audit.ActionActivityRecorded,
			ResidentID:  record.ResidentID.String(),
			HomeID:      record.HomeID.String(),
			ResidencyID: record.ResidencyID.String(),
			GroupID:     record.GroupID.String(),
		})
	}
	s.logger.InfoContext(ctx, "activity group recorded",
		"group_id", groupID,
		"residents", len(records),
		"activity_type", sub.ActivityType,
	)
	return records, nil
}

// RecentActivityCount returns how many activity records the resident has on
// or after asOf minus seven days.
func (s *Service) RecentActivityCount(ctx context.Context, residentID id.ResidentID, asOf time.Time) (int, error) {
	since := windowStart(asOf)
	if s.cache != nil {
		if count, ok := s.cache.Get(ctx, residentID, since); ok {
			return count, nil
		}
	}
	count, err := s.activities.CountByResidentSince(ctx, residentID, since)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count activities")
	}
	if s.cache != nil {
		s.cache.Set(ctx, residentID, since, count)
	}
	return count, nil
}

// AnnotateCurrentResidents returns the home's current residents, each with
// their recent-activity count. Residents with no records get an explicit
// zero. Counts are fetched in one batch; the per-resident cache is bypassed.
func (s *Service) AnnotateCurrentResidents(ctx context.Context, homeID id.HomeID, asOf time.Time) ([]*ResidentActivityCount, error) {
	residencies, err := s.residencies.CurrentResidencies(ctx, homeID)
	if err != nil {
		return nil, err
	}
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
	counts, err := s.activities.CountByResidentsSince(ctx, ids, windowStart(asOf))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count activities")
	}

	annotated := make([]*ResidentActivityCount, 0, len(residents))
	for _, resident := range residents {
		annotated = append(annotated, &ResidentActivityCount{
			Resident: resident,
			Count:    counts[resident.ID],
		})
	}
	return annotated, nil
}

// ListForResident returns a resident's full activity history.
func (s *Service) ListForResident(ctx context.Context, residentID id.ResidentID) ([]*models.ResidentActivity, error) {
	records, err := s.activities.ListByResident(ctx, residentID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list activities")
	}
	return records, nil
}

// ListGroup returns every record written for one group submission.
func (s *Service) ListGroup(ctx context.Context, groupID id.ActivityGroupID) ([]*models.ResidentActivity, error) {
	records, err := s.activities.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list group activities")
	}
	return records, nil
}

func windowStart(asOf time.Time) time.Time {
	return residencymodels.TruncateToDay(asOf.Add(-RecentWindow))
}

// rejectSubmission maps a residency-resolution failure onto the submission,
// naming the resident that made the group ineligible.
func (s *Service) rejectSubmission(ctx context.Context, err error, residentID id.ResidentID, sub *models.GroupSubmission) error {
	reason := "residency_lookup_failed"
	switch {
	case errors.Is(err, residencymodels.ErrResidencyNotFound):
		reason = "no_current_residency"
		err = dErrors.Wrap(err, dErrors.CodeValidation,
			fmt.Sprintf("resident %s has no current residency", residentID))
	case errors.Is(err, residencymodels.ErrMultipleCurrentResidencies):
		reason = "multiple_current_residencies"
		err = dErrors.Wrap(err, dErrors.CodeInvariantViolation,
			fmt.Sprintf("resident %s has multiple open residencies", residentID))
	}
	s.metrics.RecordRejected(reason)
	s.emitAudit(ctx, audit.Event{
		Action:     audit.ActionActivityRejected,
		ResidentID: residentID.String(),
		Reason:     reason,
	})
	s.logger.WarnContext(ctx, "activity group rejected",
		"resident_id", residentID,
		"residents", len(sub.ResidentIDs),
		"reason", reason,
	)
	return err
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", event.Action, "error", err.Error())
	}
}
