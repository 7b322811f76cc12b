package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks ActivityDirectory,ResidentDirectory

import (
	"context"
	"errors"
	"log/slog"
	"time"

	activityservice "carelog/internal/activity/service"
	"carelog/internal/report/models"
	residentmodels "carelog/internal/resident/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
	"carelog/pkg/platform/sentinel"
)

// ActivityDirectory supplies recent-activity counts, either per resident or
// pre-annotated for a whole home.
type ActivityDirectory interface {
	AnnotateCurrentResidents(ctx context.Context, homeID id.HomeID, asOf time.Time) ([]*activityservice.ResidentActivityCount, error)
	RecentActivityCount(ctx context.Context, residentID id.ResidentID, asOf time.Time) (int, error)
}

// ResidentDirectory resolves residents for single-resident classification.
type ResidentDirectory interface {
	FindByID(ctx context.Context, residentID id.ResidentID) (*residentmodels.Resident, error)
}

// ResidentLevel is one resident's classification within a home breakdown.
type ResidentLevel struct {
	Resident *residentmodels.Resident `json:"resident"`
	Count    int                      `json:"count"`
	Level    models.Level             `json:"level"`
}

// Breakdown is the activity-level report for one home at one point in time.
// Percentages always sum to 100 when the home has residents, 0 otherwise.
type Breakdown struct {
	HomeID    id.HomeID            `json:"home_id"`
	AsOf      time.Time            `json:"as_of"`
	Total     int                  `json:"total_residents"`
	Residents []*ResidentLevel     `json:"residents"`
	Counts    map[models.Level]int `json:"counts"`
	Percents  map[models.Level]int `json:"percents"`
}

// Service produces activity-level reports over the current residents of a
// home. It has no store of its own: everything is derived from the residency
// and activity domains at query time.
type Service struct {
	activities ActivityDirectory
	residents  ResidentDirectory
	logger     *slog.Logger
	now        func() time.Time
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

func New(activities ActivityDirectory, residents ResidentDirectory, opts ...Option) *Service {
	s := &Service{
		activities: activities,
		residents:  residents,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// HomeBreakdown classifies every current resident of the home and normalizes
// the per-level counts into percentages.
func (s *Service) HomeBreakdown(ctx context.Context, homeID id.HomeID) (*Breakdown, error) {
	asOf := s.now()
	annotated, err := s.activities.AnnotateCurrentResidents(ctx, homeID, asOf)
	if err != nil {
		return nil, err
	}

	breakdown := &Breakdown{
		HomeID:    homeID,
		AsOf:      asOf,
		Total:     len(annotated),
		Residents: make([]*ResidentLevel, 0, len(annotated)),
		Counts:    make(map[models.Level]int, len(models.Levels)),
	}
	for _, level := range models.Levels {
		breakdown.Counts[level] = 0
	}
	for _, entry := range annotated {
		level, err := models.ClassifyResident(entry.Resident.OnHiatus, entry.Count)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to classify resident")
		}
		breakdown.Counts[level]++
		breakdown.Residents = append(breakdown.Residents, &ResidentLevel{
			Resident: entry.Resident,
			Count:    entry.Count,
			Level:    level,
		})
	}
	breakdown.Percents = models.NormalizePercents(breakdown.Counts)

	s.logger.DebugContext(ctx, "home breakdown computed",
		"home_id", homeID,
		"residents", breakdown.Total,
	)
	return breakdown, nil
}

// ClassifyResident returns one resident's current activity level.
func (s *Service) ClassifyResident(ctx context.Context, residentID id.ResidentID) (*ResidentLevel, error) {
	resident, err := s.residents.FindByID(ctx, residentID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "resident not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load resident")
	}
	count, err := s.activities.RecentActivityCount(ctx, residentID, s.now())
	if err != nil {
		return nil, err
	}
	level, err := models.ClassifyResident(resident.OnHiatus, count)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to classify resident")
	}
	return &ResidentLevel{Resident: resident, Count: count, Level: level}, nil
}
