package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"carelog/internal/home/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
	"carelog/pkg/platform/sentinel"
)

type Store interface {
	Create(ctx context.Context, home *models.Home) error
	FindByID(ctx context.Context, homeID id.HomeID) (*models.Home, error)
	List(ctx context.Context) ([]*models.Home, error)
	CreateGroup(ctx context.Context, group *models.HomeGroup) error
	FindGroupByID(ctx context.Context, groupID id.HomeGroupID) (*models.HomeGroup, error)
}

// Service manages homes and home groups.
type Service struct {
	homes  Store
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

func New(homes Store, opts ...Option) *Service {
	s := &Service{homes: homes, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

func (s *Service) Create(ctx context.Context, name string, groupID *id.HomeGroupID) (*models.Home, error) {
	name = strings.TrimSpace(name)

	if groupID != nil {
		if _, err := s.homes.FindGroupByID(ctx, *groupID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.New(dErrors.CodeNotFound, "home group not found")
			}
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load home group")
		}
	}

	home, err := models.NewHome(id.NewHomeID(), name, groupID, s.now())
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, err.Error())
		}
		return nil, err
	}

	if err := s.homes.Create(ctx, home); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create home")
	}
	s.logger.InfoContext(ctx, "home created", "home_id", home.ID)
	return home, nil
}

func (s *Service) Get(ctx context.Context, homeID id.HomeID) (*models.Home, error) {
	home, err := s.homes.FindByID(ctx, homeID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "home not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load home")
	}
	return home, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Home, error) {
	homes, err := s.homes.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list homes")
	}
	return homes, nil
}

func (s *Service) CreateGroup(ctx context.Context, name string) (*models.HomeGroup, error) {
	group, err := models.NewHomeGroup(id.NewHomeGroupID(), strings.TrimSpace(name), s.now())
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, err.Error())
		}
		return nil, err
	}
	if err := s.homes.CreateGroup(ctx, group); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create home group")
	}
	return group, nil
}
