package store

import (
	"context"
	"sync"

	"carelog/internal/home/models"
	id "carelog/pkg/domain"
	"carelog/pkg/platform/sentinel"
)

// InMemory keeps homes and groups in maps. Intended for tests and local runs.
type InMemory struct {
	mu     sync.RWMutex
	homes  map[id.HomeID]*models.Home
	groups map[id.HomeGroupID]*models.HomeGroup
}

func NewInMemory() *InMemory {
	return &InMemory{
		homes:  make(map[id.HomeID]*models.Home),
		groups: make(map[id.HomeGroupID]*models.HomeGroup),
	}
}

func (s *InMemory) Create(_ context.Context, home *models.Home) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.homes[home.ID]; exists {
		return sentinel.ErrConflict
	}
	clone := *home
	s.homes[home.ID] = &clone
	return nil
}

func (s *InMemory) FindByID(_ context.Context, homeID id.HomeID) (*models.Home, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	home, ok := s.homes[homeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *home
	return &clone, nil
}

func (s *InMemory) List(_ context.Context) ([]*models.Home, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Home, 0, len(s.homes))
	for _, home := range s.homes {
		clone := *home
		out = append(out, &clone)
	}
	return out, nil
}

func (s *InMemory) CreateGroup(_ context.Context, group *models.HomeGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.groups[group.ID]; exists {
		return sentinel.ErrConflict
	}
	clone := *group
	s.groups[group.ID] = &clone
	return nil
}

func (s *InMemory) FindGroupByID(_ context.Context, groupID id.HomeGroupID) (*models.HomeGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	group, ok := s.groups[groupID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *group
	return &clone, nil
}
