package store

import (
	"context"
	"sync"

	"carelog/internal/resident/models"
	id "carelog/pkg/domain"
	"carelog/pkg/platform/sentinel"
)

// InMemory keeps residents in a map. Intended for tests and local runs.
type InMemory struct {
	mu        sync.RWMutex
	residents map[id.ResidentID]*models.Resident
}

func NewInMemory() *InMemory {
	return &InMemory{residents: make(map[id.ResidentID]*models.Resident)}
}

func (s *InMemory) Create(_ context.Context, resident *models.Resident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.residents[resident.ID]; exists {
		return sentinel.ErrConflict
	}
	clone := *resident
	s.residents[resident.ID] = &clone
	return nil
}

func (s *InMemory) Update(_ context.Context, resident *models.Resident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.residents[resident.ID]; !exists {
		return sentinel.ErrNotFound
	}
	clone := *resident
	s.residents[resident.ID] = &clone
	return nil
}

func (s *InMemory) FindByID(_ context.Context, residentID id.ResidentID) (*models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resident, ok := s.residents[residentID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *resident
	return &clone, nil
}

func (s *InMemory) FindByIDs(_ context.Context, residentIDs []id.ResidentID) ([]*models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Resident, 0, len(residentIDs))
	for _, rid := range residentIDs {
		if resident, ok := s.residents[rid]; ok {
			clone := *resident
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *InMemory) List(_ context.Context) ([]*models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Resident, 0, len(s.residents))
	for _, resident := range s.residents {
		clone := *resident
		out = append(out, &clone)
	}
	return out, nil
}
