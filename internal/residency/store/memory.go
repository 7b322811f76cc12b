package store

import (
	"context"
	"sync"
	"time"

	"carelog/internal/residency/models"
	id "carelog/pkg/domain"
	"carelog/pkg/platform/sentinel"
)

// InMemory keeps residencies in a map. Intended for tests and local runs.
// Transactional callers serialize through a tx.MemoryRunner; the per-method
// mutex here only protects the map itself.
type InMemory struct {
	mu          sync.RWMutex
	residencies map[id.ResidencyID]*models.Residency
}

func NewInMemory() *InMemory {
	return &InMemory{residencies: make(map[id.ResidencyID]*models.Residency)}
}

// LockResident is a no-op in memory: the coarse MemoryRunner lock already
// serializes concurrent writers.
func (s *InMemory) LockResident(_ context.Context, _ id.ResidentID) error {
	return nil
}

func (s *InMemory) Create(_ context.Context, residency *models.Residency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.residencies[residency.ID]; exists {
		return sentinel.ErrConflict
	}
	clone := *residency
	s.residencies[residency.ID] = &clone
	return nil
}

func (s *InMemory) Update(_ context.Context, residency *models.Residency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.residencies[residency.ID]; !exists {
		return sentinel.ErrNotFound
	}
	clone := *residency
	s.residencies[residency.ID] = &clone
	return nil
}

func (s *InMemory) FindByID(_ context.Context, residencyID id.ResidencyID) (*models.Residency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	residency, ok := s.residencies[residencyID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *residency
	return &clone, nil
}

func (s *InMemory) ListByResident(_ context.Context, residentID id.ResidentID) ([]*models.Residency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Residency
	for _, residency := range s.residencies {
		if residency.ResidentID == residentID {
			clone := *residency
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *InMemory) ListOpenByResident(_ context.Context, residentID id.ResidentID) ([]*models.Residency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Residency
	for _, residency := range s.residencies {
		if residency.ResidentID == residentID && residency.IsOpen() {
			clone := *residency
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *InMemory) ListOpenByHome(_ context.Context, homeID id.HomeID) ([]*models.Residency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Residency
	for _, residency := range s.residencies {
		if residency.HomeID == homeID && residency.IsOpen() {
			clone := *residency
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *InMemory) ListByHomeAsOf(_ context.Context, homeID id.HomeID, asOf time.Time) ([]*models.Residency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asOf = models.TruncateToDay(asOf)
	var out []*models.Residency
	for _, residency := range s.residencies {
		if residency.HomeID == homeID && residency.CoversDate(asOf) {
			clone := *residency
			out = append(out, &clone)
		}
	}
	return out, nil
}
