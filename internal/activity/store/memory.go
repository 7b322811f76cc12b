package store

import (
	"context"
	"sync"
	"time"

	"carelog/internal/activity/models"
	residencymodels "carelog/internal/residency/models"
	id "carelog/pkg/domain"
)

// InMemory keeps activity records in a slice. Records are append-only, which
// matches the real store: no update or delete surface exists.
type InMemory struct {
	mu      sync.RWMutex
	records []*models.ResidentActivity
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

// CreateBatch appends all records at once. The caller has already resolved
// eligibility for every resident, so a batch that reaches the store cannot
// half-fail in memory.
func (s *InMemory) CreateBatch(_ context.Context, records []*models.ResidentActivity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range records {
		clone := *record
		s.records = append(s.records, &clone)
	}
	return nil
}

func (s *InMemory) CountByResidentSince(_ context.Context, residentID id.ResidentID, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	since = residencymodels.TruncateToDay(since)
	count := 0
	for _, record := range s.records {
		if record.ResidentID == residentID && !record.ActivityDate.Before(since) {
			count++
		}
	}
	return count, nil
}

func (s *InMemory) CountByResidentsSince(_ context.Context, residentIDs []id.ResidentID, since time.Time) (map[id.ResidentID]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	since = residencymodels.TruncateToDay(since)
	counts := make(map[id.ResidentID]int, len(residentIDs))
	for _, rid := range residentIDs {
		counts[rid] = 0
	}
	for _, record := range s.records {
		if _, wanted := counts[record.ResidentID]; wanted && !record.ActivityDate.Before(since) {
			counts[record.ResidentID]++
		}
	}
	return counts, nil
}

func (s *InMemory) ListByResident(_ context.Context, residentID id.ResidentID) ([]*models.ResidentActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.ResidentActivity
	for _, record := range s.records {
		if record.ResidentID == residentID {
			clone := *record
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *InMemory) ListByGroup(_ context.Context, groupID id.ActivityGroupID) ([]*models.ResidentActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.ResidentActivity
	for _, record := range s.records {
		if record.GroupID == groupID {
			clone := *record
			out = append(out, &clone)
		}
	}
	return out, nil
}
