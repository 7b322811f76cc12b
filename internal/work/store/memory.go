package store

import (
	"context"
	"sort"
	"sync"
	"time"

	activitymodels "carelog/internal/activity/models"
	"carelog/internal/work/models"
	id "carelog/pkg/domain"
)

// InMemory keeps work records in a slice. Aggregations are computed on read
// with the same grouping and ordering as the SQL store.
type InMemory struct {
	mu      sync.RWMutex
	records []*models.Work
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Create(_ context.Context, work *models.Work) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *work
	s.records = append(s.records, &clone)
	return nil
}

func (s *InMemory) ListByHome(_ context.Context, homeID id.HomeID) ([]*models.Work, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Work
	for _, record := range s.records {
		if record.HomeID == homeID {
			clone := *record
			out = append(out, &clone)
		}
	}
	return out, nil
}

type roleTypeKey struct {
	role     activitymodels.CaregiverRole
	workType string
}

func (s *InMemory) TotalsByRoleAndType(_ context.Context, homeID id.HomeID) ([]*models.RoleTypeHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hours := make(map[roleTypeKey]float64)
	roleHours := make(map[activitymodels.CaregiverRole]float64)
	for _, record := range s.records {
		if record.HomeID != homeID {
			continue
		}
		key := roleTypeKey{role: record.CaregiverRole, workType: record.WorkType}
		hours[key] += record.DurationHours()
		roleHours[record.CaregiverRole] += record.DurationHours()
	}

	rows := make([]*models.RoleTypeHours, 0, len(hours))
	for key, total := range hours {
		roleTotal := roleHours[key.role]
		rows = append(rows, &models.RoleTypeHours{
			Role:           key.role,
			WorkType:       key.workType,
			TotalHours:     total,
			RoleTotalHours: roleTotal,
			PercentOfRole:  total / roleTotal,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Role != rows[j].Role {
			return rows[i].Role < rows[j].Role
		}
		return rows[i].WorkType < rows[j].WorkType
	})
	return rows, nil
}

type dailyRoleTypeKey struct {
	date     time.Time
	role     activitymodels.CaregiverRole
	workType string
}

func (s *InMemory) DailyTotalsByRoleAndType(_ context.Context, homeID id.HomeID) ([]*models.DailyRoleTypeHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type dailyRoleKey struct {
		date time.Time
		role activitymodels.CaregiverRole
	}
	hours := make(map[dailyRoleTypeKey]float64)
	roleHours := make(map[dailyRoleKey]float64)
	for _, record := range s.records {
		if record.HomeID != homeID {
			continue
		}
		key := dailyRoleTypeKey{date: record.Date, role: record.CaregiverRole, workType: record.WorkType}
		hours[key] += record.DurationHours()
		roleHours[dailyRoleKey{date: record.Date, role: record.CaregiverRole}] += record.DurationHours()
	}

	rows := make([]*models.DailyRoleTypeHours, 0, len(hours))
	for key, total := range hours {
		roleTotal := roleHours[dailyRoleKey{date: key.date, role: key.role}]
		rows = append(rows, &models.DailyRoleTypeHours{
			Date:           key.date,
			Role:           key.role,
			WorkType:       key.workType,
			TotalHours:     total,
			RoleTotalHours: roleTotal,
			PercentOfRole:  total / roleTotal,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		if rows[i].Role != rows[j].Role {
			return rows[i].Role < rows[j].Role
		}
		return rows[i].WorkType < rows[j].WorkType
	})
	return rows, nil
}

func (s *InMemory) TotalsByRole(_ context.Context, homeID id.HomeID) ([]*models.RoleHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roleHours := make(map[activitymodels.CaregiverRole]float64)
	homeTotal := 0.0
	for _, record := range s.records {
		if record.HomeID != homeID {
			continue
		}
		roleHours[record.CaregiverRole] += record.DurationHours()
		homeTotal += record.DurationHours()
	}

	rows := make([]*models.RoleHours, 0, len(roleHours))
	for role, total := range roleHours {
		rows = append(rows, &models.RoleHours{
			Role:          role,
			TotalHours:    total,
			PercentOfHome: total / homeTotal,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Role < rows[j].Role
	})
	return rows, nil
}
