package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	activitymodels "carelog/internal/activity/models"
	homemodels "carelog/internal/home/models"
	homestore "carelog/internal/home/store"
	residencymodels "carelog/internal/residency/models"
	"carelog/internal/work/store"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

type WorkServiceSuite struct {
	suite.Suite
	work    *store.InMemory
	homes   *homestore.InMemory
	service *Service
	homeID  id.HomeID
}

func TestWorkServiceSuite(t *testing.T) {
	suite.Run(t, new(WorkServiceSuite))
}

func (s *WorkServiceSuite) SetupTest() {
	s.work = store.NewInMemory()
	s.homes = homestore.NewInMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.work, s.homes, WithLogger(logger))

	home, err := homemodels.NewHome(id.NewHomeID(), "Kotipesä", nil, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.homes.Create(context.Background(), home))
	s.homeID = home.ID
}

func (s *WorkServiceSuite) record(workType string, role activitymodels.CaregiverRole, day time.Time, minutes int) {
	_, err := s.service.Record(context.Background(), s.homeID, workType, role, day, minutes)
	s.Require().NoError(err)
}

func (s *WorkServiceSuite) TestRecord() {
	ctx := context.Background()
	day := residencymodels.Date(2026, 9, 1)

	s.Run("stores a valid record", func() {
		work, err := s.service.Record(ctx, s.homeID, "cleaning", activitymodels.RolePracticalNurse, day, 90)
		s.Require().NoError(err)
		s.Equal(1.5, work.DurationHours())
		s.Equal(day, work.Date)
	})

	s.Run("unknown home returns not found", func() {
		_, err := s.service.Record(ctx, id.NewHomeID(), "cleaning", activitymodels.RoleStaff, day, 30)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("negative duration is rejected", func() {
		_, err := s.service.Record(ctx, s.homeID, "cleaning", activitymodels.RoleStaff, day, -5)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown role is rejected", func() {
		_, err := s.service.Record(ctx, s.homeID, "cleaning", activitymodels.CaregiverRole("janitor"), day, 30)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *WorkServiceSuite) TestTotalHoursByRoleAndType() {
	ctx := context.Background()
	day := residencymodels.Date(2026, 9, 1)

	// nurse: 2h cleaning + 1h cooking; staff: 1h cleaning
	s.record("cleaning", activitymodels.RoleNurse, day, 120)
	s.record("cooking", activitymodels.RoleNurse, day, 60)
	s.record("cleaning", activitymodels.RoleStaff, day, 60)

	rows, err := s.service.TotalHoursByRoleAndType(ctx, s.homeID)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	s.Equal(activitymodels.RoleNurse, rows[0].Role)
	s.Equal("cleaning", rows[0].WorkType)
	s.InDelta(2.0, rows[0].TotalHours, 1e-9)
	s.InDelta(3.0, rows[0].RoleTotalHours, 1e-9)
	s.InDelta(2.0/3.0, rows[0].PercentOfRole, 1e-9)

	s.Equal("cooking", rows[1].WorkType)
	s.InDelta(1.0/3.0, rows[1].PercentOfRole, 1e-9)

	s.Equal(activitymodels.RoleStaff, rows[2].Role)
	s.InDelta(1.0, rows[2].PercentOfRole, 1e-9)
}

func (s *WorkServiceSuite) TestDailyHoursByRoleAndType() {
	ctx := context.Background()
	monday := residencymodels.Date(2026, 8, 31)
	tuesday := residencymodels.Date(2026, 9, 1)

	s.record("cleaning", activitymodels.RoleNurse, monday, 60)
	s.record("cooking", activitymodels.RoleNurse, monday, 60)
	s.record("cleaning", activitymodels.RoleNurse, tuesday, 30)

	rows, err := s.service.DailyHoursByRoleAndType(ctx, s.homeID)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	s.True(rows[0].Date.Equal(monday))
	s.InDelta(0.5, rows[0].PercentOfRole, 1e-9)
	s.InDelta(0.5, rows[1].PercentOfRole, 1e-9)

	s.True(rows[2].Date.Equal(tuesday))
	s.InDelta(1.0, rows[2].PercentOfRole, 1e-9)
}

func (s *WorkServiceSuite) TestHomeHoursByRole() {
	ctx := context.Background()
	day := residencymodels.Date(2026, 9, 1)

	s.record("cleaning", activitymodels.RoleNurse, day, 180)
	s.record("cleaning", activitymodels.RoleStaff, day, 60)

	rows, err := s.service.HomeHoursByRole(ctx, s.homeID)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal(activitymodels.RoleNurse, rows[0].Role)
	s.InDelta(3.0, rows[0].TotalHours, 1e-9)
	s.InDelta(0.75, rows[0].PercentOfHome, 1e-9)

	s.Equal(activitymodels.RoleStaff, rows[1].Role)
	s.InDelta(0.25, rows[1].PercentOfHome, 1e-9)
}

func (s *WorkServiceSuite) TestHomeHoursByRole_EmptyHome() {
	rows, err := s.service.HomeHoursByRole(context.Background(), s.homeID)
	s.Require().NoError(err)
	s.Empty(rows)
}
