package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	activityservice "carelog/internal/activity/service"
	"carelog/internal/report/models"
	"carelog/internal/report/service/mocks"
	residentmodels "carelog/internal/resident/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
	"carelog/pkg/platform/sentinel"
)

type ReportServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockActivities *mocks.MockActivityDirectory
	mockResidents  *mocks.MockResidentDirectory
	service        *Service
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockActivities = mocks.NewMockActivityDirectory(s.ctrl)
	s.mockResidents = mocks.NewMockResidentDirectory(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(
		s.mockActivities,
		s.mockResidents,
		WithLogger(logger),
		WithClock(func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }),
	)
}

func (s *ReportServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func annotated(name string, onHiatus bool, count int) *activityservice.ResidentActivityCount {
	return &activityservice.ResidentActivityCount{
		Resident: &residentmodels.Resident{
			ID:          id.NewResidentID(),
			FirstName:   name,
			LastInitial: "X",
			OnHiatus:    onHiatus,
		},
		Count: count,
	}
}

func (s *ReportServiceSuite) TestHomeBreakdown() {
	ctx := context.Background()
	homeID := id.NewHomeID()

	s.Run("classifies and normalizes current residents", func() {
		s.mockActivities.EXPECT().AnnotateCurrentResidents(gomock.Any(), homeID, gomock.Any()).Return([]*activityservice.ResidentActivityCount{
			annotated("Aino", false, 0),
			annotated("Toivo", false, 3),
			annotated("Helmi", false, 6),
		}, nil)

		breakdown, err := s.service.HomeBreakdown(ctx, homeID)
		s.Require().NoError(err)
		s.Equal(3, breakdown.Total)
		s.Equal(1, breakdown.Counts[models.LevelInactive])
		s.Equal(1, breakdown.Counts[models.LevelLow])
		s.Equal(1, breakdown.Counts[models.LevelModerate])
		s.Equal(0, breakdown.Counts[models.LevelHigh])
		s.Equal(34, breakdown.Percents[models.LevelInactive])
		s.Equal(33, breakdown.Percents[models.LevelLow])
		s.Equal(33, breakdown.Percents[models.LevelModerate])
		s.Equal(0, breakdown.Percents[models.LevelHigh])
	})

	s.Run("hiatus overrides a high count", func() {
		s.mockActivities.EXPECT().AnnotateCurrentResidents(gomock.Any(), homeID, gomock.Any()).Return([]*activityservice.ResidentActivityCount{
			annotated("Aino", true, 12),
		}, nil)

		breakdown, err := s.service.HomeBreakdown(ctx, homeID)
		s.Require().NoError(err)
		s.Equal(1, breakdown.Counts[models.LevelOnHiatus])
		s.Equal(0, breakdown.Counts[models.LevelHigh])
		s.Equal(100, breakdown.Percents[models.LevelOnHiatus])
		s.Equal(models.LevelOnHiatus, breakdown.Residents[0].Level)
	})

	s.Run("empty home reports zero percentages", func() {
		s.mockActivities.EXPECT().AnnotateCurrentResidents(gomock.Any(), homeID, gomock.Any()).Return(nil, nil)

		breakdown, err := s.service.HomeBreakdown(ctx, homeID)
		s.Require().NoError(err)
		s.Equal(0, breakdown.Total)
		for _, level := range models.Levels {
			s.Equal(0, breakdown.Percents[level])
		}
	})
}

func (s *ReportServiceSuite) TestClassifyResident() {
	ctx := context.Background()

	s.Run("combines resident flag with recent count", func() {
		resident := &residentmodels.Resident{ID: id.NewResidentID(), FirstName: "Toivo", LastInitial: "M"}
		s.mockResidents.EXPECT().FindByID(gomock.Any(), resident.ID).Return(resident, nil)
		s.mockActivities.EXPECT().RecentActivityCount(gomock.Any(), resident.ID, gomock.Any()).Return(7, nil)

		level, err := s.service.ClassifyResident(ctx, resident.ID)
		s.Require().NoError(err)
		s.Equal(models.LevelModerate, level.Level)
		s.Equal(7, level.Count)
	})

	s.Run("unknown resident returns not found", func() {
		residentID := id.NewResidentID()
		s.mockResidents.EXPECT().FindByID(gomock.Any(), residentID).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.ClassifyResident(ctx, residentID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
