package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"carelog/internal/activity/models"
	"carelog/internal/activity/service/mocks"
	"carelog/internal/activity/store"
	"carelog/internal/audit"
	residentmodels "carelog/internal/resident/models"
	residencymodels "carelog/internal/residency/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
	"carelog/pkg/platform/tx"
)

type ActivityServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	activities      *store.InMemory
	mockResidencies *mocks.MockResidencyDirectory
	mockResidents   *mocks.MockResidentDirectory
	mockAudit       *mocks.MockAuditPublisher
	service         *Service
}

func TestActivityServiceSuite(t *testing.T) {
	suite.Run(t, new(ActivityServiceSuite))
}

func (s *ActivityServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.activities = store.NewInMemory()
	s.mockResidencies = mocks.NewMockResidencyDirectory(s.ctrl)
	s.mockResidents = mocks.NewMockResidentDirectory(s.ctrl)
	s.mockAudit = mocks.NewMockAuditPublisher(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(
		s.activities,
		s.mockResidencies,
		s.mockResidents,
		tx.NewMemoryRunner(),
		WithLogger(logger),
		WithAuditPublisher(s.mockAudit),
	)
}

func (s *ActivityServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func openResidency(residentID id.ResidentID, homeID id.HomeID, moveIn time.Time) *residencymodels.Residency {
	return &residencymodels.Residency{
		ID:         id.NewResidencyID(),
		ResidentID: residentID,
		HomeID:     homeID,
		MoveIn:     moveIn,
	}
}

func groupSubmission(residentIDs ...id.ResidentID) *models.GroupSubmission {
	return &models.GroupSubmission{
		ResidentIDs:     residentIDs,
		ActivityType:    models.ActivityMusic,
		CaregiverRole:   models.RoleHobbyInstructor,
		ActivityDate:    residencymodels.Date(2026, 9, 1),
		DurationMinutes: 45,
	}
}

func (s *ActivityServiceSuite) TestRecordGroupActivity() {
	ctx := context.Background()
	homeID := id.NewHomeID()
	moveIn := residencymodels.Date(2026, 1, 1)

	s.Run("fans out one record per resident", func() {
		r1 := id.NewResidentID()
		r2 := id.NewResidentID()
		s.mockResidencies.EXPECT().CurrentResidencyFor(gomock.Any(), r1).Return(openResidency(r1, homeID, moveIn), nil)
		s.mockResidencies.EXPECT().CurrentResidencyFor(gomock.Any(), r2).Return(openResidency(r2, homeID, moveIn), nil)
		s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		records, err := s.service.RecordGroupActivity(ctx, groupSubmission(r1, r2))
		s.Require().NoError(err)
		s.Require().Len(records, 2)
		s.Equal(records[0].GroupID, records[1].GroupID)
		s.Equal(r1, records[0].ResidentID)
		s.Equal(homeID, records[0].HomeID)
		s.Equal(models.ActivityMusic, records[0].ActivityType)
		s.Equal(45, records[0].ActivityMinutes)

		persisted, err := s.activities.ListByGroup(ctx, records[0].GroupID)
		s.Require().NoError(err)
		s.Len(persisted, 2)
	})

	s.Run("one ineligible resident rejects the whole group", func() {
		eligible := id.NewResidentID()
		ineligible := id.NewResidentID()
		s.mockResidencies.EXPECT().CurrentResidencyFor(gomock.Any(), eligible).Return(openResidency(eligible, homeID, moveIn), nil)
		s.mockResidencies.EXPECT().CurrentResidencyFor(gomock.Any(), ineligible).
			Return(nil, dErrors.Wrap(residencymodels.ErrResidencyNotFound, dErrors.CodeNotFound, "resident has no current residency"))
		s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event audit.Event) error {
			s.Equal(audit.ActionActivityRejected, event.Action)
			s.Equal(ineligible.String(), event.ResidentID)
			return nil
		})

		records, err := s.service.RecordGroupActivity(ctx, groupSubmission(eligible, ineligible))
		s.Require().Error(err)
		s.Nil(records)
		s.ErrorIs(err, residencymodels.ErrResidencyNotFound)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), ineligible.String())

		history, err := s.activities.ListByResident(ctx, eligible)
		s.Require().NoError(err)
		s.Empty(history)
	})

	s.Run("invalid submission never touches the stores", func() {
		sub := groupSubmission(id.NewResidentID())
		sub.DurationMinutes = 0

		_, err := s.service.RecordGroupActivity(ctx, sub)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ActivityServiceSuite) TestRecentActivityCount() {
	ctx := context.Background()
	residentID := id.NewResidentID()
	asOf := residencymodels.Date(2026, 9, 1)

	seed := func(day time.Time) *models.ResidentActivity {
		return &models.ResidentActivity{
			ID:              id.NewActivityID(),
			ResidentID:      residentID,
			ResidencyID:     id.NewResidencyID(),
			HomeID:          id.NewHomeID(),
			GroupID:         id.NewActivityGroupID(),
			ActivityType:    models.ActivityOutdoor,
			CaregiverRole:   models.RoleStaff,
			ActivityDate:    day,
			ActivityMinutes: 30,
			CreatedAt:       day,
		}
	}

	s.Run("window includes the boundary day and future entries", func() {
		err := s.activities.CreateBatch(ctx, []*models.ResidentActivity{
			seed(residencymodels.Date(2026, 8, 25)), // exactly seven days back
			seed(residencymodels.Date(2026, 8, 24)), // one day too old
			seed(residencymodels.Date(2026, 9, 5)),  // future-dated still counts
		})
		s.Require().NoError(err)

		count, err := s.service.RecentActivityCount(ctx, residentID, asOf)
		s.Require().NoError(err)
		s.Equal(2, count)
	})

	s.Run("cache hit skips the store", func() {
		mockCache := mocks.NewMockCountCache(s.ctrl)
		cached := New(s.activities, s.mockResidencies, s.mockResidents, tx.NewMemoryRunner(), WithCountCache(mockCache))
		mockCache.EXPECT().Get(gomock.Any(), residentID, windowStart(asOf)).Return(7, true)

		count, err := cached.RecentActivityCount(ctx, residentID, asOf)
		s.Require().NoError(err)
		s.Equal(7, count)
	})

	s.Run("cache miss populates the cache", func() {
		mockCache := mocks.NewMockCountCache(s.ctrl)
		cached := New(s.activities, s.mockResidencies, s.mockResidents, tx.NewMemoryRunner(), WithCountCache(mockCache))
		mockCache.EXPECT().Get(gomock.Any(), residentID, windowStart(asOf)).Return(0, false)
		mockCache.EXPECT().Set(gomock.Any(), residentID, windowStart(asOf), 2)

		count, err := cached.RecentActivityCount(ctx, residentID, asOf)
		s.Require().NoError(err)
		s.Equal(2, count)
	})
}

func (s *ActivityServiceSuite) TestAnnotateCurrentResidents() {
	ctx := context.Background()
	homeID := id.NewHomeID()
	asOf := residencymodels.Date(2026, 9, 1)
	moveIn := residencymodels.Date(2026, 1, 1)

	active := &residentmodels.Resident{ID: id.NewResidentID(), FirstName: "Aino", LastInitial: "K"}
	idle := &residentmodels.Resident{ID: id.NewResidentID(), FirstName: "Toivo", LastInitial: "M"}

	s.mockResidencies.EXPECT().CurrentResidencies(gomock.Any(), homeID).Return([]*residencymodels.Residency{
		openResidency(active.ID, homeID, moveIn),
		openResidency(idle.ID, homeID, moveIn),
	}, nil)
	s.mockResidents.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return([]*residentmodels.Resident{active, idle}, nil)

	err := s.activities.CreateBatch(ctx, []*models.ResidentActivity{
		{
			ID:              id.NewActivityID(),
			ResidentID:      active.ID,
			ResidencyID:     id.NewResidencyID(),
			HomeID:          homeID,
			GroupID:         id.NewActivityGroupID(),
			ActivityType:    models.ActivityTrip,
			CaregiverRole:   models.RoleNurse,
			ActivityDate:    residencymodels.Date(2026, 8, 30),
			ActivityMinutes: 60,
			CreatedAt:       asOf,
		},
	})
	s.Require().NoError(err)

	annotated, err := s.service.AnnotateCurrentResidents(ctx, homeID, asOf)
	s.Require().NoError(err)
	s.Require().Len(annotated, 2)
	s.Equal(1, annotated[0].Count)
	s.Equal(0, annotated[1].Count)
}

func (s *ActivityServiceSuite) TestAnnotateCurrentResidents_EmptyHome() {
	homeID := id.NewHomeID()
	s.mockResidencies.EXPECT().CurrentResidencies(gomock.Any(), homeID).Return(nil, nil)

	annotated, err := s.service.AnnotateCurrentResidents(context.Background(), homeID, residencymodels.Date(2026, 9, 1))
	s.Require().NoError(err)
	s.Empty(annotated)
}
