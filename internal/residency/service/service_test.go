package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"carelog/internal/audit"
	auditmemory "carelog/internal/audit/store/memory"
	homemodels "carelog/internal/home/models"
	homestore "carelog/internal/home/store"
	residentmodels "carelog/internal/resident/models"
	residentstore "carelog/internal/resident/store"
	"carelog/internal/residency/models"
	"carelog/internal/residency/store"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
	"carelog/pkg/platform/tx"
)

type ResidencyServiceSuite struct {
	suite.Suite
	ctx        context.Context
	service    *Service
	residents  *residentstore.InMemory
	homes      *homestore.InMemory
	auditStore *auditmemory.InMemoryStore

	resident *residentmodels.Resident
	homeA    *homemodels.Home
	homeB    *homemodels.Home
}

func TestResidencyServiceSuite(t *testing.T) {
	suite.Run(t, new(ResidencyServiceSuite))
}

func (s *ResidencyServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.residents = residentstore.NewInMemory()
	s.homes = homestore.NewInMemory()
	s.auditStore = auditmemory.NewInMemoryStore()

	s.service = New(
		store.NewInMemory(),
		s.residents,
		s.homes,
		tx.NewMemoryRunner(),
		WithAuditPublisher(audit.NewPublisher(s.auditStore)),
	)

	now := time.Now()
	resident, err := residentmodels.NewResident(id.NewResidentID(), "Maija", "K", now)
	s.Require().NoError(err)
	s.Require().NoError(s.residents.Create(s.ctx, resident))
	s.resident = resident

	homeA, err := homemodels.NewHome(id.NewHomeID(), "Koivula", nil, now)
	s.Require().NoError(err)
	s.Require().NoError(s.homes.Create(s.ctx, homeA))
	s.homeA = homeA

	homeB, err := homemodels.NewHome(id.NewHomeID(), "Mäntylä", nil, now)
	s.Require().NoError(err)
	s.Require().NoError(s.homes.Create(s.ctx, homeB))
	s.homeB = homeB
}

func (s *ResidencyServiceSuite) TestMoveIn() {
	s.Run("creates an open residency", func() {
		residency, err := s.service.MoveIn(s.ctx, s.resident.ID, s.homeA.ID, models.Date(2020, time.January, 1), nil)
		s.Require().NoError(err)
		s.True(residency.IsOpen())
		s.Equal(s.homeA.ID, residency.HomeID)

		events, err := s.auditStore.ListByResident(s.ctx, s.resident.ID.String())
		s.Require().NoError(err)
		s.Require().Len(events, 1)
		s.Equal(audit.ActionResidencyCreated, events[0].Action)
	})

	s.Run("rejects unknown resident", func() {
		_, err := s.service.MoveIn(s.ctx, id.NewResidentID(), s.homeA.ID, models.Date(2020, time.January, 1), nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("rejects move-out before move-in", func() {
		moveOut := models.Date(2019, time.June, 1)
		_, err := s.service.MoveIn(s.ctx, s.resident.ID, s.homeA.ID, models.Date(2020, time.January, 1), &moveOut)
		s.Require().Error(err)
		s.ErrorIs(err, models.ErrInvalidDateOrder)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ResidencyServiceSuite) TestOverlapRejected() {
	_, err := s.service.MoveIn(s.ctx, s.resident.ID, s.homeA.ID, models.Date(2020, time.January, 1), nil)
	s.Require().NoError(err)

	s.Run("second open residency at another home is rejected", func() {
		_, err := s.service.MoveIn(s.ctx, s.resident.ID, s.homeB.ID, models.Date(2020, time.June, 1), nil)
		s.Require().Error(err)
		s.ErrorIs(err, models.ErrOverlappingResidency)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("nothing was persisted for the rejected write", func() {
		residents, err := s.service.CurrentResidents(s.ctx, s.homeB.ID)
		s.Require().NoError(err)
		s.Empty(residents)
	})
}

func (s *ResidencyServiceSuite) TestMoveOut() {
	residency, err := s.service.MoveIn(s.ctx, s.resident.ID, s.homeA.ID, models.Date(2020, time.January, 1), nil)
	s.Require().NoError(err)

	s.Run("closes the residency", func() {
		closed, err := s.service.MoveOut(s.ctx, residency.ID, models.Date(2020, time.June, 1))
		s.Require().NoError(err)
		s.False(closed.IsOpen())
	})

	s.Run("closing twice is a conflict", func() {
		_, err := s.service.MoveOut(s.ctx, residency.ID, models.Date(2020, time.July, 1))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("move-in at another home now succeeds", func() {
		_, err := s.service.MoveIn(s.ctx, s.resident.ID, s.homeB.ID, models.Date(2020, time.June, 1), nil)
		s.Require().NoError(err)
	})
}

func (s *ResidencyServiceSuite) TestCurrentResidents() {
	residency, err := s.service.MoveIn(s.ctx, s.resident.ID, s.homeA.ID, models.Date(2020, time.January, 1), nil)
	s.Require().NoError(err)

	s.Run("open residency makes the resident current", func() {
		residents, err := s.service.CurrentResidents(s.ctx, s.homeA.ID)
		s.Require().NoError(err)
		s.Require().Len(residents, 1)
		s.Equal(s.resident.ID, residents[0].ID)
	})

	s.Run("past occupants are excluded", func() {
		_, err := s.service.MoveOut(s.ctx, residency.ID, models.Date(2020, time.June, 1))
		s.Require().NoError(err)

		residents, err := s.service.CurrentResidents(s.ctx, s.homeA.ID)
		s.Require().NoError(err)
		s.Empty(residents)
	})

	s.Run("as-of query still sees the historical occupancy", func() {
		residents, err := s.service.ResidentsAsOf(s.ctx, s.homeA.ID, models.Date(2020, time.March, 15))
		s.Require().NoError(err)
		s.Require().Len(residents, 1)
		s.Equal(s.resident.ID, residents[0].ID)

		residents, err = s.service.ResidentsAsOf(s.ctx, s.homeA.ID, models.Date(2020, time.July, 1))
		s.Require().NoError(err)
		s.Empty(residents)
	})
}

func (s *ResidencyServiceSuite) TestCurrentResidencyFor() {
	s.Run("fails when the resident is not housed", func() {
		_, err := s.service.CurrentResidencyFor(s.ctx, s.resident.ID)
		s.Require().Error(err)
		s.ErrorIs(err, models.ErrResidencyNotFound)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("returns the open residency and home", func() {
		_, err := s.service.MoveIn(s.ctx, s.resident.ID, s.homeA.ID, models.Date(2020, time.January, 1), nil)
		s.Require().NoError(err)

		residency, err := s.service.CurrentResidencyFor(s.ctx, s.resident.ID)
		s.Require().NoError(err)
		s.Equal(s.homeA.ID, residency.HomeID)

		home, err := s.service.CurrentHomeFor(s.ctx, s.resident.ID)
		s.Require().NoError(err)
		s.Equal(s.homeA.ID, home.ID)
	})
}
