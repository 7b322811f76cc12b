//go:build integration

package store_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	homemodels "carelog/internal/home/models"
	homestore "carelog/internal/home/store"
	residentmodels "carelog/internal/resident/models"
	residentstore "carelog/internal/resident/store"
	"carelog/internal/residency/models"
	"carelog/internal/residency/service"
	"carelog/internal/residency/store"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
	"carelog/pkg/platform/tx"
	"carelog/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres   *containers.PostgresContainer
	store      *store.PostgresStore
	service    *service.Service
	residents  *residentstore.PostgresStore
	homes      *homestore.PostgresStore
	residentID id.ResidentID
	homeID     id.HomeID
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
	s.residents = residentstore.NewPostgres(s.postgres.DB)
	s.homes = homestore.NewPostgres(s.postgres.DB)
	s.service = service.New(s.store, s.residents, s.homes, tx.NewSQLRunner(s.postgres.DB))
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "resident_activity", "residency", "resident", "home", "home_group")
	s.Require().NoError(err)

	resident, err := residentmodels.NewResident(id.NewResidentID(), "Aino", "K", time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.residents.Create(ctx, resident))
	s.residentID = resident.ID

	home, err := homemodels.NewHome(id.NewHomeID(), "Kotipesä", nil, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.homes.Create(ctx, home))
	s.homeID = home.ID
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()

	created, err := s.service.MoveIn(ctx, s.residentID, s.homeID, models.Date(2026, 1, 1), nil)
	s.Require().NoError(err)

	found, err := s.store.FindByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.True(found.IsOpen())
	s.True(found.MoveIn.Equal(models.Date(2026, 1, 1)))

	open, err := s.store.ListOpenByResident(ctx, s.residentID)
	s.Require().NoError(err)
	s.Len(open, 1)
}

// TestConcurrentMoveIn verifies that racing move-ins for the same resident
// serialize on the resident row lock so exactly one residency is created.
func (s *PostgresStoreSuite) TestConcurrentMoveIn() {
	ctx := context.Background()
	const goroutines = 20

	var wg sync.WaitGroup
	var successCount atomic.Int32
	var rejectedCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := s.service.MoveIn(ctx, s.residentID, s.homeID, models.Date(2026, 1, 1), nil)
			switch {
			case err == nil:
				successCount.Add(1)
			case dErrors.HasCode(err, dErrors.CodeValidation) || dErrors.HasCode(err, dErrors.CodeConflict):
				rejectedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one move-in should succeed")
	s.Equal(int32(goroutines-1), rejectedCount.Load(), "all others should be rejected")

	open, err := s.store.ListOpenByResident(ctx, s.residentID)
	s.Require().NoError(err)
	s.Len(open, 1, "resident must end up with a single open residency")
}

func (s *PostgresStoreSuite) TestListByHomeAsOf() {
	ctx := context.Background()

	created, err := s.service.MoveIn(ctx, s.residentID, s.homeID, models.Date(2026, 1, 1), nil)
	s.Require().NoError(err)
	_, err = s.service.MoveOut(ctx, created.ID, models.Date(2026, 6, 1))
	s.Require().NoError(err)

	cases := []struct {
		asOf time.Time
		want int
	}{
		{models.Date(2025, 12, 31), 0},
		{models.Date(2026, 1, 1), 1},
		{models.Date(2026, 3, 15), 1},
		{models.Date(2026, 6, 1), 1},
		{models.Date(2026, 6, 2), 0},
	}
	for _, tc := range cases {
		residencies, err := s.store.ListByHomeAsOf(ctx, s.homeID, tc.asOf)
		s.Require().NoError(err)
		s.Len(residencies, tc.want, "as of %s", tc.asOf.Format("2006-01-02"))
	}
}
