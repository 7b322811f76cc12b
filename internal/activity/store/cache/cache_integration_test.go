//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"carelog/internal/activity/store/cache"
	residencymodels "carelog/internal/residency/models"
	id "carelog/pkg/domain"
	"carelog/pkg/testutil/containers"
)

type CountCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *cache.CountCache
}

func TestCountCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CountCacheSuite))
}

func (s *CountCacheSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.cache = cache.New(s.redis.Client, time.Minute, nil)
}

func (s *CountCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *CountCacheSuite) TestGetSet() {
	ctx := context.Background()
	residentID := id.NewResidentID()
	since := residencymodels.Date(2026, 8, 25)

	_, ok := s.cache.Get(ctx, residentID, since)
	s.False(ok, "fresh key should miss")

	s.cache.Set(ctx, residentID, since, 4)

	count, ok := s.cache.Get(ctx, residentID, since)
	s.True(ok)
	s.Equal(4, count)
}

func (s *CountCacheSuite) TestWindowsAreIndependent() {
	ctx := context.Background()
	residentID := id.NewResidentID()

	s.cache.Set(ctx, residentID, residencymodels.Date(2026, 8, 25), 4)

	_, ok := s.cache.Get(ctx, residentID, residencymodels.Date(2026, 8, 26))
	s.False(ok, "a different window day must not alias")
}

func (s *CountCacheSuite) TestInvalidate() {
	ctx := context.Background()
	touched := id.NewResidentID()
	untouched := id.NewResidentID()

	s.cache.Set(ctx, touched, residencymodels.Date(2026, 8, 25), 4)
	s.cache.Set(ctx, touched, residencymodels.Date(2026, 8, 26), 5)
	s.cache.Set(ctx, untouched, residencymodels.Date(2026, 8, 25), 9)

	s.cache.Invalidate(ctx, []id.ResidentID{touched})

	_, ok := s.cache.Get(ctx, touched, residencymodels.Date(2026, 8, 25))
	s.False(ok)
	_, ok = s.cache.Get(ctx, touched, residencymodels.Date(2026, 8, 26))
	s.False(ok)

	count, ok := s.cache.Get(ctx, untouched, residencymodels.Date(2026, 8, 25))
	s.True(ok)
	s.Equal(9, count)
}
