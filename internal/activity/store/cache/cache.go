package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"carelog/internal/activity/metrics"
	id "carelog/pkg/domain"
)

const countKeyPrefix = "activity:count:"

// CountCache is a Redis-backed read-through cache for recent-activity
// counts. The aggregator consults it before hitting the store; writers
// invalidate the touched residents. Counts age across the window boundary,
// so entries carry a short TTL as a backstop.
type CountCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
}

func New(client *redis.Client, ttl time.Duration, m *metrics.Metrics) *CountCache {
	return &CountCache{client: client, ttl: ttl, metrics: m}
}

func key(residentID id.ResidentID, since time.Time) string {
	return countKeyPrefix + residentID.String() + ":" + since.Format("2006-01-02")
}

// Get returns the cached count and whether it was present. Errors degrade to
// a miss: the cache is an optimization, never a source of truth.
func (c *CountCache) Get(ctx context.Context, residentID id.ResidentID, since time.Time) (int, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}
	raw, err := c.client.Get(ctx, key(residentID, since)).Result()
	if err != nil {
		c.metrics.RecordCacheMiss()
		return 0, false
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		c.metrics.RecordCacheMiss()
		return 0, false
	}
	c.metrics.RecordCacheHit()
	return count, true
}

func (c *CountCache) Set(ctx context.Context, residentID id.ResidentID, since time.Time, count int) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, key(residentID, since), strconv.Itoa(count), c.ttl).Err()
}

// Invalidate drops every cached window for the residents, called after a
// successful batch write.
func (c *CountCache) Invalidate(ctx context.Context, residentIDs []id.ResidentID) {
	if c == nil || c.client == nil || len(residentIDs) == 0 {
		return
	}
	for _, rid := range residentIDs {
		iter := c.client.Scan(ctx, 0, countKeyPrefix+rid.String()+":*", 0).Iterator()
		for iter.Next(ctx) {
			_ = c.client.Del(ctx, iter.Val()).Err()
		}
	}
}
