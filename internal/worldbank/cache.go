package worldbank

import (
	"sync/atomic"
	"time"
)

// entitySnapshot is immutable once stored. Refreshes replace the whole
// snapshot so readers never see a partial list.
type entitySnapshot struct {
	fetchedAt time.Time
	names     []string
}

type entityCache struct {
	current atomic.Pointer[entitySnapshot]
	ttl     time.Duration
}

func newEntityCache(ttl time.Duration) *entityCache {
	return &entityCache{ttl: ttl}
}

// get returns a copy of the cached list if it is younger than the TTL.
func (c *entityCache) get(now time.Time) ([]string, bool) {
	snap := c.current.Load()
	if snap == nil || c.ttl <= 0 {
		return nil, false
	}

	if now.Sub(snap.fetchedAt) >= c.ttl {
		return nil, false
	}

	return append([]string(nil), snap.names...), true
}

func (c *entityCache) put(names []string, now time.Time) {
	c.current.Store(&entitySnapshot{
		names:     append([]string(nil), names...),
		fetchedAt: now,
	})
}
