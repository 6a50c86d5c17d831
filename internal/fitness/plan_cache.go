package fitness

import (
	"fmt"
	"time"

	"github.com/2beens/fitplan/internal/plans"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// MinPlanCacheSizeMB is the smallest cache that still takes a rendered plan.
// freecache refuses entries over 1/1024 of its size, so 8MB allows up to 8KB per response.
const MinPlanCacheSizeMB = 8

// PlanCache holds rendered plan responses, keyed by the resolved goal.
type PlanCache struct {
	cache     *freecache.Cache
	expireSec int
}

func NewPlanCache(sizeMB int, ttl time.Duration) *PlanCache {
	if sizeMB < MinPlanCacheSizeMB {
		log.Debugf("plan cache size %dMB raised to %dMB", sizeMB, MinPlanCacheSizeMB)
		sizeMB = MinPlanCacheSizeMB
	}
	return &PlanCache{
		cache:     freecache.NewCache(sizeMB * megabyte),
		expireSec: int(ttl.Seconds()),
	}
}

func cacheKey(kind string, goal plans.Goal) []byte {
	return []byte(fmt.Sprintf("%s::%s", kind, goal))
}

func (c *PlanCache) Get(kind string, goal plans.Goal) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	b, err := c.cache.Get(cacheKey(kind, goal))
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *PlanCache) Set(kind string, goal plans.Goal, b []byte) {
	if c == nil {
		return
	}
	if err := c.cache.Set(cacheKey(kind, goal), b, c.expireSec); err != nil {
		log.Errorf("failed to cache %s for goal %s: %s", kind, goal, err)
		return
	}
	log.Tracef("%s cache set for goal: %s", kind, goal)
}

func (c *PlanCache) Entries() int64 {
	if c == nil {
		return 0
	}
	return c.cache.EntryCount()
}
