package cache

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/ristretto"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

// ResultCache memoises simulation results. Scheduling is deterministic, so a hit is
// identical to recomputing. A nil *ResultCache is a valid, always-missing cache.
type ResultCache struct {
	cache *ristretto.Cache
}

func NewResultCache(maxEntries int64) (*ResultCache, error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", maxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10, // ristretto recommends 10x the expected number of items
		MaxCost:     maxEntries,
		BufferItems: 64,

		// cost counts entries, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}
	return &ResultCache{cache: cache}, nil
}

// Key identifies a request. Process order is part of the key because it breaks ties.
func Key(algorithm string, processes []core.Process) string {
	var b strings.Builder
	b.WriteString(algorithm)
	for _, p := range processes {
		fmt.Fprintf(&b, "|%q:%d:%d", p.ID, p.ArrivalTime, p.BurstTime)
	}
	return b.String()
}

func (c *ResultCache) Get(key string) (responses.ScheduleResponse, bool) {
	if c == nil {
		return responses.ScheduleResponse{}, false
	}
	value, ok := c.cache.Get(key)
	if !ok {
		return responses.ScheduleResponse{}, false
	}
	response, ok := value.(responses.ScheduleResponse)
	return response, ok
}

// Set stores the response. Stored responses must not be mutated afterwards.
func (c *ResultCache) Set(key string, response responses.ScheduleResponse) bool {
	if c == nil {
		return false
	}
	return c.cache.Set(key, response, 1)
}

// Wait blocks until buffered writes are applied.
func (c *ResultCache) Wait() {
	if c == nil {
		return
	}
	c.cache.Wait()
}

func (c *ResultCache) Close() {
	if c == nil {
		return
	}
	c.cache.Close()
}
