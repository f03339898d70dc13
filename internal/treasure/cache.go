package treasure

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GielinorRush_Go/internal/metrics"
	"github.com/osse101/GielinorRush_Go/internal/progression"
)

// cachedGraph pairs a graph with the map version it was built from
type cachedGraph struct {
	MapVersion int
	Graph      *progression.Graph
}

// graphCache keeps recently used node graphs in memory. Graphs are never
// mutated after construction, so one instance is shared across requests.
type graphCache struct {
	lru *expirable.LRU[string, *cachedGraph]
}

func newGraphCache(size int, ttl time.Duration) *graphCache {
	return &graphCache{
		lru: expirable.NewLRU[string, *cachedGraph](size, nil, ttl),
	}
}

// Get returns the graph for eventID if it was built from mapVersion.
// Entries from an older version are evicted.
func (c *graphCache) Get(eventID string, mapVersion int) (*progression.Graph, bool) {
	entry, found := c.lru.Get(eventID)
	if !found {
		metrics.GraphCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}
	if entry.MapVersion != mapVersion {
		c.lru.Remove(eventID)
		metrics.GraphCacheLookups.WithLabelValues(metrics.ResultStale).Inc()
		return nil, false
	}
	metrics.GraphCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	return entry.Graph, true
}

func (c *graphCache) Set(eventID string, mapVersion int, g *progression.Graph) {
	c.lru.Add(eventID, &cachedGraph{MapVersion: mapVersion, Graph: g})
}

func (c *graphCache) Invalidate(eventID string) {
	c.lru.Remove(eventID)
}

func (c *graphCache) Len() int {
	return c.lru.Len()
}
