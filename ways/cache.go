package ways

// pairKey identifies an unordered junction pair. Normalizing to
// (lo, hi) guarantees that (a,b) and (b,a) hit the same entry, so the
// cache can never hold two entries for one pair.
type pairKey struct {
	lo, hi int
}

// newPairKey normalizes the two IDs into canonical order.
func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// DistanceCache memoizes air distances keyed by the unordered junction
// pair. Entries are populated lazily on first lookup and never
// invalidated, since junctions are immutable.
//
// A cache is owned by exactly one component (typically a heuristic
// instance) and is discarded with it. It is not safe for concurrent
// use.
type DistanceCache struct {
	distances map[pairKey]float64
}

// NewDistanceCache returns an empty cache.
func NewDistanceCache() *DistanceCache {
	return &DistanceCache{distances: make(map[pairKey]float64)}
}

// Distance returns the air distance between a and b, computing and
// storing it on first request. Symmetric by construction:
// Distance(a, b) and Distance(b, a) read the same entry.
// Complexity: O(1) amortized.
func (c *DistanceCache) Distance(a, b *Junction) float64 {
	if a.ID == b.ID {
		// Distance to self is 0 by the Junction contract; never cached.
		return 0
	}
	key := newPairKey(a.ID, b.ID)
	if d, ok := c.distances[key]; ok {
		return d
	}
	d := a.AirDistanceTo(b)
	c.distances[key] = d

	return d
}

// Len returns the number of distinct unordered pairs stored.
func (c *DistanceCache) Len() int { return len(c.distances) }
