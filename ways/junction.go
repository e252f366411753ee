package ways

import (
	"math"
	"strconv"
)

// Junction is an immutable planar location identified by an integer ID.
// Two junctions are the same stop iff their IDs are equal; coordinates
// carry no identity.
type Junction struct {
	// ID uniquely identifies the junction within one problem instance.
	ID int

	// X, Y are planar coordinates in arbitrary (but consistent) units.
	X, Y float64
}

// NewJunction constructs a junction value.
// Complexity: O(1).
func NewJunction(id int, x, y float64) *Junction {
	return &Junction{ID: id, X: x, Y: y}
}

// AirDistanceTo returns the Euclidean distance from j to other.
//
// Contract (relied upon by the deliveries heuristics):
//   - symmetric:      j.AirDistanceTo(o) == o.AirDistanceTo(j)
//   - non-negative:   result ≥ 0
//   - identity:       j.AirDistanceTo(j) == 0
//   - triangle:       d(a,c) ≤ d(a,b) + d(b,c)
//
// Complexity: O(1).
func (j *Junction) AirDistanceTo(other *Junction) float64 {
	return math.Hypot(j.X-other.X, j.Y-other.Y)
}

// String returns the junction ID, matching how routes are printed.
func (j *Junction) String() string {
	return strconv.Itoa(j.ID)
}
