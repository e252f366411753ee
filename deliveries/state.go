package deliveries

import (
	"fmt"

	"github.com/fuelway/fuelway/ways"
)

// fuelBucketScale is the quantization applied to fuel before any
// comparison or key rendering: fuel values that agree after scaling by
// 1e6 and truncating identify the same state. Raw float equality is
// never used — two independently computed fuel sums must still compare
// equal when they are semantically the same.
const fuelBucketScale = 1e6

// State is one point of the deliveries state space: where the vehicle
// is, which drop points it has served, and how much fuel remains.
//
// States are immutable value objects; every transition constructs a
// fresh one. The dropped set is shared between states and never
// mutated (ways.JunctionSet operations are copy-on-write).
//
// The relaxed and strict problems use the same state shape; they
// differ only in how transitions are priced.
type State struct {
	location *ways.Junction
	dropped  ways.JunctionSet
	fuel     float64
}

// NewState constructs a state. Fuel must be strictly positive: a state
// with an empty tank cannot exist (ErrNonPositiveFuel). This is a
// caller contract, not a runtime condition — transitions that would
// exhaust the tank are simply never generated.
func NewState(location *ways.Junction, dropped ways.JunctionSet, fuel float64) (*State, error) {
	if fuel <= 0 {
		return nil, ErrNonPositiveFuel
	}
	if dropped == nil {
		dropped = ways.NewJunctionSet()
	}

	return &State{location: location, dropped: dropped, fuel: fuel}, nil
}

// Location returns the vehicle's current junction.
func (s *State) Location() *ways.Junction { return s.location }

// Dropped returns the set of drop points already served. Callers must
// treat the returned set as read-only.
func (s *State) Dropped() ways.JunctionSet { return s.dropped }

// Fuel returns the remaining fuel. Use FuelBucket, never Fuel, when
// comparing two states.
func (s *State) Fuel() float64 { return s.fuel }

// FuelBucket returns the quantized fuel used for state identity.
func (s *State) FuelBucket() int64 {
	return int64(s.fuel * fuelBucketScale)
}

// Key renders the canonical identity: location ID, sorted dropped IDs,
// and the fuel bucket. Equal keys ⇔ same state.
func (s *State) Key() string {
	return fmt.Sprintf("%d|%s|%d", s.location.ID, s.dropped.KeyString(), s.FuelBucket())
}

// Equal reports whether s and other identify the same state: same
// location, same dropped set, same fuel bucket.
func (s *State) Equal(other *State) bool {
	return s.location.ID == other.location.ID &&
		s.dropped.Equal(other.dropped) &&
		s.FuelBucket() == other.FuelBucket()
}

// String returns the current junction ID, matching how routes print.
func (s *State) String() string {
	return s.location.String()
}
