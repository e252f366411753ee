package deliveries

import (
	"fmt"

	"github.com/fuelway/fuelway/search"
	"github.com/fuelway/fuelway/ways"
)

// RelaxedProblem is the relaxation of the deliveries problem: fuel
// accounting is kept intact, but travel between stops is charged at
// air distance and served drop points are never revisited. Its optimal
// cost lower-bounds the strict problem's, which is what makes it a
// legal bound generator.
type RelaxedProblem struct {
	name         string
	start        *ways.Junction
	dropPoints   ways.JunctionSet
	gasStations  ways.JunctionSet
	tankCapacity float64
	initialFuel  float64

	// stops is drop points ∪ gas stations, sorted by junction ID so
	// that Expand emits successors deterministically.
	stops []*ways.Junction
}

// compile-time check: *RelaxedProblem satisfies search.Problem.
var _ search.Problem[*State] = (*RelaxedProblem)(nil)

// NewRelaxedProblem validates the input and builds a relaxed instance.
//
// Preconditions (in order):
//  1. in.Start must be non-nil (ErrNilStart).
//  2. in.Start must not be a drop point (ErrStartIsDropPoint).
//  3. in.TankCapacity must be > 0 (ErrNonPositiveCapacity).
//  4. in.InitialFuel must be > 0 (ErrNonPositiveFuel).
//
// Complexity: O((D + G) log(D + G)) for the sorted stop list, with
// D = |drop points| and G = |gas stations|.
func NewRelaxedProblem(in ProblemInput) (*RelaxedProblem, error) {
	if in.Start == nil {
		return nil, ErrNilStart
	}
	if in.DropPoints.Has(in.Start) {
		return nil, ErrStartIsDropPoint
	}
	if in.TankCapacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	if in.InitialFuel <= 0 {
		return nil, ErrNonPositiveFuel
	}

	return &RelaxedProblem{
		name:         fmt.Sprintf("RelaxedDeliveries(%s)", in.Name),
		start:        in.Start,
		dropPoints:   in.DropPoints,
		gasStations:  in.GasStations,
		tankCapacity: in.TankCapacity,
		initialFuel:  in.InitialFuel,
		stops:        in.DropPoints.Union(in.GasStations).Sorted(),
	}, nil
}

// Name returns the instance label, e.g. "RelaxedDeliveries(tlv-42)".
func (p *RelaxedProblem) Name() string { return p.name }

// DropPoints returns the goal set. Read-only for callers.
func (p *RelaxedProblem) DropPoints() ways.JunctionSet { return p.dropPoints }

// GasStations returns the refueling set. Read-only for callers.
func (p *RelaxedProblem) GasStations() ways.JunctionSet { return p.gasStations }

// TankCapacity returns the fuel level a refuel resets to.
func (p *RelaxedProblem) TankCapacity() float64 { return p.tankCapacity }

// Start returns the initial state: at the start junction, nothing
// dropped, tank at the initial fuel level.
func (p *RelaxedProblem) Start() *State {
	// Construction cannot fail: NewRelaxedProblem validated the fuel.
	s, _ := NewState(p.start, nil, p.initialFuel)

	return s
}

// Expand materializes the successor set of s.
//
// For every possible stop point q (drop points ∪ gas stations), in
// ascending junction-ID order:
//
//  1. Skip q when it is the current location itself.
//  2. Skip q when it is a drop point already served — operators are
//     not defined for served drops. Gas stations stay revisitable.
//  3. Charge d = air distance(current, q); skip when the remaining
//     fuel cannot cover d.
//  4. A drop point joins the dropped set and the fuel drops by d;
//     a gas station resets the fuel to tank capacity regardless of
//     what would have remained.
//
// Every emitted edge costs d. Successor states are fresh values; s is
// never touched.
//
// Complexity: O(D + G) distance computations per call.
func (p *RelaxedProblem) Expand(s *State) []search.Successor[*State] {
	successors := make([]search.Successor[*State], 0, len(p.stops))
	for _, q := range p.stops {
		if q.ID == s.Location().ID {
			continue
		}
		if s.Dropped().Has(q) {
			continue
		}

		d := s.Location().AirDistanceTo(q)
		remaining := s.Fuel() - d
		if remaining < 0 {
			// Unreachable on the current tank; no edge.
			continue
		}

		var next *State
		var err error
		if p.dropPoints.Has(q) {
			next, err = NewState(q, s.Dropped().With(q), remaining)
		} else {
			next, err = NewState(q, s.Dropped(), p.tankCapacity)
		}
		if err != nil {
			// remaining == 0 arrives with a dry tank; such a stop is
			// not a legal state, so the edge is dropped.
			continue
		}
		successors = append(successors, search.Successor[*State]{State: next, Cost: d})
	}

	return successors
}

// IsGoal reports whether every drop point has been served. Fuel and
// location are irrelevant to goal status.
func (p *RelaxedProblem) IsGoal(s *State) bool {
	return s.Dropped().Equal(p.dropPoints)
}
