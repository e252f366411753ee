package deliveries

import (
	"fmt"

	"github.com/fuelway/fuelway/search"
	"github.com/fuelway/fuelway/ways"
)

// RoadDistanceFunc prices travel between two junctions over the real
// road network. ok == false means no road route exists; the transition
// is then not generated at all. Implementations must be symmetric and
// must never undercut the air distance between the same junctions.
type RoadDistanceFunc func(from, to *ways.Junction) (dist float64, ok bool)

// StrictProblem is the non-relaxed deliveries problem: the same stop
// points and fuel/refuel semantics as RelaxedProblem, but transitions
// are priced by real road distances. Road lookups are memoized per
// problem instance, since a search asks for the same pairs repeatedly.
type StrictProblem struct {
	name         string
	start        *ways.Junction
	dropPoints   ways.JunctionSet
	gasStations  ways.JunctionSet
	tankCapacity float64
	initialFuel  float64
	stops        []*ways.Junction

	roads     RoadDistanceFunc
	roadMemo  map[[2]int]float64
	unreached map[[2]int]bool
}

// compile-time check: *StrictProblem satisfies search.Problem.
var _ search.Problem[*State] = (*StrictProblem)(nil)

// NewStrictProblem validates the input and builds a strict instance.
// Validation matches NewRelaxedProblem. A nil roads function falls
// back to air distance, which keeps the instance usable without a
// road network (and makes the strict problem coincide with the
// relaxation's pricing).
func NewStrictProblem(in ProblemInput, roads RoadDistanceFunc) (*StrictProblem, error) {
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
	if roads == nil {
		roads = func(from, to *ways.Junction) (float64, bool) {
			return from.AirDistanceTo(to), true
		}
	}

	return &StrictProblem{
		name:         fmt.Sprintf("StrictDeliveries(%s)", in.Name),
		start:        in.Start,
		dropPoints:   in.DropPoints,
		gasStations:  in.GasStations,
		tankCapacity: in.TankCapacity,
		initialFuel:  in.InitialFuel,
		stops:        in.DropPoints.Union(in.GasStations).Sorted(),
		roads:        roads,
		roadMemo:     make(map[[2]int]float64),
		unreached:    make(map[[2]int]bool),
	}, nil
}

// Name returns the instance label, e.g. "StrictDeliveries(tlv-42)".
func (p *StrictProblem) Name() string { return p.name }

// DropPoints returns the goal set. Read-only for callers.
func (p *StrictProblem) DropPoints() ways.JunctionSet { return p.dropPoints }

// GasStations returns the refueling set. Read-only for callers.
func (p *StrictProblem) GasStations() ways.JunctionSet { return p.gasStations }

// TankCapacity returns the fuel level a refuel resets to.
func (p *StrictProblem) TankCapacity() float64 { return p.tankCapacity }

// Start returns the initial state.
func (p *StrictProblem) Start() *State {
	s, _ := NewState(p.start, nil, p.initialFuel)

	return s
}

// roadDistance memoizes the road pricing per unordered junction pair.
func (p *StrictProblem) roadDistance(from, to *ways.Junction) (float64, bool) {
	a, b := from.ID, to.ID
	if a > b {
		a, b = b, a
	}
	key := [2]int{a, b}
	if p.unreached[key] {
		return 0, false
	}
	if d, ok := p.roadMemo[key]; ok {
		return d, true
	}
	d, ok := p.roads(from, to)
	if !ok {
		p.unreached[key] = true

		return 0, false
	}
	p.roadMemo[key] = d

	return d, true
}

// Expand materializes the successor set of s under road pricing. The
// transition rules mirror RelaxedProblem.Expand; only the edge cost
// source differs, and pairs without a road route produce no edge.
func (p *StrictProblem) Expand(s *State) []search.Successor[*State] {
	successors := make([]search.Successor[*State], 0, len(p.stops))
	for _, q := range p.stops {
		if q.ID == s.Location().ID {
			continue
		}
		if s.Dropped().Has(q) {
			continue
		}

		d, ok := p.roadDistance(s.Location(), q)
		if !ok {
			continue
		}
		remaining := s.Fuel() - d
		if remaining < 0 {
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
			continue
		}
		successors = append(successors, search.Successor[*State]{State: next, Cost: d})
	}

	return successors
}

// IsGoal reports whether every drop point has been served.
func (p *StrictProblem) IsGoal(s *State) bool {
	return s.Dropped().Equal(p.dropPoints)
}
