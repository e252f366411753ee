// Package deliveries - the three admissible heuristics.
//
// Each heuristic binds to its concrete problem type at construction,
// so no estimate ever inspects types at runtime. Admissibility
// arguments are spelled out per heuristic; the search relies on them
// for optimality.
package deliveries

import (
	"errors"
	"fmt"
	"math"

	"github.com/fuelway/fuelway/mstweight"
	"github.com/fuelway/fuelway/search"
	"github.com/fuelway/fuelway/ways"
)

// MaxAirDistHeuristic estimates the remaining cost of a relaxed state
// as the largest air distance from the current location to any
// remaining drop point.
//
// Admissible: the farthest undelivered point must eventually be
// reached, and air distance never overestimates true travel cost.
type MaxAirDistHeuristic struct {
	problem *RelaxedProblem
}

// compile-time check: satisfies search.Heuristic over *State.
var _ search.Heuristic[*State] = (*MaxAirDistHeuristic)(nil)

// NewMaxAirDistHeuristic binds the heuristic to its problem.
func NewMaxAirDistHeuristic(p *RelaxedProblem) *MaxAirDistHeuristic {
	return &MaxAirDistHeuristic{problem: p}
}

// Name identifies the heuristic in logs and results.
func (h *MaxAirDistHeuristic) Name() string { return "MaxAirDist" }

// Estimate returns the maximum air distance to a remaining drop point,
// or 0 when none remain.
// Complexity: O(D) per call.
func (h *MaxAirDistHeuristic) Estimate(s *State) float64 {
	var maxDist float64
	for _, drop := range h.problem.DropPoints().Diff(s.Dropped()).Sorted() {
		if d := s.Location().AirDistanceTo(drop); d > maxDist {
			maxDist = d
		}
	}

	return maxDist
}

// MSTAirDistHeuristic estimates the remaining cost of a relaxed state
// as the MST weight over the remaining drop points plus the current
// location, with air-distance edge weights.
//
// Admissible, and dominates MaxAirDist: any feasible tour that starts
// at the current location and covers the remaining drops contains a
// spanning path of those points, which cannot weigh less than their
// MST.
//
// The heuristic owns a persistent distance cache: across the many
// estimates of one search the same junction pairs recur, so each pair
// is priced exactly once. The cache dies with the heuristic.
type MSTAirDistHeuristic struct {
	problem *RelaxedProblem
	cache   *ways.DistanceCache
}

var _ search.Heuristic[*State] = (*MSTAirDistHeuristic)(nil)

// NewMSTAirDistHeuristic binds the heuristic to its problem and seeds
// its private distance cache.
func NewMSTAirDistHeuristic(p *RelaxedProblem) *MSTAirDistHeuristic {
	return &MSTAirDistHeuristic{problem: p, cache: ways.NewDistanceCache()}
}

// Name identifies the heuristic in logs and results.
func (h *MSTAirDistHeuristic) Name() string { return "MSTAirDist" }

// Estimate returns the MST weight over (remaining drops ∪ current
// location).
//
// Steps:
//  1. remaining = drop points − dropped, plus the current location
//     (deduplicated by junction ID, so standing on a remaining drop
//     contributes one vertex, not two).
//  2. Build the dense symmetric distance matrix through the cache.
//  3. Return the Prim weight of the induced complete graph.
//
// Complexity: O(n²) with n = |remaining| + 1.
func (h *MSTAirDistHeuristic) Estimate(s *State) float64 {
	remaining := h.problem.DropPoints().Diff(s.Dropped()).With(s.Location())
	junctions := remaining.Sorted()

	n := len(junctions)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := h.cache.Distance(junctions[i], junctions[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	weight, err := mstweight.Weight(dist)
	if err != nil {
		// Unreachable: the matrix is square by construction and air
		// distances are finite. Fail loudly rather than corrupt the bound.
		panic(fmt.Sprintf("deliveries: MST over air distances failed: %v", err))
	}

	return weight
}

// RelaxedProblemHeuristic estimates the remaining cost of a *strict*
// state by solving the relaxed sub-problem that mirrors it: same
// remaining drop points, same gas stations, same capacity, and the
// strict state's fuel as initial fuel.
//
// Admissible: the relaxation removes constraints, so its optimal cost
// never exceeds the strict problem's true remaining cost — and the
// nested solve, run with the admissible MSTAirDist bound, returns that
// optimum exactly. When the sub-problem has no solution the estimate
// is +Inf, which is vacuously admissible and prunes the branch.
//
// This is the expensive heuristic: every Estimate runs a complete
// nested A*. Callers should reach for it only where its tighter bound
// pays for itself in outer-node expansions.
type RelaxedProblemHeuristic struct {
	problem *StrictProblem
	solver  search.Solver[*State]
}

var _ search.Heuristic[*State] = (*RelaxedProblemHeuristic)(nil)

// NewRelaxedProblemHeuristic binds the heuristic to the strict problem
// it serves and to the solver that will run the nested searches. A nil
// solver defaults to an unbounded A*.
func NewRelaxedProblemHeuristic(p *StrictProblem, solver search.Solver[*State]) *RelaxedProblemHeuristic {
	if solver == nil {
		solver = search.NewAStar[*State]()
	}

	return &RelaxedProblemHeuristic{problem: p, solver: solver}
}

// Name identifies the heuristic in logs and results.
func (h *RelaxedProblemHeuristic) Name() string { return "RelaxedProb" }

// Estimate projects s into a fresh, independent relaxed sub-instance,
// solves it with MSTAirDist, and returns the solved total cost — or
// +Inf when no solution exists from s.
//
// A sub-problem that fails to construct means the strict state broke
// the model's invariants; that is a caller bug and panics, per the
// fail-fast contract.
func (h *RelaxedProblemHeuristic) Estimate(s *State) float64 {
	sub, err := NewRelaxedProblem(ProblemInput{
		Name:         h.problem.Name(),
		Start:        s.Location(),
		DropPoints:   h.problem.DropPoints().Diff(s.Dropped()),
		GasStations:  h.problem.GasStations(),
		TankCapacity: h.problem.TankCapacity(),
		InitialFuel:  s.Fuel(),
	})
	if err != nil {
		panic(fmt.Sprintf("deliveries: invalid relaxed sub-problem: %v", err))
	}

	res, err := h.solver.Solve(sub, NewMSTAirDistHeuristic(sub))
	switch {
	case err == nil:
		return res.Cost
	case errors.Is(err, search.ErrNoPath):
		// No solution from s: the goal is unreachable, so +Inf is a
		// valid (and pruning) lower bound.
		return math.Inf(1)
	default:
		// Any other failure (e.g. a capped solver running out of
		// budget) would silently break admissibility if swallowed.
		panic(fmt.Sprintf("deliveries: nested solve failed: %v", err))
	}
}
