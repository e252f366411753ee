// Package search defines the solver-facing contracts: states, problems,
// heuristics, options and sentinel errors.
package search

import "errors"

// Sentinel errors returned by the solver.
var (
	// ErrNilProblem indicates that a nil Problem was passed to Solve.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilHeuristic indicates that a nil Heuristic was passed to Solve.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrNoPath indicates that the frontier was exhausted before any
	// goal state was reached. This is the one *expected* negative
	// outcome of a search, not a contract violation.
	ErrNoPath = errors.New("search: no path to a goal state")

	// ErrExpansionBudget indicates that the expansion cap set via
	// WithMaxExpansions was hit before a goal was found.
	ErrExpansionBudget = errors.New("search: expansion budget exhausted")
)

// State is the identity contract every searchable state fulfills.
// Key returns a canonical string: two states represent the same point
// of the search space iff their keys are equal. Implementations must
// fold any float fields through a fixed quantization before rendering
// the key — raw floats never participate in identity.
type State interface {
	Key() string
}

// Successor pairs a successor state with the cost of the edge that
// produced it.
type Successor[S State] struct {
	// State is the resulting state.
	State S

	// Cost is the non-negative edge cost charged for the transition.
	Cost float64
}

// Problem describes an implicit state space rooted at Start.
// Expand materializes the successor set of a state; emission order is
// not semantically significant but should be deterministic so that
// searches replay identically.
type Problem[S State] interface {
	// Name identifies the problem instance in logs and results.
	Name() string

	// Start returns the initial state.
	Start() S

	// Expand returns every (successor, edge cost) pair reachable from s
	// in one transition.
	Expand(s S) []Successor[S]

	// IsGoal reports whether s satisfies the goal condition.
	IsGoal(s S) bool
}

// Heuristic estimates the remaining cost from a state to the nearest
// goal. Estimates must be ≥ 0; +Inf signals that no goal is reachable.
// A heuristic is bound to its concrete problem at construction.
type Heuristic[S State] interface {
	// Name identifies the heuristic in logs and results.
	Name() string

	// Estimate returns a lower bound on the remaining cost from s.
	Estimate(s S) float64
}

// Solver runs a problem to completion under a heuristic.
// A deterministic problem/heuristic pair yields a deterministic outcome.
type Solver[S State] interface {
	Solve(p Problem[S], h Heuristic[S]) (Result[S], error)
}

// Result holds the outcome of a successful search.
type Result[S State] struct {
	// Path is the state sequence from the start state to the goal,
	// inclusive on both ends.
	Path []S

	// Cost is the total edge cost along Path.
	Cost float64

	// Expanded counts the states popped and expanded during the search.
	Expanded int
}

// Options configures a solver instance.
//
// MaxExpansions — optional cap on expanded states; 0 means unlimited.
type Options struct {
	MaxExpansions int
}

// Option mutates Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMaxExpansions returns an Option capping the number of expanded
// states. Hitting the cap surfaces ErrExpansionBudget.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// DefaultOptions returns an unbounded configuration.
func DefaultOptions() Options {
	return Options{MaxExpansions: 0}
}
