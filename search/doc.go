// Package search implements a generic, single-threaded A* solver over
// implicitly defined state spaces.
//
// A state space is described by a Problem[S]: a start state, an Expand
// function producing (successor, edge cost) pairs, and a goal test.
// States identify themselves through Key(), a canonical string used for
// the closed set and the g-score table — this replaces runtime type
// inspection with a compile-time boundary: a Problem, its states and
// its Heuristic are bound together by the type parameter S.
//
// Guarantees:
//
//   - Optimality: with an admissible heuristic (Estimate never exceeds
//     the true remaining cost), the returned path cost is optimal.
//   - Determinism: expansion follows the order Expand emits successors
//     in, and the frontier breaks f-ties by insertion order; identical
//     inputs replay identical searches.
//   - Lazy decrease-key: the frontier is a binary heap into which
//     improved entries are re-pushed; stale entries are skipped on pop.
//
// When the frontier empties before a goal is found, Solve returns
// ErrNoPath. Callers that use a nested solve as a bound translate that
// sentinel into +Inf rather than treating it as a failure.
//
// The solver is synchronous and confined to the calling goroutine; no
// cancellation is provided at this layer.
package search
