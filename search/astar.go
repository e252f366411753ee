// Package search - A* over an implicit state space.
//
// Notes on implementation choices:
//
//   - “Lazy” decrease-key: improved entries are re-pushed into the heap
//     and stale ones skipped on pop, the cheapest strategy for binary
//     heaps (no index bookkeeping on Swap).
//   - States whose heuristic estimate is +Inf are never enqueued: the
//     heuristic has proven no goal is reachable through them.
//   - The predecessor table is keyed by State.Key(), so path
//     reconstruction costs O(path length) map hops.
package search

import (
	"container/heap"
	"math"
)

// AStar is a single-threaded A* solver. The zero value is not usable;
// construct with NewAStar. A solver instance is stateless between
// Solve calls and may be reused across problems of the same state type.
type AStar[S State] struct {
	opts Options
}

// NewAStar constructs an A* solver with the given options.
func NewAStar[S State](opts ...Option) *AStar[S] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &AStar[S]{opts: o}
}

// compile-time check: *AStar satisfies Solver.
var _ Solver[State] = (*AStar[State])(nil)

// Solve runs A* from p.Start() until a goal state is popped or the
// frontier empties.
//
// Returns:
//
//   - Result with the optimal path and its total cost when h is
//     admissible.
//   - ErrNoPath when every reachable state was exhausted without
//     meeting the goal condition.
//   - ErrExpansionBudget when the WithMaxExpansions cap was hit first.
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrNilProblem).
//  2. h must be non-nil (ErrNilHeuristic).
//
// Complexity: O(N log N) heap work for N enqueued states, plus the
// caller's Expand and Estimate costs per expansion.
func (a *AStar[S]) Solve(p Problem[S], h Heuristic[S]) (Result[S], error) {
	// 1-2. Validate collaborators.
	if p == nil {
		return Result[S]{}, ErrNilProblem
	}
	if h == nil {
		return Result[S]{}, ErrNilHeuristic
	}

	start := p.Start()
	startKey := start.Key()

	// Initialize the frontier with the start state.
	open := &frontier[S]{}
	heap.Init(open)
	var seq uint64
	heap.Push(open, &frontierNode[S]{
		state: start,
		key:   startKey,
		g:     0,
		f:     h.Estimate(start),
		seq:   seq,
	})

	// bestG holds the cheapest known path cost per state key;
	// closed marks keys whose optimal cost is settled;
	// cameFrom records predecessors for path reconstruction.
	bestG := map[string]float64{startKey: 0}
	closed := make(map[string]bool)
	cameFrom := make(map[string]S)

	expanded := 0
	for open.Len() > 0 {
		node := heap.Pop(open).(*frontierNode[S])

		// Skip stale entries superseded by a cheaper re-push.
		if closed[node.key] {
			continue
		}
		if g, ok := bestG[node.key]; ok && node.g > g {
			continue
		}
		closed[node.key] = true

		// Goal test on pop keeps the first settled cost optimal.
		if p.IsGoal(node.state) {
			return Result[S]{
				Path:     a.reconstruct(cameFrom, node.state, startKey),
				Cost:     node.g,
				Expanded: expanded,
			}, nil
		}

		expanded++
		if a.opts.MaxExpansions > 0 && expanded > a.opts.MaxExpansions {
			return Result[S]{}, ErrExpansionBudget
		}

		for _, succ := range p.Expand(node.state) {
			succKey := succ.State.Key()
			if closed[succKey] {
				continue
			}
			tentative := node.g + succ.Cost
			if g, ok := bestG[succKey]; ok && tentative >= g {
				continue
			}
			estimate := h.Estimate(succ.State)
			if math.IsInf(estimate, 1) {
				// Proven dead end; pruning it keeps the search exact as
				// long as the heuristic is admissible.
				continue
			}
			bestG[succKey] = tentative
			cameFrom[succKey] = node.state
			seq++
			heap.Push(open, &frontierNode[S]{
				state: succ.State,
				key:   succKey,
				g:     tentative,
				f:     tentative + estimate,
				seq:   seq,
			})
		}
	}

	return Result[S]{}, ErrNoPath
}

// reconstruct walks the predecessor table from goal back to the start.
func (a *AStar[S]) reconstruct(cameFrom map[string]S, goal S, startKey string) []S {
	path := []S{goal}
	current := goal
	for current.Key() != startKey {
		prev, ok := cameFrom[current.Key()]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	// Reverse into start→goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
