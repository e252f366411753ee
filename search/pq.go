package search

// frontierNode is one entry of the open-set heap. Under the lazy
// decrease-key strategy a state may appear several times; the stale
// copies are recognized and skipped on pop.
type frontierNode[S State] struct {
	state S
	key   string  // canonical identity of state
	g     float64 // cost of the best known path to state
	f     float64 // g + heuristic estimate
	seq   uint64  // insertion sequence, breaks f-ties deterministically
}

// frontier implements heap.Interface as a min-heap over f, with
// insertion order as tie-breaker so equal-f states pop in the order
// they were discovered.
type frontier[S State] []*frontierNode[S]

// Len returns the number of nodes in the frontier. Complexity: O(1).
func (fr frontier[S]) Len() int { return len(fr) }

// Less orders by f ascending, then by insertion sequence.
// Complexity: O(1).
func (fr frontier[S]) Less(i, j int) bool {
	if fr[i].f != fr[j].f {
		return fr[i].f < fr[j].f
	}

	return fr[i].seq < fr[j].seq
}

// Swap swaps two nodes. Complexity: O(1).
func (fr frontier[S]) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }

// Push appends a node. Called by heap.Push. Complexity: O(log N) amortized.
func (fr *frontier[S]) Push(x any) { *fr = append(*fr, x.(*frontierNode[S])) }

// Pop removes and returns the minimal node. Called by heap.Pop.
// Complexity: O(log N) amortized.
func (fr *frontier[S]) Pop() any {
	old := *fr
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*fr = old[:n-1]

	return node
}
