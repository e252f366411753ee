package mstweight

import (
	"errors"
	"math"
)

// ErrNonSquare indicates that the distance matrix is not square.
var ErrNonSquare = errors.New("mstweight: distance matrix must be square")

// ErrDisconnected indicates that no spanning tree covers all vertices.
// With finite distances this cannot happen; it is only reachable when
// +Inf entries are used to model missing edges.
var ErrDisconnected = errors.New("mstweight: matrix induces a disconnected graph")

// Weight computes the total weight of a minimum spanning tree over the
// complete graph induced by the n×n distance matrix dist.
//
// Steps:
//  1. Validate that dist is square (ErrNonSquare otherwise).
//  2. n ≤ 1: the tree is empty, weight 0.
//  3. Grow the tree from vertex 0 with dense Prim: repeatedly pull the
//     cheapest outside vertex, accumulate its connecting edge weight,
//     then relax the remaining best costs.
//  4. If some vertex can never be reached (best cost stays +Inf),
//     return ErrDisconnected.
//
// Complexity: O(n²) time, O(n) memory.
func Weight(dist [][]float64) (float64, error) {
	n := len(dist)
	// 1. Validate square matrix.
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}
	// 2. Zero or one vertex: empty tree.
	if n <= 1 {
		return 0, nil
	}

	// Track which vertices are already in the tree.
	inTree := make([]bool, n)
	// Cheapest edge weight connecting each vertex to the growing tree.
	bestCost := make([]float64, n)
	for v := range bestCost {
		bestCost[v] = math.Inf(1)
	}
	// 3. Start from vertex 0.
	bestCost[0] = 0

	var total float64
	for it := 0; it < n; it++ {
		// (a) Find the outside vertex with minimal connecting cost.
		u, minW := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		// No finite edge reaches any remaining vertex.
		if u < 0 {
			return 0, ErrDisconnected
		}
		// (b) Add u and charge its connecting edge.
		inTree[u] = true
		total += bestCost[u]
		// (c) Relax best costs through the new tree vertex.
		for v := 0; v < n; v++ {
			if !inTree[v] && dist[u][v] < bestCost[v] {
				bestCost[v] = dist[u][v]
			}
		}
	}

	return total, nil
}
