// Package mstweight computes the total weight of a minimum spanning
// tree over the complete graph induced by a dense distance matrix.
//
// What & Why
//
//   - What: given an n×n symmetric matrix of pairwise distances
//     (diagonal zero), Weight returns the sum of MST edge weights,
//     using Prim's algorithm in its O(n²) dense form.
//
//   - Why it matters here: the MST weight is an admissible lower bound
//     on any tour that visits all n points, wherever the tour starts.
//     A tour restricted to tree edges cannot be cheaper than the tree,
//     and every Hamiltonian path weighs at least as much as the MST.
//     The deliveries heuristics lean on exactly this bound.
//
// Algorithm
//
//   - Dense Prim: grow the tree from vertex 0, keeping for every
//     outside vertex the cheapest edge into the tree. No heap — with a
//     complete graph the O(n²) scan beats O(E log V) bookkeeping.
//   - Deterministic: ties break toward the lower vertex index.
//
// Error Conditions
//
//   - ErrNonSquare     — the matrix is ragged or not n×n.
//   - ErrDisconnected  — no spanning tree exists; only reachable when
//     +Inf entries model missing edges.
//
// Complexity: O(n²) time, O(n) auxiliary space.
package mstweight
