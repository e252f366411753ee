// Package fuelway provides admissible lower bounds for the
// fuel-constrained deliveries problem: a vehicle with a bounded gas
// tank must serve a set of drop points, refueling at gas stations
// (which reset the tank to full capacity) along the way.
//
// 🚚 What is fuelway?
//
//	A small, deterministic library built around one idea: solve a
//	*relaxed* version of the routing problem to bound the real one.
//	It brings together:
//		• ways/       — planar junctions, air distances, and a memoized
//		                pairwise-distance cache
//		• mstweight/  — O(n²) dense-matrix Prim returning the spanning-tree
//		                weight used as a tour lower bound
//		• search/     — a generic single-threaded A* solver over
//		                expandable state spaces
//		• deliveries/ — the relaxed & strict deliveries models and the
//		                three admissible heuristics (MaxAirDist,
//		                MSTAirDist, RelaxedProblem)
//
// ✨ Why fuelway?
//
//   - Admissible by construction – every estimate is a proven lower
//     bound on the true remaining cost, so A* stays optimal
//   - Deterministic – successors and tree growth break ties by
//     junction ID; repeated runs produce identical searches
//   - Composable – the nested-bound heuristic solves a fresh relaxed
//     sub-problem per call through the same public Solver interface
//
// Quick ASCII example (drop points A, B, C on a line, station at 5):
//
//	start──A──⛽──────B──────────C
//	 (0)  (0) (5)   (10)       (20)
//
//	MST over {A, B, C} bounds any delivery tour from A by 20.
//
// Dive into deliveries/doc.go for the model, search/doc.go for the
// solver contract, and the example tests for end-to-end usage.
//
//	go get github.com/fuelway/fuelway
package fuelway
