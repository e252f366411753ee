// Package deliveries models the fuel-constrained deliveries problem
// and the admissible heuristics that bound its remaining cost.
//
// The model
//
// A vehicle starts at a junction with some fuel and a tank of fixed
// capacity. It must serve every drop point; gas stations refuel the
// tank to full capacity when visited. The *relaxed* problem keeps the
// fuel accounting but abstracts the route between stops down to the
// straight-line air distance, and never revisits a served drop point
// (gas stations stay revisitable). Because the relaxation only removes
// constraints, its optimal cost lower-bounds the strict problem's —
// which is exactly what makes it usable as a heuristic.
//
// A State is (current location, dropped-so-far set, fuel). Fuel is a
// real number, so state identity quantizes it into buckets of 1e-6
// before any comparison: independently computed fuel sums that agree
// to that resolution identify the same state.
//
// Heuristics
//
//   - MaxAirDistHeuristic — the farthest remaining drop point must be
//     reached, and air distance never overestimates travel cost.
//   - MSTAirDistHeuristic — any tour from the current location through
//     the remaining drop points weighs at least the MST over those
//     points plus the current location. Dominates MaxAirDist.
//   - RelaxedProblemHeuristic — bounds a *strict* state by solving, to
//     optimality, the relaxed sub-problem it projects to. Unsolvable
//     sub-problems yield +Inf, pruning the branch. This is the tight
//     bound, and also the expensive one: each estimate runs a full
//     nested A*.
//
// All three satisfy search.Heuristic over the matching problem type,
// bound at construction — no runtime type inspection anywhere.
package deliveries
