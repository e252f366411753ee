// Package ways provides the geometric primitives of the deliveries
// model: planar junctions with symmetric air distances, value-semantics
// junction sets, and a memoized pairwise-distance cache.
//
// Design notes:
//
//   - Junction is an immutable value: it is created once and never
//     mutated. Identity is its integer ID; two junctions with distinct
//     IDs are distinct stops even when they share coordinates.
//   - AirDistanceTo is Euclidean: symmetric, non-negative, zero to the
//     junction itself, and triangle-inequality-respecting. These four
//     properties are load-bearing — every admissibility argument in the
//     deliveries package leans on them.
//   - JunctionSet never mutates a shared map: With, Union and Diff
//     return fresh sets, so problem states can share sets freely.
//     Iteration helpers return junctions in ascending ID order to keep
//     downstream algorithms deterministic.
//   - DistanceCache memoizes lookups keyed by the unordered ID pair.
//     Distances are immutable, so entries are never invalidated. The
//     cache is not safe for concurrent use; each owner confines it.
package ways
