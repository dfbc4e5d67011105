// Package sweepprune implements SweepAndPrune[Id], a 1D sweep-and-prune
// broad-phase collision detector over AABBs with incremental position
// updates.
//
// What:
//
//   - Entities are kept in an unordered slice; FindCollisions sorts a
//     scratch index array by minX, then sweeps it once, reporting every
//     overlapping pair exactly once.
//
// Why:
//
//   - Sorting by one axis and sweeping prunes most non-overlapping pairs
//     cheaply before any exact AABB test, which is the standard broad
//     phase used ahead of a narrow phase in 2D physics/collision systems.
//
// Complexity: O(n log n) for the sort, O(n + k) for the sweep (k = pairs
// reported). Add is an O(1) amortized append; Remove is O(n) (linear scan +
// swap-remove) and UpdatePosition is O(n) (linear scan).
package sweepprune
