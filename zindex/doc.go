// Package zindex implements ZIndexBuckets[T,Z], a bucketed ordered
// container keyed by a small unsigned integer z-index. It gives O(1)
// insertion and iteration in strict ascending z-order, with insertion order
// preserved within each bucket.
//
// What:
//
//   - B = maxZ+1 independent ordered buckets, where maxZ is the largest
//     z-index passed to New (not necessarily maxValue(Z)); each bucket is an
//     append-only slice until an item is removed from it. Valid z-indices
//     are 0..maxZ; they are not range-checked.
//   - Insert/Remove/ChangeZIndex/Iterator/Clear.
//
// Why:
//
//   - Render/update ordering for 2D scenes (sprites, UI panels) commonly
//     needs "draw everything at z=0, then z=1, ..." without a full sort on
//     every frame; buckets amortize that to O(1) insert + O(n) iterate.
//
// Errors:
//
//	ErrItemNotFound - ChangeZIndex called on an item not present at old_z.
package zindex
