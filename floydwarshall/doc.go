// Package floydwarshall implements dense all-pairs shortest path solving in
// two variants: a scalar baseline (FloydWarshall[W]) and a vectorized,
// row-parallel engine (FloydWarshallOptimized) that produce identical
// distance matrices on identical inputs.
//
// What:
//
//   - Both variants hold n×n dist and next (first-hop) matrices and support
//     the classic relax-through-k triple loop, guarded by saturating
//     addition so that summing two "no path" distances never wraps around
//     to a small number.
//   - FloydWarshallOptimized additionally dispatches to a 4-lane unrolled
//     SIMD-style inner loop and, above a size threshold, partitions rows
//     across goroutines synchronized by a barrier-per-k counter scheme so
//     that row k is fully settled before any goroutine uses it as the
//     "through" row at step k+1.
//
// Why:
//
//   - All-pairs shortest path over a small-to-medium dense graph (a level's
//     room graph, a navmesh's region graph) is cheap to query at runtime
//     once precomputed; the optimized engine exists purely for throughput
//     on the O(n³) generate() call, not for correctness.
//
// Errors:
//
//	ErrSizeOverflow - Resize called with a negative size or one whose n*n
//	                  would exceed 2^31.
//	ErrPathNotFound - SetPath/SetPathWithMapping found no path between u,v.
//
// Saturating arithmetic: all distance sums clamp at INF = maxValue(W)
// instead of wrapping; comparisons against INF act as "no path". Negative
// weights are not supported — callers must keep every edge weight strictly
// less than INF.
package floydwarshall
