// Package sparseset implements SparseSet[K,V], a dense/sparse duality
// container giving worst-case O(1) key→value mapping with dense,
// cache-friendly iteration over live values.
//
// What:
//
//   - A large sparse array maps key K to an index into a small dense pair
//     of arrays (dense_keys, dense_values) holding only the live entries.
//   - Put/Get/Contains/Remove are all O(1); Remove uses swap-with-last to
//     keep the dense arrays compact.
//
// Why:
//
//   - AStar's node positions and the index→id direction of the
//     FloydWarshall and AStar entity mappings all need the same key→value
//     primitive; it is factored out once here.
//
// Errors:
//
//	ErrKeyOutOfRange   - Put called with a key ≥ the configured max key.
//	ErrCapacityExceeded - dense arrays would need to exceed 2^32-1 entries.
//
// Complexity: O(1) amortized for Put/Get/Contains/Remove; O(count) for
// Clear.
package sparseset
