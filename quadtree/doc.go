// Package quadtree implements QuadTree[Id], a point-indexed spatial index
// backed by a flat node pool, supporting rectangle, radius, and pruned
// nearest-neighbor queries.
//
// What:
//
//   - A node pool ([]quadTreeNode[Id]) rooted at index 0; children are pool
//     indices, not pointers, so the whole tree is one contiguous
//     allocation with no cyclic ownership.
//   - Each node holds up to 4 points inline; a node subdivides into four
//     children (NW, NE, SW, SE) only once its inline capacity is exceeded,
//     and does not push its existing points down into the new children.
//
// Why:
//
//   - Flat pooled storage avoids one allocation per node, keeping insert
//     and query hot paths allocation-free after the pool has grown to size.
//
// Tuning (spec-observable defaults):
//
//   - Inline capacity per node: 4.
//   - Gutter: 120 world units, used by ResetWithBoundaries to pad the
//     derived bounds around a set of positions.
//
// Complexity: O(log n) expected Insert/Remove, O(log n + k) range queries
// (k = matches), O(n) Count.
package quadtree
