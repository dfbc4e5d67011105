package quadtree

import "github.com/katalvlaran/lvlath-spatial/geometry"

// inlineCapacity is the number of points a leaf node holds before it
// subdivides.
const inlineCapacity = 4

// gutter is the padding (world units) ResetWithBoundaries adds around the
// AABB of a position set when deriving new root bounds.
const gutter = 120.0

// noChild marks a child slot that has not been allocated.
const noChild = int32(-1)

// EntityPoint pairs an opaque Id with the Position it was inserted at.
type EntityPoint[Id comparable] struct {
	ID  Id
	Pos geometry.Position
}

// quadTreeNode is one entry in the flat node pool. Children are indices
// into the same pool, not pointers, so the whole tree lives in one
// contiguous allocation.
type quadTreeNode[Id comparable] struct {
	boundary geometry.Rectangle
	points   []EntityPoint[Id]
	divided  bool
	nw, ne, sw, se int32
}
