package quadtree

import (
	"iter"

	"github.com/katalvlaran/lvlath-spatial/geometry"
)

// QuadTree is a point-indexed spatial index over a flat node pool rooted at
// index 0. Only the pool owns memory; child references are pool indices.
type QuadTree[Id comparable] struct {
	nodes     []quadTreeNode[Id]
	positions map[Id]geometry.Position // last known position, for Remove(id)

	haveExtrema            bool
	minX, minY, maxX, maxY float32
}

// Init allocates a QuadTree whose root covers bounds.
func Init[Id comparable](bounds geometry.Rectangle) *QuadTree[Id] {
	return &QuadTree[Id]{
		nodes:     []quadTreeNode[Id]{{boundary: bounds, nw: noChild, ne: noChild, sw: noChild, se: noChild}},
		positions: make(map[Id]geometry.Position),
	}
}

// ResetWithBoundaries discards every stored point and rebuilds the root
// boundary as the AABB of positions inflated by gutter (120 world units) on
// every side. The node pool backing array is reused to avoid reallocating.
func (qt *QuadTree[Id]) ResetWithBoundaries(positions []geometry.Position) {
	var minX, minY, maxX, maxY float32
	if len(positions) > 0 {
		minX, minY = positions[0].X, positions[0].Y
		maxX, maxY = positions[0].X, positions[0].Y
		for _, p := range positions[1:] {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	bounds := geometry.Rectangle{
		X:      minX - gutter,
		Y:      minY - gutter,
		Width:  (maxX + gutter) - (minX - gutter),
		Height: (maxY + gutter) - (minY - gutter),
	}

	qt.nodes = qt.nodes[:0]
	qt.nodes = append(qt.nodes, quadTreeNode[Id]{boundary: bounds, nw: noChild, ne: noChild, sw: noChild, se: noChild})
	for k := range qt.positions {
		delete(qt.positions, k)
	}
	qt.haveExtrema = false
}

// Insert places id at pos. Returns false (storing no point) if pos does not
// lie within the root boundary; the tracked extrema reported by Bounds are
// updated with pos either way.
func (qt *QuadTree[Id]) Insert(id Id, pos geometry.Position) bool {
	qt.trackExtrema(pos)
	ok := qt.insertAt(0, EntityPoint[Id]{ID: id, Pos: pos})
	if ok {
		qt.positions[id] = pos
	}
	return ok
}

func (qt *QuadTree[Id]) trackExtrema(pos geometry.Position) {
	if !qt.haveExtrema {
		qt.minX, qt.maxX = pos.X, pos.X
		qt.minY, qt.maxY = pos.Y, pos.Y
		qt.haveExtrema = true
		return
	}
	if pos.X < qt.minX {
		qt.minX = pos.X
	}
	if pos.X > qt.maxX {
		qt.maxX = pos.X
	}
	if pos.Y < qt.minY {
		qt.minY = pos.Y
	}
	if pos.Y > qt.maxY {
		qt.maxY = pos.Y
	}
}

// Bounds returns the tracked (minX,minY)-(maxX,maxY) extrema of every
// position ever passed to Insert, regardless of whether the insert
// succeeded.
func (qt *QuadTree[Id]) Bounds() (minX, minY, maxX, maxY float32, ok bool) {
	return qt.minX, qt.minY, qt.maxX, qt.maxY, qt.haveExtrema
}

// insertAt attempts to place point at node nodeIdx, recursing into children
// as needed. Returns whether the point was placed anywhere.
func (qt *QuadTree[Id]) insertAt(nodeIdx int32, point EntityPoint[Id]) bool {
	node := &qt.nodes[nodeIdx]
	if !node.boundary.ContainsPosition(point.Pos) {
		return false
	}
	if !node.divided && len(node.points) < inlineCapacity {
		node.points = append(node.points, point)
		return true
	}
	if !node.divided {
		qt.subdivide(nodeIdx)
		node = &qt.nodes[nodeIdx] // subdivide may have grown qt.nodes, reloading the pointer
	}
	children := [4]int32{node.nw, node.ne, node.sw, node.se}
	for _, childIdx := range children {
		if qt.insertAt(childIdx, point) {
			return true
		}
	}
	// Half-open containment means every point fits exactly one child's
	// rectangle; reaching here should not happen, but if it does the point
	// is retained at the current (already-subdivided) node rather than
	// dropped.
	qt.nodes[nodeIdx].points = append(qt.nodes[nodeIdx].points, point)
	return true
}

// subdivide allocates four children tiling node nodeIdx's boundary 2x2 and
// marks it divided. Existing points already stored at nodeIdx are left in
// place — subdivision does not push them down into the new children.
func (qt *QuadTree[Id]) subdivide(nodeIdx int32) {
	b := qt.nodes[nodeIdx].boundary
	hw, hh := b.Width/2, b.Height/2

	nw := geometry.Rectangle{X: b.X, Y: b.Y, Width: hw, Height: hh}
	ne := geometry.Rectangle{X: b.X + hw, Y: b.Y, Width: hw, Height: hh}
	sw := geometry.Rectangle{X: b.X, Y: b.Y + hh, Width: hw, Height: hh}
	se := geometry.Rectangle{X: b.X + hw, Y: b.Y + hh, Width: hw, Height: hh}

	base := int32(len(qt.nodes))
	qt.nodes = append(qt.nodes,
		quadTreeNode[Id]{boundary: nw, nw: noChild, ne: noChild, sw: noChild, se: noChild},
		quadTreeNode[Id]{boundary: ne, nw: noChild, ne: noChild, sw: noChild, se: noChild},
		quadTreeNode[Id]{boundary: sw, nw: noChild, ne: noChild, sw: noChild, se: noChild},
		quadTreeNode[Id]{boundary: se, nw: noChild, ne: noChild, sw: noChild, se: noChild},
	)

	node := &qt.nodes[nodeIdx]
	node.nw, node.ne, node.sw, node.se = base, base+1, base+2, base+3
	node.divided = true
}

// Remove deletes id from the tree, using the last position Insert recorded
// for it to descend directly to the owning node. Returns whether id was
// present.
func (qt *QuadTree[Id]) Remove(id Id) bool {
	pos, ok := qt.positions[id]
	if !ok {
		return false
	}
	removed := qt.removeAt(0, id, pos)
	if removed {
		delete(qt.positions, id)
	}
	return removed
}

func (qt *QuadTree[Id]) removeAt(nodeIdx int32, id Id, pos geometry.Position) bool {
	node := &qt.nodes[nodeIdx]
	if !node.boundary.ContainsPosition(pos) {
		return false
	}
	for i, p := range node.points {
		if p.ID == id {
			last := len(node.points) - 1
			node.points[i] = node.points[last]
			node.points = node.points[:last]
			return true
		}
	}
	if node.divided {
		children := [4]int32{node.nw, node.ne, node.sw, node.se}
		for _, childIdx := range children {
			if qt.removeAt(childIdx, id, pos) {
				return true
			}
		}
	}
	return false
}

// Update moves id to newPos via Remove then Insert. Returns false (without
// touching tracked bounds) if id was not present.
func (qt *QuadTree[Id]) Update(id Id, newPos geometry.Position) bool {
	if !qt.Remove(id) {
		return false
	}
	return qt.Insert(id, newPos)
}

// Count returns the total number of points stored in the tree, via a full
// O(n) traversal.
func (qt *QuadTree[Id]) Count() int {
	return qt.countAt(0)
}

// Each yields every stored point in traversal order (a node's own points
// before its children; NW, NE, SW, SE among siblings), mirroring the
// parent-before-children order QueryRect already guarantees.
func (qt *QuadTree[Id]) Each() iter.Seq[EntityPoint[Id]] {
	return func(yield func(EntityPoint[Id]) bool) {
		qt.eachAt(0, yield)
	}
}

func (qt *QuadTree[Id]) eachAt(nodeIdx int32, yield func(EntityPoint[Id]) bool) bool {
	node := &qt.nodes[nodeIdx]
	for _, p := range node.points {
		if !yield(p) {
			return false
		}
	}
	if !node.divided {
		return true
	}
	children := [4]int32{node.nw, node.ne, node.sw, node.se}
	for _, childIdx := range children {
		if !qt.eachAt(childIdx, yield) {
			return false
		}
	}
	return true
}

func (qt *QuadTree[Id]) countAt(nodeIdx int32) int {
	node := &qt.nodes[nodeIdx]
	n := len(node.points)
	if node.divided {
		n += qt.countAt(node.nw)
		n += qt.countAt(node.ne)
		n += qt.countAt(node.sw)
		n += qt.countAt(node.se)
	}
	return n
}

// QueryRect appends every stored point contained in r to out and returns
// the extended slice. Subtrees whose boundary does not intersect r are
// pruned.
func (qt *QuadTree[Id]) QueryRect(r geometry.Rectangle, out []EntityPoint[Id]) []EntityPoint[Id] {
	return qt.queryRectAt(0, r, out)
}

func (qt *QuadTree[Id]) queryRectAt(nodeIdx int32, r geometry.Rectangle, out []EntityPoint[Id]) []EntityPoint[Id] {
	node := &qt.nodes[nodeIdx]
	if !node.boundary.Intersects(r) {
		return out
	}
	for _, p := range node.points {
		if r.ContainsPosition(p.Pos) {
			out = append(out, p)
		}
	}
	if node.divided {
		out = qt.queryRectAt(node.nw, r, out)
		out = qt.queryRectAt(node.ne, r, out)
		out = qt.queryRectAt(node.sw, r, out)
		out = qt.queryRectAt(node.se, r, out)
	}
	return out
}

// HasPointInRect is a short-circuit variant of QueryRect: it reports
// whether any stored point lies in r without collecting matches.
func (qt *QuadTree[Id]) HasPointInRect(r geometry.Rectangle) bool {
	return qt.hasPointInRectAt(0, r)
}

func (qt *QuadTree[Id]) hasPointInRectAt(nodeIdx int32, r geometry.Rectangle) bool {
	node := &qt.nodes[nodeIdx]
	if !node.boundary.Intersects(r) {
		return false
	}
	for _, p := range node.points {
		if r.ContainsPosition(p.Pos) {
			return true
		}
	}
	if node.divided {
		return qt.hasPointInRectAt(node.nw, r) ||
			qt.hasPointInRectAt(node.ne, r) ||
			qt.hasPointInRectAt(node.sw, r) ||
			qt.hasPointInRectAt(node.se, r)
	}
	return false
}

// QueryRadius appends every stored point within radius of center to out,
// using the enclosing square as a QueryRect prefilter and rejecting
// per-point by squared distance.
func (qt *QuadTree[Id]) QueryRadius(center geometry.Position, radius float32, out []EntityPoint[Id]) []EntityPoint[Id] {
	square := geometry.Rectangle{
		X: center.X - radius, Y: center.Y - radius,
		Width: radius * 2, Height: radius * 2,
	}
	radiusSq := radius * radius
	start := len(out)
	candidates := qt.queryRectAt(0, square, out)
	// Filter in place: keep only candidates within radiusSq, starting from
	// the caller's original slice length so pre-existing entries in out are
	// untouched.
	write := start
	for _, p := range candidates[start:] {
		if p.Pos.DistanceSquared(center) <= radiusSq {
			candidates[write] = p
			write++
		}
	}
	return candidates[:write]
}

// QueryNearest performs a depth-first, pruned nearest-neighbor search: at
// each node it first updates the best match from the node's own points,
// then descends only into children whose minimum distance to pos is
// strictly less than the current best distance. Children may be visited in
// any order. Returns false if no point lies within maxDistance.
func (qt *QuadTree[Id]) QueryNearest(pos geometry.Position, maxDistance float32) (EntityPoint[Id], bool) {
	best := EntityPoint[Id]{}
	found := false
	bestDistSq := maxDistance * maxDistance
	qt.queryNearestAt(0, pos, &best, &found, &bestDistSq)
	return best, found
}

func (qt *QuadTree[Id]) queryNearestAt(nodeIdx int32, pos geometry.Position, best *EntityPoint[Id], found *bool, bestDistSq *float32) {
	node := &qt.nodes[nodeIdx]
	for _, p := range node.points {
		d := p.Pos.DistanceSquared(pos)
		if d <= *bestDistSq {
			*best = p
			*found = true
			*bestDistSq = d
		}
	}
	if !node.divided {
		return
	}
	children := [4]int32{node.nw, node.ne, node.sw, node.se}
	for _, childIdx := range children {
		if qt.nodes[childIdx].boundary.ClampedDistanceSquared(pos) < *bestDistSq {
			qt.queryNearestAt(childIdx, pos, best, found, bestDistSq)
		}
	}
}
