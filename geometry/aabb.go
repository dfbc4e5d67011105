package geometry

// AABB is an axis-aligned bounding box described by a center and
// half-extents, carrying an opaque Id so callers can recover which entity a
// box belongs to after a broad-phase query.
type AABB[Id comparable] struct {
	ID         Id
	Center     Position
	HalfWidth  float32
	HalfHeight float32
}

// MinX returns the box's minimum X extent.
func (a AABB[Id]) MinX() float32 { return a.Center.X - a.HalfWidth }

// MaxX returns the box's maximum X extent.
func (a AABB[Id]) MaxX() float32 { return a.Center.X + a.HalfWidth }

// MinY returns the box's minimum Y extent.
func (a AABB[Id]) MinY() float32 { return a.Center.Y - a.HalfHeight }

// MaxY returns the box's maximum Y extent.
func (a AABB[Id]) MaxY() float32 { return a.Center.Y + a.HalfHeight }

// Overlaps reports whether a and b overlap, using strict inequalities on
// both axes — boxes that merely touch do not collide.
func (a AABB[Id]) Overlaps(b AABB[Id]) bool {
	return a.MinX() < b.MaxX() && a.MaxX() > b.MinX() &&
		a.MinY() < b.MaxY() && a.MaxY() > b.MinY()
}

// Rectangle returns the Rectangle covering the same area as a.
func (a AABB[Id]) Rectangle() Rectangle {
	return Rectangle{
		X:      a.Center.X - a.HalfWidth,
		Y:      a.Center.Y - a.HalfHeight,
		Width:  a.HalfWidth * 2,
		Height: a.HalfHeight * 2,
	}
}

// ClampedDistanceSquared returns the squared distance from p to the nearest
// point on a's boundary (0 if p is inside a).
func (a AABB[Id]) ClampedDistanceSquared(p Position) float32 {
	return a.Rectangle().ClampedDistanceSquared(p)
}

// CollisionPair is a pair of ids. Pairs built with NewCollisionPair are
// stored in canonical order so that (a,b) and (b,a) compare and hash
// identically, letting callers deduplicate collision reports in a map or
// set. A pair built as a struct literal keeps the order it was given;
// SweepAndPrune.FindCollisions builds its pairs that way, in sweep order.
type CollisionPair[Id comparable] struct {
	A, B Id
}

// NewCollisionPair builds a CollisionPair, canonicalizing order via less so
// that the same unordered pair always produces the same CollisionPair value
// regardless of the order x and y were discovered in.
func NewCollisionPair[Id comparable](x, y Id, less func(a, b Id) bool) CollisionPair[Id] {
	if less(y, x) {
		return CollisionPair[Id]{A: y, B: x}
	}
	return CollisionPair[Id]{A: x, B: y}
}
