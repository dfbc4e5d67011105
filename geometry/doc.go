// Package geometry provides the 2D primitives shared by every spatial
// container in this module: points, rectangles, and axis-aligned bounding
// boxes.
//
// What:
//
//   - Position / PositionI — float32 and int32 2D vectors.
//   - Rectangle — half-open axis-aligned rectangle (x,y,width,height).
//   - AABB — centered axis-aligned bounding box (center, half-extents).
//   - CollisionPair — a canonically-ordered unordered pair of ids.
//
// Why:
//
//   - QuadTree, SweepAndPrune and the pathfinding engines all need the same
//     notion of "inside", "overlaps", and "distance to" — defined once here
//     so every container shares identical edge-case behavior.
//
// Conventions:
//
//   - Rectangle.Contains uses half-open bounds: x ≤ px < x+w, y ≤ py < y+h.
//     A point on the right or bottom edge is NOT contained.
//   - Rectangle.Intersects and AABB.Overlaps use strict inequalities on all
//     four axes: two shapes that merely touch do not intersect/overlap.
//
// These two conventions are intentionally different from each other (see
// spec Open Questions) and are both preserved exactly as specified.
package geometry
