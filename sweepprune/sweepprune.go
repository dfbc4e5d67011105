package sweepprune

import (
	"iter"
	"sort"

	"github.com/katalvlaran/lvlath-spatial/geometry"
)

// SweepAndPrune is an incremental AABB broad-phase collision detector keyed
// by an opaque comparable Id.
type SweepAndPrune[Id comparable] struct {
	entities []geometry.AABB[Id]

	sortedIndices []int // scratch, reused across FindCollisions calls
}

// New returns an empty SweepAndPrune.
func New[Id comparable]() *SweepAndPrune[Id] {
	return &SweepAndPrune[Id]{}
}

// Len returns the number of tracked entities.
func (sp *SweepAndPrune[Id]) Len() int { return len(sp.entities) }

// Each yields every tracked AABB in insertion-compaction order (the order
// Add/Remove's swap-with-last leaves them in, not sorted by position).
func (sp *SweepAndPrune[Id]) Each() iter.Seq[geometry.AABB[Id]] {
	return func(yield func(geometry.AABB[Id]) bool) {
		for _, e := range sp.entities {
			if !yield(e) {
				return
			}
		}
	}
}

// Add registers a new entity. O(1).
func (sp *SweepAndPrune[Id]) Add(id Id, center geometry.Position, halfWidth, halfHeight float32) {
	sp.entities = append(sp.entities, geometry.AABB[Id]{ID: id, Center: center, HalfWidth: halfWidth, HalfHeight: halfHeight})
}

// Remove deletes id via linear scan followed by swap-with-last. O(n).
// Returns whether id was present.
func (sp *SweepAndPrune[Id]) Remove(id Id) bool {
	idx := sp.find(id)
	if idx < 0 {
		return false
	}
	last := len(sp.entities) - 1
	sp.entities[idx] = sp.entities[last]
	sp.entities = sp.entities[:last]
	return true
}

// UpdatePosition locates id via linear scan and moves it to a new center.
// O(n). Returns whether id was present.
func (sp *SweepAndPrune[Id]) UpdatePosition(id Id, center geometry.Position) bool {
	idx := sp.find(id)
	if idx < 0 {
		return false
	}
	sp.entities[idx].Center = center
	return true
}

func (sp *SweepAndPrune[Id]) find(id Id) int {
	for i := range sp.entities {
		if sp.entities[i].ID == id {
			return i
		}
	}
	return -1
}

// FindCollisions sorts a scratch index array by entity minX, then sweeps it
// once: for each entity a (in minX order), it scans subsequent entities b
// until b.minX >= a.maxX (no further entity can overlap a), reporting every
// pair that overlaps under the strict-inequality AABB test. Pairs appear in
// sweep order (a is the lower-minX participant) and are reported at most
// once each; they are not re-canonicalized into (min,max) id order, since
// the sweep itself never revisits a pair.
func (sp *SweepAndPrune[Id]) FindCollisions(out []geometry.CollisionPair[Id]) []geometry.CollisionPair[Id] {
	n := len(sp.entities)
	if cap(sp.sortedIndices) < n {
		sp.sortedIndices = make([]int, n)
	}
	sp.sortedIndices = sp.sortedIndices[:n]
	for i := range sp.sortedIndices {
		sp.sortedIndices[i] = i
	}
	indices := sp.sortedIndices
	sort.Slice(indices, func(i, j int) bool {
		return sp.entities[indices[i]].MinX() < sp.entities[indices[j]].MinX()
	})

	for i := 0; i < n; i++ {
		a := sp.entities[indices[i]]
		maxXa := a.MaxX()
		for j := i + 1; j < n; j++ {
			b := sp.entities[indices[j]]
			if b.MinX() >= maxXa {
				break
			}
			if a.Overlaps(b) {
				out = append(out, geometry.CollisionPair[Id]{A: a.ID, B: b.ID})
			}
		}
	}
	return out
}

// QueryRect appends the ids of every entity whose AABB overlaps the query
// rectangle described by center/halfWidth/halfHeight.
func (sp *SweepAndPrune[Id]) QueryRect(center geometry.Position, halfWidth, halfHeight float32, out []Id) []Id {
	query := geometry.AABB[Id]{Center: center, HalfWidth: halfWidth, HalfHeight: halfHeight}
	for _, e := range sp.entities {
		if e.Overlaps(query) {
			out = append(out, e.ID)
		}
	}
	return out
}

// QueryRadius appends the ids of every entity whose AABB comes within
// radius of center, using a coordinate-clamped distance test.
func (sp *SweepAndPrune[Id]) QueryRadius(center geometry.Position, radius float32, out []Id) []Id {
	radiusSq := radius * radius
	for _, e := range sp.entities {
		if e.ClampedDistanceSquared(center) <= radiusSq {
			out = append(out, e.ID)
		}
	}
	return out
}
