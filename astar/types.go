package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlath-spatial/geometry"
)

// Sentinel errors for astar operations.
var (
	// ErrIndexOutOfRange is returned by the entity-mapped edge API when
	// the index space (bounded by n) is exhausted creating a new mapping.
	ErrIndexOutOfRange = errors.New("astar: vertex index out of range")
)

// NoParent is the "no parent" sentinel used in came_from: maxValue(uint32).
const NoParent uint32 = math.MaxUint32

// Unsigned constrains the edge-weight type W to an unsigned integer.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

func maxValue[W Unsigned]() W {
	var zero W
	return ^zero
}

// saturatingAdd returns a+b clamped to maxValue(W).
func saturatingAdd[W Unsigned](a, b W) W {
	inf := maxValue[W]()
	if a == inf || b == inf {
		return inf
	}
	sum := a + b
	if sum < a || sum >= inf {
		return inf
	}
	return sum
}

// Heuristic tags the admissible-distance estimator used by FindPath.
// Exactly these five values exist; there is no open extension point other
// than SetCustomHeuristic.
type Heuristic int

const (
	Euclidean Heuristic = iota
	Manhattan
	Chebyshev
	Octile
	Zero
)

// HeuristicFn is a caller-supplied cost estimate from a to b.
type HeuristicFn func(a, b geometry.Position) float32

const sqrt2Minus1 = float32(0.41421356237) // sqrt(2) - 1

func evalHeuristic(tag Heuristic, a, b geometry.Position) float32 {
	dx := absf(a.X - b.X)
	dy := absf(a.Y - b.Y)
	switch tag {
	case Manhattan:
		return dx + dy
	case Chebyshev:
		return maxf(dx, dy)
	case Octile:
		return maxf(dx, dy) + sqrt2Minus1*minf(dx, dy)
	case Zero:
		return 0
	default: // Euclidean
		return float32(math.Sqrt(float64(dx*dx + dy*dy)))
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
