package floydwarshall

import "fmt"

// FloydWarshall is the scalar all-pairs shortest-path engine: an n×n dense
// dist matrix plus an n×n next-hop matrix for path reconstruction, over an
// unsigned integer weight type W. INF = maxValue(W) represents "no path".
//
// Lifecycle: New → Resize → Clean → AddEdge* → Generate → Dist/Next/Path
// queries → Clean (to reuse) → garbage collected.
type FloydWarshall[W Unsigned] struct {
	n    int
	dist []W
	next []int32

	entities *entityMap
}

// New allocates a FloydWarshall sized for n vertices, already Clean'd.
func New[W Unsigned](n int) *FloydWarshall[W] {
	fw := &FloydWarshall[W]{}
	fw.Resize(n)
	fw.Clean()
	return fw
}

// Size returns the current vertex count.
func (fw *FloydWarshall[W]) Size() int { return fw.n }

// Resize reallocates the dist/next matrices for n vertices. Returns
// ErrSizeOverflow if n is negative or n*n would exceed 2^31 (the range of a
// 32-bit int).
func (fw *FloydWarshall[W]) Resize(n int) error {
	if n < 0 || (n != 0 && n > (1<<31)/n) {
		return ErrSizeOverflow
	}
	fw.n = n
	fw.dist = make([]W, n*n)
	fw.next = make([]int32, n*n)
	fw.entities = newEntityMap(n)
	return nil
}

// Clean resets dist/next to the empty-graph state: dist[i][i]=0, every
// other dist[i][j]=INF, next[i][j]=j. It also clears the id<->index entity
// mapping so the engine can be reused for a fresh graph of the same size.
func (fw *FloydWarshall[W]) Clean() {
	inf := maxValue[W]()
	n := fw.n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			idx := i*n + j
			if i == j {
				fw.dist[idx] = 0
			} else {
				fw.dist[idx] = inf
			}
			fw.next[idx] = int32(j)
		}
	}
	if fw.entities != nil {
		fw.entities.reset()
	}
}

// AddEdge sets the direct edge u->v to weight w (taking the minimum with
// any existing edge weight, so repeated calls are safe). Returns
// ErrIndexOutOfRange if u or v is outside [0,n).
func (fw *FloydWarshall[W]) AddEdge(u, v int, w W) error {
	if u < 0 || u >= fw.n || v < 0 || v >= fw.n {
		return ErrIndexOutOfRange
	}
	idx := u*fw.n + v
	if w < fw.dist[idx] {
		fw.dist[idx] = w
		fw.next[idx] = int32(v)
	}
	return nil
}

// AddEdgeWithMapping sets the edge u->v (given as opaque entity ids,
// auto-creating their internal indices) to weight w.
func (fw *FloydWarshall[W]) AddEdgeWithMapping(u, v uint64, w W) error {
	ui, err := fw.entities.ensureIndex(u, fw.n)
	if err != nil {
		return err
	}
	vi, err := fw.entities.ensureIndex(v, fw.n)
	if err != nil {
		return err
	}
	return fw.AddEdge(int(ui), int(vi), w)
}

// Generate runs the Floyd-Warshall relaxation:
//
//	for k, i, j: if dist[i][k] and dist[k][j] are both finite,
//	  relax dist[i][j] = min(dist[i][j], dist[i][k]+dist[k][j])
//	  (saturating add; updates next[i][j] = next[i][k] on relax).
func (fw *FloydWarshall[W]) Generate() {
	n := fw.n
	inf := maxValue[W]()
	dist := fw.dist
	next := fw.next
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := dist[i*n+k]
			if dik == inf {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := dist[k*n+j]
				if dkj == inf {
					continue
				}
				newDist := saturatingAdd(dik, dkj)
				if newDist < dist[i*n+j] {
					dist[i*n+j] = newDist
					next[i*n+j] = next[i*n+k]
				}
			}
		}
	}
}

// Deinit releases fw's matrices. Go is garbage-collected, so this is a
// no-op retained only to keep the lifecycle surface symmetric with
// init/resize/clean/generate; callers are never required to call it.
func (fw *FloydWarshall[W]) Deinit() {}

// CrossValidate reports a mismatch between fw and other's dist matrices —
// the two engines must agree on every pairwise distance for the same
// input, per the cross-validation testable property. Returns an error
// describing the first disagreement found, or nil if the matrices match.
func (fw *FloydWarshall[W]) CrossValidate(other *FloydWarshallOptimized[W]) error {
	if fw.n != other.Size() {
		return fmt.Errorf("floydwarshall: cross-validate size mismatch: %d vs %d", fw.n, other.Size())
	}
	for i := 0; i < fw.n; i++ {
		for j := 0; j < fw.n; j++ {
			sd, sOk := fw.Dist(i, j)
			od, oOk := other.Dist(i, j)
			if sOk != oOk {
				return fmt.Errorf("floydwarshall: cross-validate reachability mismatch at (%d,%d): scalar=%v optimized=%v", i, j, sOk, oOk)
			}
			if sOk && sd != od {
				return fmt.Errorf("floydwarshall: cross-validate distance mismatch at (%d,%d): scalar=%v optimized=%v", i, j, sd, od)
			}
		}
	}
	return nil
}

// Dist returns the shortest-path distance from i to j and whether a path
// exists (dist != INF). An index outside [0,n) reports no path.
func (fw *FloydWarshall[W]) Dist(i, j int) (W, bool) {
	inf := maxValue[W]()
	if i < 0 || i >= fw.n || j < 0 || j >= fw.n {
		return inf, false
	}
	d := fw.dist[i*fw.n+j]
	return d, d != inf
}

// Next returns the first-hop index on the shortest path from i to j, and
// whether a path exists.
func (fw *FloydWarshall[W]) Next(i, j int) (int, bool) {
	if _, ok := fw.Dist(i, j); !ok {
		return 0, false
	}
	return int(fw.next[i*fw.n+j]), true
}

// NextWithMapping is Next, translating u's index through the entity
// mapping and translating the resulting next-hop index back to an id via
// the idx->id reverse lookup.
func (fw *FloydWarshall[W]) NextWithMapping(u, v uint64) (uint64, bool) {
	ui, ok := fw.entities.indexOf(u)
	if !ok {
		return 0, false
	}
	vi, ok := fw.entities.indexOf(v)
	if !ok {
		return 0, false
	}
	nextIdx, ok := fw.Next(int(ui), int(vi))
	if !ok {
		return 0, false
	}
	return fw.entities.idOf(uint32(nextIdx))
}

// SetPath appends the sequence of direct indices from u to v (inclusive) to
// buf, following Next. Returns ErrPathNotFound (leaving buf at its original
// length) if no path exists.
func (fw *FloydWarshall[W]) SetPath(buf []int, u, v int) ([]int, error) {
	if _, ok := fw.Dist(u, v); !ok {
		return buf, ErrPathNotFound
	}
	start := len(buf)
	buf = append(buf, u)
	cur := u
	for cur != v {
		hop, ok := fw.Next(cur, v)
		if !ok {
			return buf[:start], ErrPathNotFound
		}
		cur = hop
		buf = append(buf, cur)
	}
	return buf, nil
}

// SetPathWithMapping is SetPath over opaque entity ids. If the next-hop
// reverse lookup ever fails to resolve to an id, buf is truncated back to
// its pre-call length and ErrPathNotFound is returned.
func (fw *FloydWarshall[W]) SetPathWithMapping(buf []uint64, u, v uint64) ([]uint64, error) {
	start := len(buf)
	ui, ok := fw.entities.indexOf(u)
	if !ok {
		return buf, ErrPathNotFound
	}
	vi, ok := fw.entities.indexOf(v)
	if !ok {
		return buf, ErrPathNotFound
	}
	if _, ok := fw.Dist(int(ui), int(vi)); !ok {
		return buf, ErrPathNotFound
	}
	buf = append(buf, u)
	cur := u
	for cur != v {
		nextID, ok := fw.NextWithMapping(cur, v)
		if !ok {
			return buf[:start], ErrPathNotFound
		}
		cur = nextID
		buf = append(buf, cur)
	}
	return buf, nil
}
