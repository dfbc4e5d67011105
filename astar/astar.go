package astar

import (
	"container/heap"

	"github.com/katalvlaran/lvlath-spatial/geometry"
	"github.com/katalvlaran/lvlath-spatial/sparseset"
)

type edge[W Unsigned] struct {
	to     int32
	weight W
}

// AStar is a heuristic single-source shortest-path engine over n nodes
// addressed by small integer indices, with an entity-mapped façade over
// opaque uint64 ids layered on top via entityMap.
type AStar[W Unsigned] struct {
	n         int
	adjacency [][]edge[W]
	positions *sparseset.SparseSet[uint32, geometry.Position]

	heuristicTag Heuristic
	customFn     HeuristicFn

	entities *entityMap

	// scratch arrays reused across FindPath calls to avoid reallocation.
	gScore   []W
	cameFrom []uint32
	closed   []bool
}

// New allocates an AStar sized for n nodes, defaulting to the Euclidean
// heuristic.
func New[W Unsigned](n int) *AStar[W] {
	a := &AStar[W]{
		n:            n,
		adjacency:    make([][]edge[W], n),
		positions:    sparseset.Init[uint32, geometry.Position](uint64(n), n),
		heuristicTag: Euclidean,
		entities:     newEntityMap(n),
		gScore:       make([]W, n),
		cameFrom:     make([]uint32, n),
		closed:       make([]bool, n),
	}
	return a
}

// Reset clears all edges, positions, and entity mappings, leaving the
// engine sized for the same n and ready to describe a fresh graph.
func (a *AStar[W]) Reset() {
	for i := range a.adjacency {
		a.adjacency[i] = a.adjacency[i][:0]
	}
	a.positions.Clear()
	a.entities.reset()
	a.heuristicTag = Euclidean
	a.customFn = nil
}

// SetHeuristic selects one of the built-in heuristic tags, clearing any
// custom function previously installed.
func (a *AStar[W]) SetHeuristic(tag Heuristic) {
	a.heuristicTag = tag
	a.customFn = nil
}

// SetCustomHeuristic installs a caller-supplied heuristic, overriding the
// tag selector until the next SetHeuristic call.
func (a *AStar[W]) SetCustomHeuristic(fn HeuristicFn) {
	a.customFn = fn
}

func (a *AStar[W]) heuristic(u, v int) float32 {
	pu, okU := a.positions.Get(uint32(u))
	pv, okV := a.positions.Get(uint32(v))
	if !okU || !okV {
		return 0
	}
	if a.customFn != nil {
		return a.customFn(pu, pv)
	}
	return evalHeuristic(a.heuristicTag, pu, pv)
}

// Heuristic returns the estimated cost from node u to node v under the
// currently selected tag or custom function — the same value FindPath
// consults internally. Exposed for introspection and testing; nodes without
// a recorded position estimate 0.
func (a *AStar[W]) Heuristic(u, v int) float32 {
	return a.heuristic(u, v)
}

// SetPosition records the world position of node idx, used by the
// built-in heuristics. Out-of-range idx is a silent no-op, matching the
// direct-index edge API's contract.
func (a *AStar[W]) SetPosition(idx int, pos geometry.Position) {
	if idx < 0 || idx >= a.n {
		return
	}
	_ = a.positions.Put(uint32(idx), pos)
}

// SetPositionWithMapping is SetPosition over an opaque entity id,
// auto-creating its internal index.
func (a *AStar[W]) SetPositionWithMapping(id uint64, pos geometry.Position) error {
	idx, err := a.entities.ensureIndex(id, a.n)
	if err != nil {
		return err
	}
	return a.positions.Put(idx, pos)
}

// AddEdge adds a directed edge u->v with weight w at the direct-index
// API. Out-of-range u or v is a silent no-op, per this engine's documented
// contract for the direct-index surface.
func (a *AStar[W]) AddEdge(u, v int, w W) {
	if u < 0 || u >= a.n || v < 0 || v >= a.n {
		return
	}
	a.adjacency[u] = append(a.adjacency[u], edge[W]{to: int32(v), weight: w})
}

// AddEdgeWithMapping adds a directed edge u->v (given as opaque entity
// ids, auto-creating their internal indices) with weight w. Unlike
// AddEdge, out-of-range capacity is reported as an error rather than
// silently dropped, since the entity-mapped API owns index allocation.
func (a *AStar[W]) AddEdgeWithMapping(u, v uint64, w W) error {
	ui, err := a.entities.ensureIndex(u, a.n)
	if err != nil {
		return err
	}
	vi, err := a.entities.ensureIndex(v, a.n)
	if err != nil {
		return err
	}
	a.AddEdge(int(ui), int(vi), w)
	return nil
}

// pqItem is a node queued for expansion, ordered by f = g + h ascending.
// FindPath uses the lazy-decrease-key pattern: a cheaper route to an
// already-queued node is pushed as a new item rather than updating the
// old one in place, and the stale entry is discarded on pop via closed[].
type pqItem struct {
	node int32
	f    float32
}

type nodePQ []pqItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// FindPath runs A* from source to dest, appending the resulting node
// sequence (inclusive of both endpoints) to outPath. Returns the path
// cost and true, or false with outPath unchanged if no path exists or
// source or dest is outside [0,n).
func (a *AStar[W]) FindPath(source, dest int, outPath []int) ([]int, W, bool) {
	var zero W
	if source < 0 || source >= a.n || dest < 0 || dest >= a.n {
		return outPath, zero, false
	}
	if source == dest {
		return append(outPath, source), zero, true
	}

	inf := maxValue[W]()
	for i := 0; i < a.n; i++ {
		a.gScore[i] = inf
		a.cameFrom[i] = NoParent
		a.closed[i] = false
	}
	a.gScore[source] = 0

	open := make(nodePQ, 0, 16)
	heap.Push(&open, pqItem{node: int32(source), f: a.heuristic(source, dest)})

	for open.Len() > 0 {
		top := heap.Pop(&open).(pqItem)
		u := int(top.node)
		if u == dest {
			return a.reconstruct(outPath, source, dest), a.gScore[dest], true
		}
		if a.closed[u] {
			continue
		}
		a.closed[u] = true

		for _, e := range a.adjacency[u] {
			v := int(e.to)
			if a.closed[v] {
				continue
			}
			tentative := saturatingAdd(a.gScore[u], e.weight)
			if tentative < a.gScore[v] {
				a.cameFrom[v] = uint32(u)
				a.gScore[v] = tentative
				f := float32(tentative) + a.heuristic(v, dest)
				heap.Push(&open, pqItem{node: int32(v), f: f})
			}
		}
	}
	return outPath, zero, false
}

func (a *AStar[W]) reconstruct(outPath []int, source, dest int) []int {
	start := len(outPath)
	cur := dest
	for {
		outPath = append(outPath, cur)
		if cur == source {
			break
		}
		parent := a.cameFrom[cur]
		if parent == NoParent {
			break
		}
		cur = int(parent)
	}
	reverseFrom(outPath, start)
	return outPath
}

func reverseFrom(s []int, start int) {
	i, j := start, len(s)-1
	for i < j {
		s[i], s[j] = s[j], s[i]
		i++
		j--
	}
}

// FindPathWithMapping is FindPath over opaque entity ids, translating
// source/dest through the bijection and the resulting index path back to
// ids. Unknown ids are treated as "no path".
func (a *AStar[W]) FindPathWithMapping(source, dest uint64, outPath []uint64) ([]uint64, W, bool) {
	var zero W
	si, ok := a.entities.indexOf(source)
	if !ok {
		return outPath, zero, false
	}
	di, ok := a.entities.indexOf(dest)
	if !ok {
		return outPath, zero, false
	}

	idxPath, cost, found := a.FindPath(int(si), int(di), nil)
	if !found {
		return outPath, zero, false
	}
	for _, idx := range idxPath {
		id, ok := a.entities.idOf(uint32(idx))
		if !ok {
			return outPath, zero, false
		}
		outPath = append(outPath, id)
	}
	return outPath, cost, true
}
