package astar

import "github.com/katalvlaran/lvlath-spatial/sparseset"

// entityMap is the id<->internal-index bijection for the entity-mapped
// façade. ids are arbitrary, sparse uint64 values, so the id->index
// direction is a plain Go map; the index->id direction is bounded by n and
// fits a SparseSet.
type entityMap struct {
	idToIdx map[uint64]uint32
	idxToID *sparseset.SparseSet[uint32, uint64]
	nextIdx uint32
}

func newEntityMap(n int) *entityMap {
	return &entityMap{
		idToIdx: make(map[uint64]uint32, n),
		idxToID: sparseset.Init[uint32, uint64](uint64(n), n),
		nextIdx: 0,
	}
}

func (m *entityMap) indexOf(id uint64) (uint32, bool) {
	idx, ok := m.idToIdx[id]
	return idx, ok
}

func (m *entityMap) idOf(idx uint32) (uint64, bool) {
	return m.idxToID.Get(idx)
}

// ensureIndex returns the internal index for id, allocating the next free
// index and recording both directions of the bijection if id is new.
func (m *entityMap) ensureIndex(id uint64, n int) (uint32, error) {
	if idx, ok := m.idToIdx[id]; ok {
		return idx, nil
	}
	if int(m.nextIdx) >= n {
		return 0, ErrIndexOutOfRange
	}
	idx := m.nextIdx
	m.nextIdx++
	if err := m.idxToID.Put(idx, id); err != nil {
		return 0, err
	}
	m.idToIdx[id] = idx
	return idx, nil
}

func (m *entityMap) reset() {
	clear(m.idToIdx)
	m.idxToID.Clear()
	m.nextIdx = 0
}
