package sparseset

// SparseSet maps keys K (an unsigned integer in [0, max_key)) to values V
// with O(1) Put/Get/Contains/Remove and dense, insertion/removal-order
// iteration over the live entries.
//
// Invariant: for every live key k, sparse[k] == i and dense_keys[i] == k,
// where i < count. The first `count` entries of the dense arrays are live;
// everything past that is leftover capacity.
type SparseSet[K Unsigned, V any] struct {
	maxKey      uint64
	sparse      []uint32 // indexed by key; noSlot means absent
	denseKeys   []K
	denseValues []V
	count       uint32
}

// Init allocates a SparseSet for keys in [0, maxKey) with initialCapacity
// reserved in the dense arrays.
func Init[K Unsigned, V any](maxKey uint64, initialCapacity int) *SparseSet[K, V] {
	sparse := make([]uint32, maxKey)
	for i := range sparse {
		sparse[i] = noSlot
	}
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &SparseSet[K, V]{
		maxKey:      maxKey,
		sparse:      sparse,
		denseKeys:   make([]K, 0, initialCapacity),
		denseValues: make([]V, 0, initialCapacity),
	}
}

// Len returns the number of live entries.
func (s *SparseSet[K, V]) Len() int { return int(s.count) }

// Cap returns the current dense-array capacity.
func (s *SparseSet[K, V]) Cap() int { return cap(s.denseKeys) }

// Contains reports whether k is a live key.
func (s *SparseSet[K, V]) Contains(k K) bool {
	idx, ok := s.slotOf(k)
	return ok && idx < s.count
}

// Get returns the value stored at k and whether k was present.
func (s *SparseSet[K, V]) Get(k K) (V, bool) {
	idx, ok := s.slotOf(k)
	if !ok || idx >= s.count {
		var zero V
		return zero, false
	}
	return s.denseValues[idx], true
}

// GetPtr returns a pointer into the dense value array for k, or nil if
// absent. The pointer is valid only until the next mutating call.
func (s *SparseSet[K, V]) GetPtr(k K) *V {
	idx, ok := s.slotOf(k)
	if !ok || idx >= s.count {
		return nil
	}
	return &s.denseValues[idx]
}

// slotOf returns the dense index for k and whether the lookup was in range.
// It does not itself guarantee the slot is live — callers must additionally
// check idx < s.count.
func (s *SparseSet[K, V]) slotOf(k K) (uint32, bool) {
	if uint64(k) >= s.maxKey {
		return 0, false
	}
	idx := s.sparse[k]
	if idx == noSlot {
		return 0, false
	}
	return idx, true
}

// Put inserts or updates the value stored at k.
//
// Fails with ErrKeyOutOfRange if k ≥ max_key, and with ErrCapacityExceeded
// (leaving the set unchanged) if inserting a new key would take count past
// 2^32-1. Growing the dense arrays allocates new arrays and copies into them
// before the old arrays are dropped.
func (s *SparseSet[K, V]) Put(k K, v V) error {
	if uint64(k) >= s.maxKey {
		return ErrKeyOutOfRange
	}
	idx := s.sparse[k]
	if idx != noSlot && idx < s.count {
		s.denseValues[idx] = v
		return nil
	}
	if s.count == maxCount {
		return ErrCapacityExceeded
	}
	if len(s.denseKeys) == cap(s.denseKeys) {
		if err := s.grow(); err != nil {
			return err
		}
	}
	newIdx := s.count
	s.denseKeys = append(s.denseKeys, k)
	s.denseValues = append(s.denseValues, v)
	s.sparse[k] = newIdx
	s.count++
	return nil
}

// grow doubles the dense array capacity (at least 1), allocating the new
// backing arrays and copying the live prefix into them before discarding the
// old ones, so that an out-of-memory condition during allocation leaves the
// SparseSet's existing arrays untouched.
func (s *SparseSet[K, V]) grow() error {
	newCap := cap(s.denseKeys) * 2
	if newCap == 0 {
		newCap = 1
	}
	if uint64(newCap) > maxCount {
		newCap = maxCount
	}
	newKeys := make([]K, len(s.denseKeys), newCap)
	newValues := make([]V, len(s.denseValues), newCap)
	copy(newKeys, s.denseKeys)
	copy(newValues, s.denseValues)
	s.denseKeys = newKeys
	s.denseValues = newValues
	return nil
}

// Remove deletes k, if present, via swap-with-last: the last live entry
// takes k's former dense slot so the live prefix stays contiguous. Returns
// whether k was removed.
func (s *SparseSet[K, V]) Remove(k K) bool {
	idx, ok := s.slotOf(k)
	if !ok || idx >= s.count {
		return false
	}
	lastIdx := s.count - 1
	if idx != lastIdx {
		lastKey := s.denseKeys[lastIdx]
		s.denseKeys[idx] = lastKey
		s.denseValues[idx] = s.denseValues[lastIdx]
		s.sparse[lastKey] = idx
	}
	var zeroK K
	var zeroV V
	s.denseKeys[lastIdx] = zeroK
	s.denseValues[lastIdx] = zeroV
	s.sparse[k] = noSlot
	s.count--
	return true
}

// Keys returns the dense, live-prefix slice of keys. The returned slice
// aliases internal storage and is only stable until the next mutation.
func (s *SparseSet[K, V]) Keys() []K {
	return s.denseKeys[:s.count]
}

// Values returns the dense, live-prefix slice of values. The returned slice
// aliases internal storage and is only stable until the next mutation.
func (s *SparseSet[K, V]) Values() []V {
	return s.denseValues[:s.count]
}

// Clear removes every live entry in O(count), resetting only the sparse
// slots that were actually in use — slots that were never touched are left
// alone.
func (s *SparseSet[K, V]) Clear() {
	for i := uint32(0); i < s.count; i++ {
		s.sparse[s.denseKeys[i]] = noSlot
	}
	s.denseKeys = s.denseKeys[:0]
	s.denseValues = s.denseValues[:0]
	s.count = 0
}
