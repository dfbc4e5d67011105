package zindex

import "iter"

// ZIndexBuckets holds items of type T (compared via Go's native == through
// the comparable constraint, standing in for "user equality if provided,
// else structural") sorted into B = maxZ+1 ordered buckets, maxZ being the
// value given to New.
type ZIndexBuckets[T comparable, Z Unsigned] struct {
	buckets    [][]T
	totalCount int
}

// New allocates a ZIndexBuckets with one bucket per z-index in 0..maxZ.
// maxZ is the largest z-index the caller intends to use (inclusive); the
// bucket count is maxZ+1, not one per possible value of Z.
func New[T comparable, Z Unsigned](maxZ Z) *ZIndexBuckets[T, Z] {
	return &ZIndexBuckets[T, Z]{buckets: make([][]T, uint64(maxZ)+1)}
}

// Len returns the total number of items across all buckets.
func (zb *ZIndexBuckets[T, Z]) Len() int { return zb.totalCount }

// Insert appends item to bucket z. O(1) amortized.
func (zb *ZIndexBuckets[T, Z]) Insert(item T, z Z) {
	zb.buckets[z] = append(zb.buckets[z], item)
	zb.totalCount++
}

// Remove scans bucket z for an item equal to item and removes the first
// match, preserving the order of the remaining items. Returns whether an
// item was removed. O(bucket size).
func (zb *ZIndexBuckets[T, Z]) Remove(item T, z Z) bool {
	bucket := zb.buckets[z]
	for i, v := range bucket {
		if v == item {
			last := len(bucket) - 1
			copy(bucket[i:], bucket[i+1:])
			var zero T
			bucket[last] = zero
			zb.buckets[z] = bucket[:last]
			zb.totalCount--
			return true
		}
	}
	return false
}

// ChangeZIndex moves item from bucket oldZ to bucket newZ.
//
// Transactional: presence at oldZ is verified without mutation first; item
// is appended to newZ before it is removed from oldZ, so a failure leaves
// the structure unchanged. If oldZ == newZ, this is a no-op (and succeeds
// as long as item is present). Fails with ErrItemNotFound if item is not in
// bucket oldZ.
func (zb *ZIndexBuckets[T, Z]) ChangeZIndex(item T, oldZ, newZ Z) error {
	if !zb.contains(item, oldZ) {
		return ErrItemNotFound
	}
	if oldZ == newZ {
		return nil
	}
	zb.buckets[newZ] = append(zb.buckets[newZ], item)
	zb.swapRemove(item, oldZ)
	return nil
}

func (zb *ZIndexBuckets[T, Z]) contains(item T, z Z) bool {
	for _, v := range zb.buckets[z] {
		if v == item {
			return true
		}
	}
	return false
}

// swapRemove removes the first occurrence of item from bucket z via
// swap-with-last; it assumes the caller already verified presence.
func (zb *ZIndexBuckets[T, Z]) swapRemove(item T, z Z) {
	bucket := zb.buckets[z]
	for i, v := range bucket {
		if v == item {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			var zero T
			bucket[last] = zero
			zb.buckets[z] = bucket[:last]
			return
		}
	}
}

// Iterator yields every item from bucket 0 through the last bucket, in
// append order within each bucket; empty buckets are skipped implicitly.
func (zb *ZIndexBuckets[T, Z]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, bucket := range zb.buckets {
			for _, item := range bucket {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Clear empties every bucket and zeroes the total count. O(B).
func (zb *ZIndexBuckets[T, Z]) Clear() {
	for i := range zb.buckets {
		zb.buckets[i] = zb.buckets[i][:0]
	}
	zb.totalCount = 0
}
