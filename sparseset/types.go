package sparseset

import "errors"

// Sentinel errors for sparseset operations.
var (
	// ErrKeyOutOfRange indicates Put was called with a key ≥ max_key.
	ErrKeyOutOfRange = errors.New("sparseset: key out of range")

	// ErrCapacityExceeded indicates the dense arrays would need to grow
	// past 2^32-1 entries.
	ErrCapacityExceeded = errors.New("sparseset: capacity exceeded")
)

// Unsigned constrains the key type K to an unsigned integer usable as a
// dense array index.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

const maxCount = 1<<32 - 1

// noSlot marks an unused sparse slot.
const noSlot = ^uint32(0)
