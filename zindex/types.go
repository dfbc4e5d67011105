package zindex

import "errors"

// ErrItemNotFound indicates ChangeZIndex was called for an item that is not
// present in the bucket named by old_z.
var ErrItemNotFound = errors.New("zindex: item not found at the given z-index")

// Unsigned constrains the z-index type Z to an unsigned integer small
// enough to use as a bucket count.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
