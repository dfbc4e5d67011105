package zindex_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-spatial/zindex"
)

func TestZIndexBuckets_ScenarioA(t *testing.T) {
	zb := zindex.New[int, uint8](10)
	zb.Insert(100, 5)
	zb.Insert(200, 10)
	zb.Insert(300, 5)

	var order []int
	for item := range zb.Iterator() {
		order = append(order, item)
	}
	if !equalInts(order, []int{100, 300, 200}) {
		t.Fatalf("iteration order = %v, want [100 300 200]", order)
	}
	if zb.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", zb.Len())
	}

	if !zb.Remove(100, 5) {
		t.Fatalf("Remove(100,5) should succeed")
	}
	if zb.Len() != 2 {
		t.Fatalf("Len() after remove = %d, want 2", zb.Len())
	}

	if err := zb.ChangeZIndex(200, 10, 0); err != nil {
		t.Fatalf("ChangeZIndex(200,10,0): %v", err)
	}
	order = order[:0]
	for item := range zb.Iterator() {
		order = append(order, item)
	}
	if !equalInts(order, []int{200, 300}) {
		t.Fatalf("iteration order after ChangeZIndex = %v, want [200 300]", order)
	}
}

func TestZIndexBuckets_ChangeZIndexNotFound(t *testing.T) {
	zb := zindex.New[int, uint8](4)
	zb.Insert(1, 1)
	if err := zb.ChangeZIndex(99, 2, 3); err != zindex.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestZIndexBuckets_ChangeZIndexSameBucketNoop(t *testing.T) {
	zb := zindex.New[int, uint8](4)
	zb.Insert(1, 2)
	if err := zb.ChangeZIndex(1, 2, 2); err != nil {
		t.Fatalf("ChangeZIndex with old==new should succeed, got %v", err)
	}
	if zb.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", zb.Len())
	}
}

func TestZIndexBuckets_Clear(t *testing.T) {
	zb := zindex.New[int, uint8](4)
	zb.Insert(1, 0)
	zb.Insert(2, 3)
	zb.Clear()
	if zb.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", zb.Len())
	}
	count := 0
	for range zb.Iterator() {
		count++
	}
	if count != 0 {
		t.Fatalf("iterator after Clear produced %d items, want 0", count)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
