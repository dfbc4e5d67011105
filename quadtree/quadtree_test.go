package quadtree_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-spatial/geometry"
	"github.com/katalvlaran/lvlath-spatial/quadtree"
)

func TestQuadTree_ScenarioG(t *testing.T) {
	qt := quadtree.Init[int](geometry.Rectangle{X: 0, Y: 0, Width: 100, Height: 100})

	id := 0
	for gx := 0; gx < 10; gx++ {
		for gy := 0; gy < 2; gy++ {
			p := geometry.Position{X: float32(gx * 10), Y: float32(gy * 10)}
			if !qt.Insert(id, p) {
				t.Fatalf("Insert(%d, %v) should succeed within root bounds", id, p)
			}
			id++
		}
	}
	if qt.Count() != 20 {
		t.Fatalf("Count() = %d, want 20", qt.Count())
	}

	matches := qt.QueryRect(geometry.Rectangle{X: 0, Y: 0, Width: 50, Height: 50}, nil)
	for _, m := range matches {
		if !(m.Pos.X < 50 && m.Pos.Y < 50) {
			t.Fatalf("QueryRect returned out-of-range point %v", m.Pos)
		}
	}
	wantCount := 0
	for gx := 0; gx < 10; gx++ {
		for gy := 0; gy < 2; gy++ {
			if float32(gx*10) < 50 && float32(gy*10) < 50 {
				wantCount++
			}
		}
	}
	if len(matches) != wantCount {
		t.Fatalf("QueryRect returned %d points, want %d", len(matches), wantCount)
	}

	nearest, ok := qt.QueryNearest(geometry.Position{X: 12, Y: 12}, 100)
	if !ok {
		t.Fatalf("QueryNearest should find a point")
	}
	if nearest.Pos.X != 10 || nearest.Pos.Y != 10 {
		t.Fatalf("QueryNearest((12,12)) = %v, want (10,10)", nearest.Pos)
	}
}

func TestQuadTree_RejectsOutOfBounds(t *testing.T) {
	qt := quadtree.Init[int](geometry.Rectangle{X: 0, Y: 0, Width: 10, Height: 10})
	if qt.Insert(1, geometry.Position{X: 100, Y: 100}) {
		t.Fatalf("Insert outside root bounds should fail")
	}
	if qt.Count() != 0 {
		t.Fatalf("Count() = %d after rejected insert, want 0", qt.Count())
	}
}

func TestQuadTree_UpdateRoundTrip(t *testing.T) {
	qt := quadtree.Init[string](geometry.Rectangle{X: 0, Y: 0, Width: 100, Height: 100})
	qt.Insert("a", geometry.Position{X: 1, Y: 1})
	if !qt.Update("a", geometry.Position{X: 90, Y: 90}) {
		t.Fatalf("Update of a present id should succeed")
	}
	if qt.Count() != 1 {
		t.Fatalf("Count() = %d after Update, want 1", qt.Count())
	}
	near, ok := qt.QueryNearest(geometry.Position{X: 90, Y: 90}, 5)
	if !ok || near.ID != "a" {
		t.Fatalf("expected to find \"a\" near its new position, got %v %v", near, ok)
	}
}

func TestQuadTree_UpdateAbsentFails(t *testing.T) {
	qt := quadtree.Init[string](geometry.Rectangle{X: 0, Y: 0, Width: 10, Height: 10})
	if qt.Update("missing", geometry.Position{X: 1, Y: 1}) {
		t.Fatalf("Update of an absent id should fail")
	}
}

func TestQuadTree_HasPointInRect(t *testing.T) {
	qt := quadtree.Init[int](geometry.Rectangle{X: 0, Y: 0, Width: 100, Height: 100})
	qt.Insert(1, geometry.Position{X: 5, Y: 5})
	if !qt.HasPointInRect(geometry.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}) {
		t.Fatalf("HasPointInRect should find the inserted point")
	}
	if qt.HasPointInRect(geometry.Rectangle{X: 50, Y: 50, Width: 10, Height: 10}) {
		t.Fatalf("HasPointInRect should not find a point outside the query rect")
	}
}

func TestQuadTree_Each(t *testing.T) {
	qt := quadtree.Init[int](geometry.Rectangle{X: 0, Y: 0, Width: 100, Height: 100})
	for i := 0; i < 5; i++ {
		qt.Insert(i, geometry.Position{X: float32(i), Y: float32(i)})
	}
	seen := map[int]bool{}
	for p := range qt.Each() {
		seen[p.ID] = true
	}
	if len(seen) != 5 {
		t.Fatalf("Each() visited %d distinct ids, want 5", len(seen))
	}
}

func TestQuadTree_Subdivision(t *testing.T) {
	qt := quadtree.Init[int](geometry.Rectangle{X: 0, Y: 0, Width: 100, Height: 100})
	for i := 0; i < 10; i++ {
		qt.Insert(i, geometry.Position{X: float32(i), Y: float32(i)})
	}
	if qt.Count() != 10 {
		t.Fatalf("Count() = %d, want 10 after inserting past inline capacity", qt.Count())
	}
}
