package sweepprune_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-spatial/geometry"
	"github.com/katalvlaran/lvlath-spatial/sweepprune"
)

func TestSweepAndPrune_ScenarioC(t *testing.T) {
	sp := sweepprune.New[int]()
	sp.Add(1, geometry.Position{X: 0, Y: 0}, 10, 10)
	sp.Add(2, geometry.Position{X: 5, Y: 5}, 10, 10)
	sp.Add(3, geometry.Position{X: 100, Y: 100}, 10, 10)

	pairs := sp.FindCollisions(nil)
	if len(pairs) != 1 {
		t.Fatalf("FindCollisions returned %d pairs, want 1: %v", len(pairs), pairs)
	}
	got := map[int]bool{pairs[0].A: true, pairs[0].B: true}
	if !got[1] || !got[2] {
		t.Fatalf("expected the colliding pair to be {1,2}, got %v", pairs[0])
	}

	if !sp.UpdatePosition(2, geometry.Position{X: 100, Y: 5}) {
		t.Fatalf("UpdatePosition(2,...) should succeed for a present id")
	}
	pairs = sp.FindCollisions(nil)
	if len(pairs) != 0 {
		t.Fatalf("FindCollisions after separating 1 and 2 returned %d pairs, want 0: %v", len(pairs), pairs)
	}
}

func TestSweepAndPrune_TouchingIsNotCollision(t *testing.T) {
	sp := sweepprune.New[int]()
	sp.Add(1, geometry.Position{X: 0, Y: 0}, 5, 5)
	sp.Add(2, geometry.Position{X: 10, Y: 0}, 5, 5)
	pairs := sp.FindCollisions(nil)
	if len(pairs) != 0 {
		t.Fatalf("touching AABBs must not be reported as colliding, got %v", pairs)
	}
}

func TestSweepAndPrune_RemoveAndQuery(t *testing.T) {
	sp := sweepprune.New[string]()
	sp.Add("a", geometry.Position{X: 0, Y: 0}, 1, 1)
	sp.Add("b", geometry.Position{X: 50, Y: 50}, 1, 1)

	if !sp.Remove("a") {
		t.Fatalf("Remove(\"a\") should succeed")
	}
	if sp.Remove("a") {
		t.Fatalf("Remove(\"a\") a second time should fail")
	}
	if sp.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", sp.Len())
	}

	ids := sp.QueryRect(geometry.Position{X: 50, Y: 50}, 2, 2, nil)
	if len(ids) != 1 || ids[0] != "b" {
		t.Fatalf("QueryRect = %v, want [b]", ids)
	}

	near := sp.QueryRadius(geometry.Position{X: 50, Y: 50}, 1, nil)
	if len(near) != 1 || near[0] != "b" {
		t.Fatalf("QueryRadius = %v, want [b]", near)
	}
}

func TestSweepAndPrune_Each(t *testing.T) {
	sp := sweepprune.New[string]()
	sp.Add("a", geometry.Position{X: 0, Y: 0}, 1, 1)
	sp.Add("b", geometry.Position{X: 10, Y: 10}, 1, 1)

	seen := map[string]bool{}
	for box := range sp.Each() {
		seen[box.ID] = true
	}
	if len(seen) != 2 || !seen["a"] || !seen["b"] {
		t.Fatalf("Each() visited %v, want {a,b}", seen)
	}
}

func TestSweepAndPrune_NoDuplicatePairs(t *testing.T) {
	sp := sweepprune.New[int]()
	for i := 0; i < 5; i++ {
		sp.Add(i, geometry.Position{X: float32(i), Y: 0}, 5, 5)
	}
	pairs := sp.FindCollisions(nil)
	seen := make(map[[2]int]bool)
	for _, p := range pairs {
		key := [2]int{p.A, p.B}
		if seen[key] {
			t.Fatalf("duplicate pair reported: %v", p)
		}
		seen[key] = true
	}
	if len(pairs) == 0 {
		t.Fatalf("expected at least one overlapping pair among densely packed entities")
	}
}
