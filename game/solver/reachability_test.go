package solver

import (
	"testing"

	"github.com/kbox/parabox/game/engine"
)

func TestBucketIndexSetInsertIsIdempotent(t *testing.T) {
	s := newBucketIndexSet()
	g := engine.GlobalPos{Board: 1, Pos: engine.Vec2{Row: 2, Col: 3}}

	s.insert(g)
	s.insert(g)

	if s.len() != 1 {
		t.Fatalf("len = %d, want 1 after inserting the same value twice", s.len())
	}
	if !s.contains(g) {
		t.Fatalf("expected the set to contain the inserted value")
	}
}

func TestBucketIndexSetClearResetsMembership(t *testing.T) {
	s := newBucketIndexSet()
	g := engine.GlobalPos{Board: 0, Pos: engine.Vec2{Row: 0, Col: 0}}

	s.insert(g)
	s.clear()

	if s.len() != 0 {
		t.Fatalf("len = %d, want 0 after clear", s.len())
	}
	if s.contains(g) {
		t.Fatalf("value should no longer be a member after clear")
	}

	// Re-inserting after clear must work (epoch bumped, not stuck).
	s.insert(g)
	if !s.contains(g) {
		t.Fatalf("expected re-insertion after clear to register")
	}
}

func TestBucketIndexSetSurvivesEpochWraparound(t *testing.T) {
	s := newBucketIndexSet()
	g := engine.GlobalPos{Board: 4, Pos: engine.Vec2{Row: 1, Col: 1}}

	for i := 0; i < 300; i++ {
		s.insert(g)
		if !s.contains(g) {
			t.Fatalf("lost membership on clear cycle %d", i)
		}
		s.clear()
		if s.contains(g) {
			t.Fatalf("stale membership survived clear on cycle %d", i)
		}
	}
}

func TestBucketIndexSetInsertionOrder(t *testing.T) {
	s := newBucketIndexSet()
	positions := []engine.GlobalPos{
		{Board: 0, Pos: engine.Vec2{Row: 0, Col: 0}},
		{Board: 0, Pos: engine.Vec2{Row: 0, Col: 1}},
		{Board: 0, Pos: engine.Vec2{Row: 0, Col: 2}},
	}
	for _, p := range positions {
		s.insert(p)
	}
	for i, want := range positions {
		if got := s.at(i); got != want {
			t.Fatalf("at(%d) = %v, want %v", i, got, want)
		}
	}
}
