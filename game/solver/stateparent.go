package solver

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kbox/parabox/game/engine"
)

// rootParent is the sentinel parent index for a trail's first entry.
const rootParent = -1

// trailEntry is one node in a state_parent trail: the state itself,
// its parent's index, and the direction that was taken to reach it
// from the parent (unused by the big-step trail, which only needs
// ancestry).
type trailEntry struct {
	state  engine.State
	parent int
	dir    engine.Direction
}

// stateTrail is the insertion-ordered state_parent map both BFS layers
// are built on: the order.Get lookup gives O(1) existence-check-and-
// index, and entries gives O(1) lookup-by-insertion-index. Both layers
// need exactly this pair of operations, so one type serves both.
type stateTrail struct {
	order   *orderedmap.OrderedMap[string, int]
	entries []trailEntry
}

func newStateTrail() *stateTrail {
	return &stateTrail{order: orderedmap.New[string, int]()}
}

// indexOf returns the insertion index of s, if already enrolled.
func (t *stateTrail) indexOf(s *engine.State) (int, bool) {
	return t.order.Get(s.Key())
}

// add enrolls s with the given parent index and incoming direction.
// The caller must already have checked s is not present. Returns the
// new entry's index.
func (t *stateTrail) add(s engine.State, parent int, dir engine.Direction) int {
	idx := len(t.entries)
	t.entries = append(t.entries, trailEntry{state: s, parent: parent, dir: dir})
	t.order.Set(s.Key(), idx)
	return idx
}

func (t *stateTrail) at(i int) *trailEntry {
	return &t.entries[i]
}

func (t *stateTrail) len() int {
	return len(t.entries)
}

// path walks parents from index i back to the root (exclusive of the
// root's own incoming direction, which is meaningless) and returns the
// directions in forward order.
func (t *stateTrail) path(i int) []engine.Direction {
	var reversed []engine.Direction
	for i != 0 {
		e := t.entries[i]
		reversed = append(reversed, e.dir)
		i = e.parent
	}
	out := make([]engine.Direction, len(reversed))
	for k, d := range reversed {
		out[len(reversed)-1-k] = d
	}
	return out
}
