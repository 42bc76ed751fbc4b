package solver

import "github.com/kbox/parabox/game/engine"

// reachSetSize matches GlobalPos's dense index range: MaxBoards *
// MaxDim * MaxDim.
const reachSetSize = engine.MaxBoards * engine.MaxDim * engine.MaxDim

// bucketIndexSet is a fixed-capacity set over values with a dense
// index, supporting O(1) insert and O(1) clear via an epoch byte
// rather than re-zeroing the whole backing array on every clear.
type bucketIndexSet struct {
	members []engine.GlobalPos
	marks   [reachSetSize]byte
	epoch   byte
}

// newBucketIndexSet returns an empty set, ready to use.
func newBucketIndexSet() *bucketIndexSet {
	return &bucketIndexSet{epoch: 1}
}

// insert adds v to the set if not already present.
func (s *bucketIndexSet) insert(v engine.GlobalPos) {
	i := v.Index()
	if s.marks[i] == s.epoch {
		return
	}
	s.marks[i] = s.epoch
	s.members = append(s.members, v)
}

// contains reports whether v was inserted since the last clear.
func (s *bucketIndexSet) contains(v engine.GlobalPos) bool {
	return s.marks[v.Index()] == s.epoch
}

// len reports how many distinct values have been inserted since the
// last clear.
func (s *bucketIndexSet) len() int {
	return len(s.members)
}

// at returns the value at insertion index i, for cursor-style
// traversal while insert is still being called (members grows under
// the caller's feet, same as an insertion-ordered map).
func (s *bucketIndexSet) at(i int) engine.GlobalPos {
	return s.members[i]
}

// clear empties the set in O(1), bumping the epoch so stale marks read
// as absent. A full zeroing of marks is only needed when epoch wraps
// back to 0; it is performed eagerly here rather than deferred, since
// the wrap is rare (every 255 clears) and the cost is the same either
// way.
func (s *bucketIndexSet) clear() {
	s.members = s.members[:0]
	s.epoch++
	if s.epoch == 0 {
		s.marks = [reachSetSize]byte{}
		s.epoch = 1
	}
}
