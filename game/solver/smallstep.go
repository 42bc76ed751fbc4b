package solver

import "github.com/kbox/parabox/game/engine"

// solveSmallStep reconstructs a shortest sequence of directions — any
// number of non-pushing moves followed by one final move, which is a
// push except possibly for the move that reaches a winning state —
// that carries the player from one big-step vertex to the next. The
// big-step trail guarantees to is reachable from from this way, so
// this BFS is guaranteed to terminate with success; it is a logic
// error (not a puzzle failure) if it doesn't.
func solveSmallStep(from, to engine.State) ([]engine.Direction, bool) {
	if from.Equal(&to) {
		return []engine.Direction{}, true
	}

	trail := newStateTrail()
	trail.add(from, rootParent, 0)

	queue := []int{0}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		cur := trail.at(idx).state

		for _, dir := range engine.AllDirections {
			working := cur.Clone()
			pushed, err := working.Go(dir)
			if err != nil {
				continue
			}

			if working.Equal(&to) {
				return append(trail.path(idx), dir), true
			}

			if !pushed {
				if _, exists := trail.indexOf(&working); !exists {
					newIdx := trail.add(working, idx, dir)
					queue = append(queue, newIdx)
				}
			}
		}
	}

	return nil, false
}
