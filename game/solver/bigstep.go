package solver

import "github.com/kbox/parabox/game/engine"

// StepObserver is called once per attempted (position, direction)
// probe during big-step expansion, for progress reporting. It must
// not mutate anything the solver owns.
type StepObserver func(g engine.GlobalPos, dir engine.Direction)

// solveBigStep searches over pushing states only: between two pushing
// moves, the exact path walked over empty cells does not change the
// rest of the world, so all positions reachable from a state without
// pushing anything are treated as equivalent (trivial reachability).
//
// On success it returns the trail of pushing states from the initial
// state to a winning one, inclusive, with consecutive duplicates ready
// for small-step bridging. The winning state itself is appended as the
// trail's final vertex regardless of whether the move that reached it
// pushed anything, so the caller can bridge every consecutive pair
// uniformly.
func solveBigStep(initial engine.State, win *engine.WinConfig, onStep StepObserver) ([]engine.State, bool) {
	trail := newStateTrail()
	trail.add(initial, rootParent, 0)

	visited := newBucketIndexSet()

	for bigCursor := 0; bigCursor < trail.len(); bigCursor++ {
		s := trail.at(bigCursor).state

		visited.clear()
		visited.insert(s.Player)

		for smallCursor := 0; smallCursor < visited.len(); smallCursor++ {
			g := visited.at(smallCursor)

			base := s.Clone()
			if g != s.Player {
				if err := base.SetPlayer(g); err != nil {
					continue
				}
			}

			for _, dir := range engine.AllDirections {
				if onStep != nil {
					onStep(g, dir)
				}

				working := base.Clone()
				pushed, err := working.Go(dir)
				if err != nil {
					continue
				}

				if working.IsSuccessOn(win) {
					finalIdx := trail.add(working, bigCursor, 0)
					return trailStates(trail, finalIdx), true
				}

				if !pushed {
					visited.insert(working.Player)
					continue
				}

				if _, exists := trail.indexOf(&working); !exists {
					trail.add(working, bigCursor, 0)
				}
			}
		}
	}

	return nil, false
}

// trailStates walks parents from finalIdx back to the root and returns
// the states in root-to-final order.
func trailStates(t *stateTrail, finalIdx int) []engine.State {
	var reversed []engine.State
	for i := finalIdx; i != rootParent; i = t.entries[i].parent {
		reversed = append(reversed, t.entries[i].state)
	}
	out := make([]engine.State, len(reversed))
	for k, s := range reversed {
		out[len(reversed)-1-k] = s
	}
	return out
}
