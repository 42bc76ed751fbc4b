package solver

import (
	"fmt"

	"github.com/kbox/parabox/game/engine"
)

// Result is the outcome of a solve attempt.
type Result struct {
	// Directions is the full move sequence from the initial state to a
	// winning one. Empty (but non-nil via Solved) if the puzzle is
	// already won.
	Directions []engine.Direction
	Solved     bool
}

// Solve runs the big-step BFS to find a trail of pushing states ending
// in a win, then bridges each consecutive pair with the small-step BFS
// to recover the exact player-only moves between them. The
// concatenation of bridges is the full solution.
//
// onStep, if non-nil, is invoked once per attempted (position,
// direction) probe during big-step expansion; it is meant for
// progress counters and must not retain or mutate anything it is
// given.
func Solve(initial engine.State, win *engine.WinConfig, onStep StepObserver) (Result, error) {
	if initial.IsSuccessOn(win) {
		return Result{Directions: []engine.Direction{}, Solved: true}, nil
	}

	trail, found := solveBigStep(initial, win, onStep)
	if !found {
		return Result{Solved: false}, nil
	}

	var directions []engine.Direction
	for i := 0; i+1 < len(trail); i++ {
		bridge, ok := solveSmallStep(trail[i], trail[i+1])
		if !ok {
			// The big-step trail's correctness rationale guarantees
			// every consecutive pair is reachable by player-only
			// moves plus one final move (a push, except possibly
			// for the winning move); reaching here means that
			// invariant was violated somewhere upstream.
			return Result{}, fmt.Errorf("solver: could not bridge big-step states %d and %d", i, i+1)
		}
		directions = append(directions, bridge...)
	}

	return Result{Directions: directions, Solved: true}, nil
}
