package engine

import "errors"

// Errors returned by State.Go. All three leave the state byte-for-byte
// unchanged from before the call.
var (
	// ErrUnmovable means the push chain terminated against a wall and
	// could not resolve by entering or eating. The canonical benign
	// rejection.
	ErrUnmovable = errors.New("engine: unmovable")

	// ErrOutOfInfinity means crossing board boundaries revisited a
	// board-box already traversed during this call's exit walk. This
	// engine detects cyclic board references ("infinity") but does
	// not model pushing through them.
	ErrOutOfInfinity = errors.New("engine: out of infinity")

	// ErrStuck means the safety counter (MaxPushIterations) was
	// exceeded without resolution.
	ErrStuck = errors.New("engine: stuck")
)
