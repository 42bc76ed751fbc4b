// Package engine implements the push-resolution semantics of a single
// directional move over a graph of recursively nested boards, along
// with the state and board types that semantics operates on.
//
// The hard algorithm lives in Go (the push engine): pushing a box-like
// cell into another board enters it, pushing a chain into a wall may
// make the blocked piece reverse into the board-box behind it in the
// chain (it is "eaten"), and boards may reference
// each other cyclically ("infinity"), which the engine detects and
// rejects rather than modeling.
package engine
