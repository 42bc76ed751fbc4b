// Package solver implements the two-phase BFS that finds a winning
// direction sequence for a puzzle: big-step search over pushing moves
// only, bridged by small-step search for the player-only moves between
// each consecutive pair of pushing states.
package solver
