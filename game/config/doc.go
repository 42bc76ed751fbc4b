// Package config parses, renders and manages Parabox puzzle maps.
//
// Map Format:
//
// Puzzle maps are .box text files in a maps directory. Each board is
// written as a line holding its numeric id, then its rows, then a blank
// line. Cells are 'p' (player), '.' (empty), '#' (wall), 'b' (box), a
// digit (a reference to the board with that id), '_' (a box target on
// an empty cell) and '=' (the player target on an empty cell). A map
// needs exactly one 'p' and one '='.
//
// Parse turns map text into an engine state and its win condition.
// Render (and RenderDebug, whose output is identical) writes a state
// back in the same grammar without any targets.
//
// Usage:
//
//	manager, err := config.NewManager("maps")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific puzzle
//	puzzle, err := manager.LoadPuzzle("recursive_enter")
//
//	// Get the default puzzle
//	defaultPuzzle := manager.GetDefault()
//
//	// List available puzzles
//	puzzles, err := manager.ListPuzzles()
//
// The Manager also provides SetDefault, RefreshCache and SavePuzzle.
// The default puzzle is "default" when a default.box exists, otherwise
// the first puzzle listed.
//
// Errors:
//
// Loading reports ErrConfigNotFound for an unknown puzzle name,
// ErrInvalidConfig for a map that fails to parse, and Parse itself
// reports ErrInvalidMap.
package config
