// Command validate provides a small CLI that validates puzzle map files in
// the ../maps directory. It checks:
//   - Map grammar (board ids, grid consistency, a single player and player
//     target, board references within range)
//   - Box/target balance: the number of pushable boxes matches the number
//     of box targets
//   - Solvability: whether the built-in solver can find a winning push
//     sequence from the initial state
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbox/parabox/game/config"
	"github.com/kbox/parabox/game/engine"
	"github.com/kbox/parabox/game/solver"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateMap loads and validates a single puzzle map file. It performs
// grammar validation (via config.Parse), box/target balance, and a
// solvability check.
func validateMap(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	state, win, err := config.Parse(string(data))
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid map: %v", err))
		return result
	}

	boxCount := countBoxes(state)
	targetCount := len(win.BoxTargets)
	if boxCount != targetCount {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Box/target mismatch: %d box(es) but %d box target(s)", boxCount, targetCount))
	}

	if result.Valid {
		solvabilityResult := validateSolvability(*state, win)
		if !solvabilityResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, solvabilityResult.Errors...)
		} else {
			result.Errors = append(result.Errors, solvabilityResult.Errors...)
		}
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Boards: %d", len(state.Boards)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Boxes: %d", boxCount))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Box targets: %d", targetCount))
	}

	return result
}

// countBoxes counts box cells (including nested board-boxes) across every
// board; the player's own cell is stored as CellBox too but is excluded
// since it isn't one of the pushable boxes tracked by BoxTargets.
func countBoxes(state *engine.State) int {
	count := 0
	for bi := range state.Boards {
		for _, bc := range state.Boards[bi].Cells() {
			if !bc.Cell.Kind.IsBoxLike() {
				continue
			}
			gpos := engine.GlobalPos{Board: engine.BoardID(bi), Pos: bc.Pos}
			if gpos == state.Player {
				continue
			}
			count++
		}
	}
	return count
}

// validateSolvability asks the built-in solver to find a winning push
// sequence from the map's initial state. A puzzle with box/target counts
// that check out but an empty search space (no reachable win) is reported
// as invalid; this mirrors the intent of checking that every target is
// actually achievable, generalized from a flood-fill reachability test to
// an authoritative call into the real solver, since recursive board
// references make hand-rolled reachability unreliable here.
func validateSolvability(initial engine.State, win *engine.WinConfig) ValidationResult {
	result := ValidationResult{Valid: true, Errors: []string{}}

	res, err := solver.Solve(initial, win, nil)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Solver error: %v", err))
		return result
	}

	if !res.Solved {
		result.Valid = false
		result.Errors = append(result.Errors, "Solvability failure: no winning push sequence found")
		return result
	}

	result.Errors = append(result.Errors, fmt.Sprintf(
		"✓ Solvability: solvable in %d move(s)", len(res.Directions)))
	return result
}

// main scans ../maps for *.box files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	mapsDir := "../maps"
	files, err := filepath.Glob(filepath.Join(mapsDir, "*.box"))
	if err != nil {
		fmt.Printf("Error finding map files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateMap(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All maps are valid!")
	} else {
		fmt.Println("❌ Some maps have errors")
		os.Exit(1)
	}
}
