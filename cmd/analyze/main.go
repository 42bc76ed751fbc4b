// Command analyze prints quick, human-readable heuristics about puzzle map
// files in the project's maps directory. It summarizes board count and
// dimensions, box and target counts, and flags board-reference cycles (a
// static signature of an OutOfInfinity map).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kbox/parabox/game/config"
	"github.com/kbox/parabox/game/engine"
)

// BoardStats summarizes one board within a puzzle.
type BoardStats struct {
	ID        int
	Height    int
	Width     int
	Boxes     int
	Walls     int
	BoardRefs []int // board IDs referenced from this board
}

func main() {
	files, err := filepath.Glob(filepath.Join("maps", "*.box"))
	if err == nil && len(files) == 0 {
		files, err = filepath.Glob(filepath.Join("..", "maps", "*.box"))
	}
	if err != nil {
		fmt.Printf("Error finding map files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("No .box map files found")
		return
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeMap(file)
	}
}

func analyzeMap(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	state, win, err := config.Parse(string(data))
	if err != nil {
		fmt.Printf("Error parsing map: %v\n", err)
		return
	}

	fmt.Printf("Boards: %d\n", len(state.Boards))
	fmt.Printf("Player: %s\n", state.Player)
	fmt.Printf("Player target: %s\n", win.PlayerTarget)
	fmt.Printf("Box targets: %d\n", len(win.BoxTargets))

	stats, totalBoxes := collectBoardStats(state)

	for _, s := range stats {
		fmt.Printf("  Board %d: %dx%d, boxes=%d walls=%d", s.ID, s.Height, s.Width, s.Boxes, s.Walls)
		if len(s.BoardRefs) > 0 {
			fmt.Printf(" refs=%v", s.BoardRefs)
		}
		fmt.Println()
	}
	fmt.Printf("Total pushable boxes: %d\n", totalBoxes)

	if totalBoxes != len(win.BoxTargets) {
		fmt.Printf("⚠️  WARNING: box count (%d) does not match target count (%d)\n", totalBoxes, len(win.BoxTargets))
	}

	if cycle, ok := findRefCycle(stats); ok {
		fmt.Printf("⚠️  WARNING: board reference cycle detected: %v\n", cycle)
	} else {
		fmt.Println("✅ No board-reference cycle detected")
	}
}

func collectBoardStats(state *engine.State) ([]BoardStats, int) {
	stats := make([]BoardStats, len(state.Boards))
	total := 0
	for bi := range state.Boards {
		b := &state.Boards[bi]
		s := BoardStats{ID: bi, Height: int(b.Height), Width: int(b.Width)}
		for _, bc := range b.Cells() {
			switch bc.Cell.Kind {
			case engine.CellWall:
				s.Walls++
			case engine.CellBox:
				gpos := engine.GlobalPos{Board: engine.BoardID(bi), Pos: bc.Pos}
				if gpos != state.Player {
					s.Boxes++
				}
			case engine.CellBoardRef:
				s.BoardRefs = append(s.BoardRefs, int(bc.Cell.Board))
			}
		}
		total += s.Boxes
		stats[bi] = s
	}
	return stats, total
}

// findRefCycle walks the board-reference graph (board -> boards it
// contains) looking for a cycle. A cycle means some board ultimately
// contains itself, the static signature of a reference graph that
// produces ErrOutOfInfinity during an exit walk.
func findRefCycle(stats []BoardStats) ([]int, bool) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make([]int, len(stats))
	var path []int

	var visit func(id int) ([]int, bool)
	visit = func(id int) ([]int, bool) {
		color[id] = gray
		path = append(path, id)
		for _, ref := range stats[id].BoardRefs {
			if color[ref] == gray {
				return append(append([]int{}, path...), ref), true
			}
			if color[ref] == white {
				if cyc, found := visit(ref); found {
					return cyc, true
				}
			}
		}
		path = path[:len(path)-1]
		color[id] = black
		return nil, false
	}

	for id := range stats {
		if color[id] == white {
			if cyc, found := visit(id); found {
				return cyc, true
			}
		}
	}
	return nil, false
}
