package config

import (
	"fmt"
	"strings"

	"github.com/kbox/parabox/game/engine"
)

// ErrInvalidMap is the error kind wrapped by every parse failure: the
// spec calls this "invalid input", aborting the caller rather than
// attempting partial recovery.
var ErrInvalidMap = fmt.Errorf("config: invalid map")

// Parse reads a map file's text into a playable state and its win
// condition. The grammar is line-oriented, grouped by board: each
// block starts with a line holding its decimal id (contiguous from 0),
// followed by one or more equal-length grid rows, terminated by a
// blank line (or end of input for the final board). Leading/trailing
// whitespace on every line is trimmed before it is interpreted.
func Parse(text string) (*engine.State, *engine.WinConfig, error) {
	lines := strings.Split(text, "\n")

	var boards []engine.Board
	var player *engine.GlobalPos
	var playerTarget *engine.GlobalPos
	var boxTargets []engine.GlobalPos

	i := 0
	nextID := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}

		id, err := parseBoardID(line)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrInvalidMap, i+1, err)
		}
		if id != nextID {
			return nil, nil, fmt.Errorf("%w: line %d: board id %d out of order, expected %d", ErrInvalidMap, i+1, id, nextID)
		}
		i++

		var rows []string
		for i < len(lines) {
			row := strings.TrimSpace(lines[i])
			if row == "" {
				break
			}
			rows = append(rows, row)
			i++
		}
		if len(rows) == 0 {
			return nil, nil, fmt.Errorf("%w: board %d has no grid rows", ErrInvalidMap, id)
		}

		board, err := parseBoardRows(engine.BoardID(id), rows, &player, &playerTarget, &boxTargets)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: board %d: %v", ErrInvalidMap, id, err)
		}
		boards = append(boards, board)
		nextID++
	}

	if len(boards) == 0 {
		return nil, nil, fmt.Errorf("%w: no boards found", ErrInvalidMap)
	}
	if len(boards) > engine.MaxBoards {
		return nil, nil, fmt.Errorf("%w: %d boards exceeds MaxBoards=%d", ErrInvalidMap, len(boards), engine.MaxBoards)
	}
	if player == nil {
		return nil, nil, fmt.Errorf("%w: no player ('p') cell found", ErrInvalidMap)
	}
	if playerTarget == nil {
		return nil, nil, fmt.Errorf("%w: no player target ('=') cell found", ErrInvalidMap)
	}
	for bi := range boards {
		for _, bc := range boards[bi].Cells() {
			if bc.Cell.Kind == engine.CellBoardRef && int(bc.Cell.Board) >= len(boards) {
				return nil, nil, fmt.Errorf("%w: board %d references undefined board %d", ErrInvalidMap, bi, bc.Cell.Board)
			}
		}
	}

	state := &engine.State{Player: *player, Boards: boards}
	win := &engine.WinConfig{PlayerTarget: *playerTarget, BoxTargets: boxTargets}
	return state, win, nil
}

func parseBoardID(line string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(line, "%d", &id); err != nil {
		return 0, fmt.Errorf("expected a board id, got %q", line)
	}
	if id < 0 || id >= engine.MaxBoards {
		return 0, fmt.Errorf("board id %d out of range [0, %d)", id, engine.MaxBoards)
	}
	return id, nil
}

func parseBoardRows(id engine.BoardID, rows []string, player, playerTarget **engine.GlobalPos, boxTargets *[]engine.GlobalPos) (engine.Board, error) {
	width := len(rows[0])
	if width == 0 || width >= engine.MaxDim {
		return engine.Board{}, fmt.Errorf("width %d out of range (1, %d)", width, engine.MaxDim)
	}
	if len(rows) >= engine.MaxDim {
		return engine.Board{}, fmt.Errorf("height %d out of range (1, %d)", len(rows), engine.MaxDim)
	}
	for _, row := range rows {
		if len(row) != width {
			return engine.Board{}, fmt.Errorf("row %q has length %d, want %d", row, len(row), width)
		}
	}

	board := engine.NewBoard(uint8(len(rows)), uint8(width))
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			pos := engine.Vec2{Row: uint8(r), Col: uint8(c)}
			gpos := engine.GlobalPos{Board: id, Pos: pos}

			switch ch := row[c]; ch {
			case '.':
				board.SetCellAt(pos, engine.Cell{Kind: engine.CellEmpty})
			case '#':
				board.SetCellAt(pos, engine.Cell{Kind: engine.CellWall})
			case 'b':
				board.SetCellAt(pos, engine.Cell{Kind: engine.CellBox})
			case 'p':
				if *player != nil {
					return engine.Board{}, fmt.Errorf("more than one 'p' cell")
				}
				board.SetCellAt(pos, engine.Cell{Kind: engine.CellBox})
				g := gpos
				*player = &g
			case '_':
				board.SetCellAt(pos, engine.Cell{Kind: engine.CellEmpty})
				*boxTargets = append(*boxTargets, gpos)
			case '=':
				if *playerTarget != nil {
					return engine.Board{}, fmt.Errorf("more than one '=' cell")
				}
				board.SetCellAt(pos, engine.Cell{Kind: engine.CellEmpty})
				g := gpos
				*playerTarget = &g
			default:
				if ch >= '0' && ch <= '9' {
					board.SetCellAt(pos, engine.Cell{Kind: engine.CellBoardRef, Board: engine.BoardID(ch - '0')})
				} else {
					return engine.Board{}, fmt.Errorf("unrecognized character %q", ch)
				}
			}
		}
	}
	return board, nil
}
