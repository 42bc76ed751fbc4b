package engine

import "testing"

// buildState parses a small set of in-memory ASCII boards into a
// State, for use by tests that don't need the full map-file parser
// (see package config for that). Characters: '.' empty, '#' wall, 'b'
// box, 'p' player (stored as box), '0'-'9' board reference.
func buildState(t *testing.T, boardRows [][]string) State {
	t.Helper()

	boards := make([]Board, len(boardRows))
	var player GlobalPos
	foundPlayer := false

	for bi, rows := range boardRows {
		height := uint8(len(rows))
		width := uint8(len(rows[0]))
		b := NewBoard(height, width)
		for row, line := range rows {
			if len(line) != int(width) {
				t.Fatalf("board %d: row %d has length %d, want %d", bi, row, len(line), width)
			}
			for col := 0; col < len(line); col++ {
				pos := Vec2{Row: uint8(row), Col: uint8(col)}
				switch line[col] {
				case '.':
					b.SetCellAt(pos, Cell{Kind: CellEmpty})
				case '#':
					b.SetCellAt(pos, Cell{Kind: CellWall})
				case 'b':
					b.SetCellAt(pos, Cell{Kind: CellBox})
				case 'p':
					b.SetCellAt(pos, Cell{Kind: CellBox})
					player = GlobalPos{Board: BoardID(bi), Pos: pos}
					foundPlayer = true
				default:
					if line[col] >= '0' && line[col] <= '9' {
						b.SetCellAt(pos, Cell{Kind: CellBoardRef, Board: BoardID(line[col] - '0')})
					} else {
						t.Fatalf("board %d: unknown character %q", bi, line[col])
					}
				}
			}
		}
		boards[bi] = b
	}

	if !foundPlayer {
		t.Fatalf("no player ('p') found in any board")
	}

	return State{Player: player, Boards: boards}
}

// renderRow renders one board row back to the same character alphabet
// buildState accepts, for assertions that read naturally as strings.
func renderRow(b *Board, row uint8) string {
	buf := make([]byte, b.Width)
	for col := uint8(0); col < b.Width; col++ {
		cell := b.CellAt(Vec2{Row: row, Col: col})
		switch cell.Kind {
		case CellEmpty:
			buf[col] = '.'
		case CellWall:
			buf[col] = '#'
		case CellBox:
			buf[col] = 'b'
		case CellBoardRef:
			buf[col] = '0' + byte(cell.Board)
		}
	}
	return string(buf)
}
