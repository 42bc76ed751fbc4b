package config

import (
	"fmt"
	"strings"

	"github.com/kbox/parabox/game/engine"
)

// Render is the inverse of Parse for a State alone: the win
// configuration is not re-emitted, since targets aren't part of the
// live state (they're erased into plain Empty cells during parsing).
// For each board: the id on its own line, the grid rows, then a blank
// line. The player's own cell is rendered as 'p', matching Parse's
// grammar. Because no '=' player target is emitted, Parse rejects
// Render's output as it stands; with the '=' restored on an empty cell
// it parses back to an equal state.
func Render(s *engine.State) string {
	var b strings.Builder
	for id, board := range s.Boards {
		fmt.Fprintf(&b, "%d\n", id)
		for row := uint8(0); row < board.Height; row++ {
			for col := uint8(0); col < board.Width; col++ {
				pos := engine.Vec2{Row: row, Col: col}
				gpos := engine.GlobalPos{Board: engine.BoardID(id), Pos: pos}
				if gpos == s.Player {
					b.WriteByte('p')
					continue
				}
				b.WriteByte(renderCell(board.CellAt(pos)))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderCell(c engine.Cell) byte {
	switch c.Kind {
	case engine.CellEmpty:
		return '.'
	case engine.CellWall:
		return '#'
	case engine.CellBox:
		return 'b'
	case engine.CellBoardRef:
		return '0' + byte(c.Board)
	default:
		return '?'
	}
}

// RenderDebug is Render under the name callers use when the intent is
// interactive play or debugging rather than a round-trip through
// Parse. Kept as a separate name since the two call sites read very
// differently even though the output is identical.
func RenderDebug(s *engine.State) string {
	return Render(s)
}
