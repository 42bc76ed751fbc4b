package engine

import "fmt"

// CellAt returns the cell at a global position.
func (s *State) CellAt(g GlobalPos) Cell {
	return s.Boards[g.Board].CellAt(g.Pos)
}

// SetCellAt overwrites the cell at a global position.
func (s *State) SetCellAt(g GlobalPos, c Cell) {
	s.Boards[g.Board].SetCellAt(g.Pos, c)
}

// SetPlayer moves the player to newPos, which must currently be Empty.
// The old location becomes Empty, the new one becomes CellBox, and
// Player is updated. Used only by the solver's big-step BFS to
// "teleport" the player between positions reachable without pushing.
func (s *State) SetPlayer(newPos GlobalPos) error {
	if s.CellAt(newPos).Kind != CellEmpty {
		return fmt.Errorf("engine: SetPlayer target %s is not empty", newPos)
	}
	s.SetCellAt(s.Player, Cell{Kind: CellEmpty})
	s.SetCellAt(newPos, Cell{Kind: CellBox})
	s.Player = newPos
	return nil
}

// GetBoardBoxPos locates the unique cell equal to Board(target) across
// all boards. It is a linear scan, called only from the exit-walk
// logic in Sibling.
func (s *State) GetBoardBoxPos(target BoardID) (GlobalPos, bool) {
	for bi := range s.Boards {
		b := &s.Boards[bi]
		for row := uint8(0); row < b.Height; row++ {
			for col := uint8(0); col < b.Width; col++ {
				pos := Vec2{Row: row, Col: col}
				cell := b.CellAt(pos)
				if cell.Kind == CellBoardRef && cell.Board == target {
					return GlobalPos{Board: BoardID(bi), Pos: pos}, true
				}
			}
		}
	}
	return GlobalPos{}, false
}

// Sibling returns the next GlobalPos in direction dir, following exits
// out of boards. If SiblingPos succeeds inside the current board, that
// is the answer. Otherwise the walk climbs to the box-cell containing
// the current board and retries from there. A visited set of board IDs
// crossed during this call detects "infinity": revisiting a board
// means the reference graph cycles back on itself.
func (s *State) Sibling(g GlobalPos, dir Direction) (GlobalPos, error) {
	var visited [MaxBoards]bool
	cur := g
	for {
		b := &s.Boards[cur.Board]
		if next, ok := b.SiblingPos(cur.Pos, dir); ok {
			return GlobalPos{Board: cur.Board, Pos: next}, nil
		}
		if visited[cur.Board] {
			return GlobalPos{}, ErrOutOfInfinity
		}
		visited[cur.Board] = true

		container, ok := s.GetBoardBoxPos(cur.Board)
		if !ok {
			// Stepped off the outermost board: there is nothing
			// containing it to climb into.
			return GlobalPos{}, ErrOutOfInfinity
		}
		cur = container
	}
}

// InnerSibling asks "if something is pushed into board b from
// direction dir, where does it land?"
func (s *State) InnerSibling(b BoardID, dir Direction) InnerSibling {
	board := &s.Boards[b]
	pos := board.InnerSiblingPos(dir)
	if board.CellAt(pos).Kind == CellWall {
		return InnerSibling{Kind: InnerWall}
	}
	return InnerSibling{Kind: InnerNonWall, Pos: GlobalPos{Board: b, Pos: pos}}
}

// Clone returns a deep, independently mutable copy of the state.
func (s *State) Clone() State {
	boards := make([]Board, len(s.Boards))
	for i, b := range s.Boards {
		boards[i] = b.Clone()
	}
	return State{Player: s.Player, Boards: boards}
}

// Key returns a comparable, hashable encoding of the state: the
// player's GlobalPos followed by the concatenated byte images of each
// board's grid. Board dimensions are invariant across all states of
// one puzzle, so they are not part of the key (per spec, omitting them
// cannot cause collisions). Two states with equal Key are structurally
// equal.
func (s *State) Key() string {
	buf := make([]byte, 0, 3+boardsByteLen(s.Boards))
	buf = append(buf, byte(s.Player.Board), s.Player.Pos.Row, s.Player.Pos.Col)
	for _, b := range s.Boards {
		buf = append(buf, b.Grid...)
	}
	return string(buf)
}

func boardsByteLen(boards []Board) int {
	n := 0
	for _, b := range boards {
		n += len(b.Grid)
	}
	return n
}

// Equal reports structural equality: same player position and
// byte-identical board grids.
func (s *State) Equal(other *State) bool {
	return s.Key() == other.Key()
}
