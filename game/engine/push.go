package engine

// Go applies one directional move. On success it mutates the state to
// the post-move configuration and returns whether anything besides the
// player moved (pushed). On any error the state is left byte-identical
// to before the call — all mutation happens in exactly one place,
// below, after the move is known to succeed.
//
// This is the push-resolution engine: the hard, non-local rewrite rule
// that makes boxes-containing-boards ("enter") and blocked chains
// reversing direction ("eat") possible. See backpressure for the part
// that handles hitting a wall.
func (s *State) Go(dir Direction) (pushed bool, err error) {
	curGpos := s.Player
	curDir := dir
	var pushSeq []GlobalPos

	for iterations := 0; ; iterations++ {
		if iterations >= MaxPushIterations {
			return false, ErrStuck
		}

		cell := s.CellAt(curGpos)
		switch cell.Kind {
		case CellBox, CellBoardRef:
			pushSeq = append(pushSeq, curGpos)
			next, serr := s.Sibling(curGpos, curDir)
			if serr != nil {
				return false, serr
			}
			curGpos = next

		case CellEmpty:
			pushSeq = append(pushSeq, curGpos)
			carry := Cell{Kind: CellEmpty}
			for _, pos := range pushSeq {
				prev := s.CellAt(pos)
				s.SetCellAt(pos, carry)
				carry = prev
			}
			s.Player = pushSeq[1]
			return len(pushSeq) > 2, nil

		case CellWall:
			newGpos, newDir, ok := s.backpressure(&pushSeq, curDir)
			if !ok {
				return false, ErrUnmovable
			}
			curGpos = newGpos
			curDir = newDir

		default:
			return false, ErrStuck
		}
	}
}

// backpressure runs when the forward probe hits a Wall. It pops the
// push sequence looking for something enterable (a board whose
// InnerSibling in the forward direction is not a wall) or, failing
// that, something edible that can be swallowed by reversing direction
// into the nearest upstream board. Forward entry is always tried
// before the reversed eat probe (see spec's note on precedence).
//
// Returns the new cur_gpos/cur_dir to resume the main loop with, and
// false if popping exhausted the sequence down to the player alone
// (Unmovable).
func (s *State) backpressure(pushSeq *[]GlobalPos, curDir Direction) (GlobalPos, Direction, bool) {
	for len(*pushSeq) >= 2 {
		n := len(*pushSeq)
		last := (*pushSeq)[n-1]
		*pushSeq = (*pushSeq)[:n-1]

		cell := s.CellAt(last)
		edible := false

		switch cell.Kind {
		case CellWall:
			// Non-enterable and non-edible: keep popping.
		case CellBox:
			edible = true
		case CellBoardRef:
			if inner := s.InnerSibling(cell.Board, curDir); inner.Kind == InnerNonWall {
				return inner.Pos, curDir, true
			}
			edible = true
		}

		if edible && len(*pushSeq) > 0 {
			top := (*pushSeq)[len(*pushSeq)-1]
			topCell := s.CellAt(top)
			if topCell.Kind == CellBoardRef {
				reversedDir := curDir.Reversed()
				if inner := s.InnerSibling(topCell.Board, reversedDir); inner.Kind == InnerNonWall {
					*pushSeq = append(*pushSeq, last)
					return inner.Pos, reversedDir, true
				}
			}
		}
	}
	return GlobalPos{}, curDir, false
}
