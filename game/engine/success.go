package engine

// IsSuccessOn reports whether the state satisfies the win condition:
// the player is on its target, and every box target is covered by a
// box-like cell.
func (s *State) IsSuccessOn(cfg *WinConfig) bool {
	if s.Player != cfg.PlayerTarget {
		return false
	}
	for _, target := range cfg.BoxTargets {
		if !s.CellAt(target).Kind.IsBoxLike() {
			return false
		}
	}
	return true
}
