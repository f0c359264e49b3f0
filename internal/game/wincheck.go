package game

// IsWin reports whether a token at position has reached the winning cell.
// Overshooting counts as reaching it.
func (l Layout) IsWin(position int) bool {
	return position >= l.Length
}
