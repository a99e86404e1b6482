package core

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Position identifies a single cell on a board.
type Position struct {
	X int
	Y int
}

// In reports whether the position lies inside a board of the given size.
func (p Position) In(s Size) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}


