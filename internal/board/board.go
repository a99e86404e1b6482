// Package board implements the bounded Game of Life grid and its
// generation transition.
package board

import (
	"github.com/pkg/errors"

	"gridlife/internal/core"
)

// Cell is a single grid slot. Pos never changes after construction; only
// Alive mutates.
type Cell struct {
	Pos   core.Position
	Alive bool
}

// Board is a dense w*h grid of cells indexed [x][y]. Every in-range
// position is present exactly once and cells[x][y].Pos is always (x, y).
type Board struct {
	size  core.Size
	cells [][]Cell
}

// New allocates an all-dead board. Non-positive dimensions are clamped to 1.
func New(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	cells := make([][]Cell, w)
	for x := range cells {
		cells[x] = make([]Cell, h)
		for y := range cells[x] {
			cells[x][y] = Cell{Pos: core.Position{X: x, Y: y}}
		}
	}
	return &Board{size: core.Size{W: w, H: h}, cells: cells}
}

// Seed builds a board and marks liveCount randomly drawn positions alive.
// Positions are drawn with replacement, so duplicates collapse and the
// realized population may be lower than liveCount.
func Seed(w, h, liveCount int, rng *core.RNG) *Board {
	b := New(w, h)
	for i := 0; i < liveCount; i++ {
		p := rng.Position(b.size)
		b.cells[p.X][p.Y].Alive = true
	}
	return b
}

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return b.size }

// At reports whether the cell at p is alive. Out-of-range positions read
// as dead, which keeps the neighbor scan branch-free at the edges.
func (b *Board) At(p core.Position) bool {
	if !p.In(b.size) {
		return false
	}
	return b.cells[p.X][p.Y].Alive
}

// NeighborCount counts alive cells among the up-to-8 adjacent positions.
// The grid does not wrap: edge and corner cells simply have fewer neighbors.
func (b *Board) NeighborCount(p core.Position) int {
	minX := max(0, p.X-1)
	maxX := min(b.size.W-1, p.X+1)
	minY := max(0, p.Y-1)
	maxY := min(b.size.H-1, p.Y+1)

	count := 0
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if x == p.X && y == p.Y {
				continue
			}
			if b.cells[x][y].Alive {
				count++
			}
		}
	}
	return count
}

// Step returns the next generation as a fresh board. It reads only the
// receiver, so every transition sees the prior generation's state.
func (b *Board) Step() *Board {
	next := New(b.size.W, b.size.H)
	for x := 0; x < b.size.W; x++ {
		for y := 0; y < b.size.H; y++ {
			cell := b.cells[x][y]
			neighbors := b.NeighborCount(cell.Pos)
			// Birth on exactly 3, survival on 2 or 3.
			next.cells[x][y].Alive = neighbors == 3 || (cell.Alive && neighbors == 2)
		}
	}
	return next
}

// Clear returns an all-dead board of the same dimensions.
func (b *Board) Clear() *Board {
	return New(b.size.W, b.size.H)
}

// Toggle flips the cell at p between dead and alive.
func (b *Board) Toggle(p core.Position) error {
	if !p.In(b.size) {
		return errors.Errorf("position (%d,%d) outside %dx%d board", p.X, p.Y, b.size.W, b.size.H)
	}
	b.cells[p.X][p.Y].Alive = !b.cells[p.X][p.Y].Alive
	return nil
}

// Alive returns the positions of all live cells as a fresh slice.
func (b *Board) Alive() []core.Position {
	var live []core.Position
	for x := 0; x < b.size.W; x++ {
		for y := 0; y < b.size.H; y++ {
			if b.cells[x][y].Alive {
				live = append(live, b.cells[x][y].Pos)
			}
		}
	}
	return live
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	count := 0
	for x := 0; x < b.size.W; x++ {
		for y := 0; y < b.size.H; y++ {
			if b.cells[x][y].Alive {
				count++
			}
		}
	}
	return count
}


