//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"gridlife/internal/core"
)

// GridPainter updates a single RGBA image from a live-cell position list.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a board of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.W*size.H)}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit uploads the live cells into the painter image and draws it scaled
// by the cell pixel size.
func (gp *GridPainter) Blit(dst *ebiten.Image, live []core.Position, cell, background color.Color, scale int) {
	if scale <= 0 {
		scale = 1
	}
	fillRGBA(gp.buf, gp.size, live, cell, background)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() core.Size { return gp.size }


