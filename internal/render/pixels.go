package render

import (
	"image/color"

	"gridlife/internal/core"
)

// fillRGBA paints the background color into buf, then the cell color at
// every listed position. buf holds 4 bytes per cell in row-major order.
func fillRGBA(buf []byte, size core.Size, live []core.Position, cell, background color.Color) {
	rOn, gOn, bOn, aOn := cell.RGBA()
	rOff, gOff, bOff, aOff := background.RGBA()

	for i := 0; i < size.W*size.H; i++ {
		base := i * 4
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}

	for _, p := range live {
		if !p.In(size) {
			continue
		}
		base := (p.Y*size.W + p.X) * 4
		buf[base+0] = uint8(rOn >> 8)
		buf[base+1] = uint8(gOn >> 8)
		buf[base+2] = uint8(bOn >> 8)
		buf[base+3] = uint8(aOn >> 8)
	}
}


