package render

import (
	"image/color"

	"lifeview/pkg/core"
)

// fillLiveRGBA paints a size*size RGBA buffer: every pixel gets off, then
// each live cell that lies inside the grid gets on.
func fillLiveRGBA(buf []byte, size int, live []core.Point, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
	for _, p := range live {
		if p.X < 0 || p.Y < 0 || p.X >= size || p.Y >= size {
			continue
		}
		base := (p.Y*size + p.X) * 4
		buf[base+0] = uint8(rOn >> 8)
		buf[base+1] = uint8(gOn >> 8)
		buf[base+2] = uint8(bOn >> 8)
		buf[base+3] = uint8(aOn >> 8)
	}
}

// geoElements converts an affine matrix in [a b c d e f] layout, where
// x' = a*x + c*y + e and y' = b*x + d*y + f, into the row-major 2x3 element
// order used by ebiten.GeoM.SetElement.
func geoElements(m [6]float64) [2][3]float64 {
	return [2][3]float64{
		{m[0], m[2], m[4]},
		{m[1], m[3], m[5]},
	}
}
