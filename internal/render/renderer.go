//go:build ebiten

package render

import (
	"image/color"

	"lifeview/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"seehuhn.de/go/geom/matrix"
)

// GridPainter draws the live cells of a square grid as one image scaled and
// translated by the camera view.
type GridPainter struct {
	size int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a size*size grid.
func NewGridPainter(size int) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size*size)}
	gp.img = ebiten.NewImage(size, size)
	return gp
}

// Blit uploads the live cells into the painter image and draws it through
// view, the grid-to-screen transform.
func (gp *GridPainter) Blit(dst *ebiten.Image, live []core.Point, on, off color.Color, view matrix.Matrix) {
	fillLiveRGBA(gp.buf, gp.size, live, on, off)
	gp.img.WritePixels(gp.buf)

	var geo ebiten.GeoM
	for i, row := range geoElements(view) {
		for j, v := range row {
			geo.SetElement(i, j, v)
		}
	}
	op := &ebiten.DrawImageOptions{}
	// Cell (x, y) covers [x-0.5, x+0.5) so that it is centred on its
	// coordinate, which is where ScreenToGrid rounds to.
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Concat(geo)
	dst.DrawImage(gp.img, op)
}

// Size returns the edge length of the underlying image.
func (gp *GridPainter) Size() int { return gp.size }
