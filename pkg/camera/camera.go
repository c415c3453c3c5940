// Package camera maps between screen pixels and grid cells under a pan and
// zoom.
//
// Grid cell (x, y) is drawn centred on the screen point
//
//	s = zoom*(x, y) + pan ⊙ halfExtent
//
// where pan is measured in half-viewports, so a pan of (1, 0) shifts the grid
// right by half the window width. ScreenToGrid is the inverse of that
// mapping, rounded to the nearest cell.
package camera

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Camera holds the pan/zoom state and the lazily computed render transform.
// It is not safe for concurrent use.
type Camera struct {
	cfg Config

	panX, panY   float64
	zoom         float64
	halfW, halfH float64

	dirty     bool
	transform matrix.Matrix
}

// New returns a camera at zoom 1 with no pan and a 1x1 pixel viewport.
func New(cfg Config) (*Camera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Camera{cfg: cfg, zoom: 1, halfW: 0.5, halfH: 0.5, dirty: true}
	c.zoom = c.clampZoom(c.zoom)
	return c, nil
}

// Config returns the camera configuration.
func (c *Camera) Config() Config { return c.cfg }

// Zoom returns the current scale factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// Pan returns the current pan offset in half-viewport units.
func (c *Camera) Pan() (float64, float64) { return c.panX, c.panY }

// HalfExtent returns half of the viewport size in pixels.
func (c *Camera) HalfExtent() (float64, float64) { return c.halfW, c.halfH }

// Resize records a new window size. Pan and zoom are unchanged.
func (c *Camera) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.halfW = float64(width) / 2
	c.halfH = float64(height) / 2
	c.dirty = true
}

// ZoomBy changes the zoom by a mouse wheel delta.
func (c *Camera) ZoomBy(delta float64) {
	c.setZoom(c.zoom + delta*c.cfg.ScrollSpeed)
}

// ZoomKey changes the zoom by one keyboard step in the direction of dir.
func (c *Camera) ZoomKey(dir float64) {
	c.setZoom(c.zoom + dir*c.cfg.KeyZoomSpeed)
}

// SetZoom sets the zoom directly, clamped to the configured bounds.
func (c *Camera) SetZoom(z float64) {
	c.setZoom(z)
}

func (c *Camera) setZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	c.zoom = c.clampZoom(z)
	c.dirty = true
}

func (c *Camera) clampZoom(z float64) float64 {
	return math.Min(math.Max(z, c.cfg.ZoomMin), c.cfg.ZoomMax)
}

// PanBy moves the view by a mouse drag delta in pixels.
func (c *Camera) PanBy(dx, dy float64) {
	c.pan(dx*c.cfg.PanSpeed, dy*c.cfg.PanSpeed)
}

// PanKey moves the view by keyboard steps; dx and dy are usually -1, 0 or 1.
func (c *Camera) PanKey(dx, dy float64) {
	c.pan(dx*c.cfg.KeyPanSpeed, dy*c.cfg.KeyPanSpeed)
}

// SetPan sets the pan offset directly.
func (c *Camera) SetPan(x, y float64) {
	c.panX, c.panY = 0, 0
	c.pan(x, y)
}

func (c *Camera) pan(dx, dy float64) {
	if math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return
	}
	c.panX += dx
	c.panY += dy
	c.dirty = true
}

// offset returns the pan converted to pixels.
func (c *Camera) offset() (float64, float64) {
	return c.panX * c.halfW, c.panY * c.halfH
}

// GridToScreen returns the screen position of the centre of grid point
// (gx, gy).
func (c *Camera) GridToScreen(gx, gy float64) (float64, float64) {
	ox, oy := c.offset()
	return c.zoom*gx + ox, c.zoom*gy + oy
}

// ScreenToGridF is the exact inverse of GridToScreen.
func (c *Camera) ScreenToGridF(sx, sy float64) (float64, float64) {
	ox, oy := c.offset()
	return (sx - ox) / c.zoom, (sy - oy) / c.zoom
}

// ScreenToGrid returns the cell drawn under screen point (sx, sy). The
// result may lie outside the grid.
func (c *Camera) ScreenToGrid(sx, sy float64) (int, int) {
	gx, gy := c.ScreenToGridF(sx, sy)
	return int(math.Round(gx)), int(math.Round(gy))
}

// View returns the grid-to-screen transform as an affine matrix: scale by
// zoom, then translate by the pan offset in pixels.
func (c *Camera) View() matrix.Matrix {
	ox, oy := c.offset()
	return matrix.Matrix{c.zoom, 0, 0, c.zoom, ox, oy}
}

// Projection returns the orthographic transform from screen pixels (origin
// top-left, y down) to normalised device coordinates (origin centre, y up).
func (c *Camera) Projection() matrix.Matrix {
	return matrix.Matrix{1 / c.halfW, 0, 0, -1 / c.halfH, -1, 1}
}

// RenderTransform returns View followed by Projection. The result is cached
// until the next pan, zoom or resize.
func (c *Camera) RenderTransform() matrix.Matrix {
	if c.dirty {
		c.transform = c.View().Mul(c.Projection())
		c.dirty = false
	}
	return c.transform
}

// Apply transforms the point (x, y) by m.
func Apply(m matrix.Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
