package session

import (
	"lifeview/pkg/camera"
	"lifeview/pkg/sims/life"
)

// Paint marks the cell under screen point (sx, sy) alive. It reports whether
// the grid changed; points outside the grid and cells that are already alive
// are ignored.
func Paint(g *life.Grid, cam *camera.Camera, sx, sy float64) bool {
	x, y := cam.ScreenToGrid(sx, sy)
	if g.IsAlive(x, y) {
		return false
	}
	return g.SetAlive(x, y)
}
