// Package life implements Conway's Game of Life (B3/S23) on a bounded
// square grid. Cells beyond the border do not exist; edge cells simply have
// fewer neighbours.
package life

import (
	"fmt"

	"lifeview/pkg/core"
)

const (
	dead  = 0
	alive = 1
)

// Grid is the authoritative cell state for one generation together with
// the derived list of live cells.
type Grid struct {
	cells *core.ByteGrid
	live  []core.Point
}

// NewGrid returns an all-dead size*size grid.
func NewGrid(size int) (*Grid, error) {
	cells, err := core.NewByteGrid(size, size)
	if err != nil {
		return nil, fmt.Errorf("life: new grid: %w", err)
	}
	return &Grid{cells: cells}, nil
}

// Size returns the edge length of the grid.
func (g *Grid) Size() int { return g.cells.W }

// Cells exposes the current grid values in row-major order (index y*size+x).
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// LiveCells returns the live cells. The slice is owned by the grid and is
// only valid until the next mutation.
func (g *Grid) LiveCells() []core.Point { return g.live }

// Population returns the number of live cells.
func (g *Grid) Population() int { return len(g.live) }

// IsAlive reports whether (x, y) is alive. Out-of-range cells are dead.
func (g *Grid) IsAlive(x, y int) bool {
	return g.cells.At(x, y) == alive
}

// SetAlive marks (x, y) alive. It reports false, and changes nothing, when
// the cell is out of range or already alive.
func (g *Grid) SetAlive(x, y int) bool {
	if !g.cells.InBounds(x, y) || g.IsAlive(x, y) {
		return false
	}
	g.cells.Set(x, y, alive)
	g.live = append(g.live, core.Point{X: x, Y: y})
	return true
}

// Clear kills every cell. The size is unchanged.
func (g *Grid) Clear() {
	g.cells.Clear()
	g.live = g.live[:0]
}

// Seed sets each cell inside region alive with probability density. The
// region is clamped to the grid and cells outside it are left untouched.
func (g *Grid) Seed(region core.Region, density float64, rng *core.RNG) {
	size := g.Size()
	r, ok := region.Clamp(size, size)
	if !ok {
		return
	}
	cells := g.cells.Cells()
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if rng.Chance(density) {
				cells[g.cells.Index(x, y)] = alive
			}
		}
	}
	g.rebuildLive()
}

// DefaultSeedRegion returns the region seeded at startup: the grid inset by
// a fifth of its size on every side.
func DefaultSeedRegion(size int) core.Region {
	inset := size / 5
	return core.Rect(inset, inset, size-1-inset, size-1-inset)
}

// rebuildLive regenerates the live list in row-major order: y outer, x inner.
func (g *Grid) rebuildLive() {
	g.live = g.live[:0]
	size := g.Size()
	cells := g.cells.Cells()
	for y := 0; y < size; y++ {
		row := cells[y*size : (y+1)*size]
		for x, c := range row {
			if c == alive {
				g.live = append(g.live, core.Point{X: x, Y: y})
			}
		}
	}
}
