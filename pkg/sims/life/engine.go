package life

import (
	"fmt"

	"lifeview/pkg/core"
)

// NeighborCounts is per-cell scratch space for one step. It has the same
// shape as the grid it is used with and is zeroed at the start of every
// Step, so it can be reused across generations.
type NeighborCounts struct {
	counts *core.ByteGrid
}

// NewNeighborCounts allocates scratch counts for a size*size grid.
func NewNeighborCounts(size int) (NeighborCounts, error) {
	counts, err := core.NewByteGrid(size, size)
	if err != nil {
		return NeighborCounts{}, fmt.Errorf("life: neighbor counts: %w", err)
	}
	return NeighborCounts{counts: counts}, nil
}

// At returns the count recorded for (x, y) by the last Step.
func (n NeighborCounts) At(x, y int) uint8 { return n.counts.At(x, y) }

// Step advances g by one generation and returns its live cells in row-major
// order (y outer, x inner).
//
// Counting happens in a separate pass over the unmodified grid so that the
// update of each cell depends only on the previous generation. counts must
// have been created for g's size; anything else panics.
func Step(g *Grid, counts NeighborCounts) []core.Point {
	if !g.cells.SameShape(counts.counts) {
		panic(fmt.Sprintf("life: neighbor counts do not match %dx%d grid", g.Size(), g.Size()))
	}
	size := g.Size()
	cells := g.cells.Cells()
	n := counts.counts.Cells()
	clear(n)

	last := size - 1
	for y := 0; y < size; y++ {
		y0, y1 := y-1, y+1
		if y0 < 0 {
			y0 = 0
		}
		if y1 > last {
			y1 = last
		}
		for x := 0; x < size; x++ {
			if cells[y*size+x] != alive {
				continue
			}
			x0, x1 := x-1, x+1
			if x0 < 0 {
				x0 = 0
			}
			if x1 > last {
				x1 = last
			}
			for ny := y0; ny <= y1; ny++ {
				row := ny * size
				for nx := x0; nx <= x1; nx++ {
					n[row+nx]++
				}
			}
			// The loops above include the cell itself.
			n[y*size+x]--
		}
	}

	g.live = g.live[:0]
	for i, c := range n {
		switch {
		case c == 3:
			cells[i] = alive
		case c != 2:
			cells[i] = dead
		}
		if cells[i] == alive {
			g.live = append(g.live, core.Point{X: i % size, Y: i / size})
		}
	}
	return g.live
}

// Engine steps a grid while reusing its scratch buffer and counting
// generations.
type Engine struct {
	counts     NeighborCounts
	generation int
}

// NewEngine returns an Engine for size*size grids.
func NewEngine(size int) (*Engine, error) {
	counts, err := NewNeighborCounts(size)
	if err != nil {
		return nil, err
	}
	return &Engine{counts: counts}, nil
}

// Step advances g by one generation.
func (e *Engine) Step(g *Grid) []core.Point {
	e.generation++
	return Step(g, e.counts)
}

// StepN advances g by n generations and returns the final live cells.
func (e *Engine) StepN(g *Grid, n int) []core.Point {
	for i := 0; i < n; i++ {
		e.Step(g)
	}
	return g.LiveCells()
}

// Generation returns the number of generations stepped since the last reset.
func (e *Engine) Generation() int { return e.generation }

// ResetGeneration sets the generation counter back to zero.
func (e *Engine) ResetGeneration() { e.generation = 0 }
