package core

import "fmt"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Coordinates outside the grid are never wrapped; reads return zero and
// writes are dropped.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(w, h int) (*ByteGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("byte grid %dx%d: %w", w, h, ErrInvalidSize)
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y), or 0 when out of range.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Set stores v at (x, y) and reports whether the write landed.
func (g *ByteGrid) Set(x, y int, v uint8) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[g.Index(x, y)] = v
	return true
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}

// SameShape reports whether o has the same dimensions as g.
func (g *ByteGrid) SameShape(o *ByteGrid) bool {
	return o != nil && g.W == o.W && g.H == o.H
}
