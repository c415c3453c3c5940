//go:build ebiten

package ui

import (
	"image/color"

	"lifeview/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 14
)

// ParameterProvider supplies the values shown on the HUD.
type ParameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	src     ParameterProvider
	width   int
	visible bool
	lines   []string
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD reading from src with the given panel width.
func NewHUD(src ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width, visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached lines from the provider.
func (h *HUD) Update() {
	if h == nil || h.src == nil {
		return
	}
	h.lines = statusLines(h.src.Parameters())
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.width <= 0 || len(h.lines) == 0 {
		return
	}
	height := len(h.lines)*hudLineHeight + 2*hudPadding
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, line, face, hudPadding, y, color.RGBA{R: 230, G: 230, B: 230, A: 255})
	}
}
