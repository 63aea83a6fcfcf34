//go:build ebiten

package ui

import (
	"image/color"

	"conway/internal/control"
	"conway/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay outlines the hovered cell on top of the grid.
type Overlay struct {
	ctl       *control.Controller
	showHover bool
}

// NewOverlay constructs an overlay for the controller's grid.
func NewOverlay(ctl *control.Controller) *Overlay {
	return &Overlay{ctl: ctl, showHover: true}
}

// Update toggles the hover outline with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHover = !o.showHover
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHover {
		return
	}
	cell, ok := o.ctl.Hover()
	if !ok {
		return
	}
	outline := color.RGBA{R: 255, G: 255, B: 255, A: 160}
	if state, active := o.ctl.Drawing(); active {
		if state {
			outline = color.RGBA{R: 120, G: 255, B: 140, A: 220}
		} else {
			outline = color.RGBA{R: 255, G: 110, B: 90, A: 220}
		}
	}
	r := render.CellRect(cell.Row, cell.Col, o.ctl.Settings())
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, outline, false)
}
