//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const hudPadding = 4

// HUD draws a one-line status strip along the bottom of the window.
type HUD struct {
	visible bool
	status  Status
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD { return &HUD{visible: true} }

// Update toggles visibility with Tab and stores the status to draw.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
	h.status = s
}

// Draw paints the status strip onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	face := basicfont.Face7x13
	line := h.status.String()
	bounds := text.BoundString(face, line)
	height := face.Metrics().Height.Ceil() + 2*hudPadding
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	top := sh - height

	vector.DrawFilledRect(screen, 0, float32(top), float32(sw), float32(height), color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	text.Draw(screen, line, face, hudPadding, top+hudPadding-bounds.Min.Y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
