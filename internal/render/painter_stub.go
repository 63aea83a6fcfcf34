//go:build !ebiten

package render

import (
	"conway/internal/settings"
	"conway/pkg/grid"
)

// GridPainter is a no-op placeholder used when the ebiten build tag is absent.
type GridPainter struct{}

// NewGridPainter constructs a stub painter.
func NewGridPainter(settings.Settings) *GridPainter { return &GridPainter{} }

// Draw is a no-op in headless builds.
func (gp *GridPainter) Draw(any, *grid.Grid) {}
