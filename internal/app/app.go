//go:build ebiten

package app

import (
	"time"

	"conway/internal/control"
	"conway/internal/core"
	"conway/internal/render"
	"conway/internal/ui"
	"conway/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the grid controller to the ebiten.Game interface.
type Game struct {
	ctl     *control.Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep
	history *grid.History

	seed    int64
	density float64
	settled bool

	width, height int
}

// New constructs a Game from a validated Config.
func New(cfg *Config) (*Game, error) {
	set, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	ctl := control.New(grid.New(0, 0), set)
	return &Game{
		ctl:     ctl,
		painter: render.NewGridPainter(set),
		overlay: ui.NewOverlay(ctl),
		hud:     ui.NewHUD(),
		timer:   core.NewFixedStep(cfg.Rate, 4),
		history: grid.NewHistory(8),
		seed:    cfg.Seed,
		density: cfg.Density,
	}, nil
}

// Update handles per-frame input and advances the grid.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	g.ctl.CursorMoved(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctl.Press()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctl.Release()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctl.SetRunning(!g.ctl.Running())
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.ctl.ToggleWrap()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
		g.resetHistory()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Randomize(g.seed, g.density)
		g.resetHistory()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.ctl.Randomize(g.seed, g.density)
		g.resetHistory()
	}

	if g.ctl.Running() {
		for n := g.timer.Due(time.Now()); n > 0; n-- {
			g.advance()
		}
	}

	g.overlay.Update()
	gr := g.ctl.Grid()
	g.hud.Update(ui.Status{
		Generation: g.ctl.Generation(),
		Population: gr.Population(),
		Rows:       gr.Rows(),
		Cols:       gr.Cols(),
		Wrap:       g.ctl.Settings().Wraparound,
		Running:    g.ctl.Running(),
		Settled:    g.settled,
	})
	return nil
}

func (g *Game) advance() {
	g.ctl.Advance()
	g.settled = g.history.Record(g.ctl.Grid())
}

func (g *Game) resetHistory() {
	g.history.Reset()
	g.settled = false
}

// Draw renders the grid, the hover outline and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.ctl.Grid())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size and refits the grid whenever it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.ctl.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
