//go:build ebiten

package app

import (
	"fmt"

	"wireworld/internal/core"
	"wireworld/internal/edit"
	"wireworld/internal/input"
	"wireworld/internal/loop"
	"wireworld/internal/render"
	"wireworld/internal/sims/wireworld"
	"wireworld/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the WireWorld loop to the ebiten.Game interface. ebiten's
// Update callback is the loop's only tick driver.
type Game struct {
	world   *wireworld.World
	loop    *loop.Loop
	ctrl    *edit.Controller
	tracker *input.Tracker
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	resolver         input.Resolver
	screenW, screenH int
}

// New constructs a Game from cfg.
func New(cfg *Config) (*Game, error) {
	world, err := wireworld.NewWithConfig(wireworld.Config{Width: cfg.Width, Height: cfg.Height, Pattern: cfg.Pattern})
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}
	painter := render.NewGridPainter(cfg.Width, cfg.Height, render.DefaultPalette())
	resolver := input.NewResolver(cfg.ScreenW, cfg.ScreenH, cfg.Width, cfg.Height)

	l := loop.New(world, painter, core.NewFixedStep(cfg.TPS))
	l.SetCellSize(resolver.CellW, resolver.CellH)
	l.Start()
	l.SetRunning(!cfg.Paused)

	ctrl := edit.NewController(world, l)
	return &Game{
		world:    world,
		loop:     l,
		ctrl:     ctrl,
		tracker:  input.NewTracker(ctrl),
		painter:  painter,
		overlay:  ui.NewOverlay(world.Size(), resolver),
		hud:      ui.NewHUD(world, l.Running),
		resolver: resolver,
		screenW:  cfg.ScreenW,
		screenH:  cfg.ScreenH,
	}, nil
}

// Update handles per-frame input and ticks the loop.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TertiaryPress()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.WheelUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.ctrl.WheelDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.loop.StepOnce()
	}

	g.updatePointer()
	g.overlay.Update()
	g.hud.Update()

	g.loop.Tick()
	return nil
}

func (g *Game) updatePointer() {
	mx, my := ebiten.CursorPosition()
	tile := g.resolver.Tile(float64(mx), float64(my))

	var (
		button edit.Button
		down   = true
	)
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		button = edit.Primary
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		button = edit.Secondary
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		button = edit.Tertiary
	default:
		down = false
	}
	g.tracker.Update(tile, button, down)

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.tracker.Wheel(dy)
	}
}

// Draw renders the last uploaded grid and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
