//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"falling-sand/internal/render"
	"falling-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

var background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

var digitKeys = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.KeyDigit0, '0'},
	{ebiten.KeyDigit1, '1'},
	{ebiten.KeyDigit2, '2'},
	{ebiten.KeyDigit3, '3'},
	{ebiten.KeyDigit4, '4'},
	{ebiten.KeyDigit5, '5'},
}

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	driver  *Driver
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
	err   error
}

// New constructs a Game for the provided driver.
func New(d *Driver, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := d.Sim().Size()
	return &Game{
		driver:  d,
		painter: render.NewGridPainter(size.W, size.H, background),
		hud:     ui.NewHUD(d.Sim(), hudWidth),
		overlay: ui.NewOverlay(d.Sim(), scale),
		scale:   scale,
	}
}

// WindowSize returns the outer window size including the HUD panel.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.driver.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.driver.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Reset(g.driver.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := time.Now().UnixNano()
		log.Printf("reseeding with %d", seed)
		g.driver.Reset(seed)
	}
	for _, dk := range digitKeys {
		if inpututil.IsKeyJustPressed(dk.key) {
			g.driver.SelectKey(dk.r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.driver.Brush().Grow(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.driver.Brush().Grow(-1)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		if dy > 0 {
			g.driver.Brush().Grow(1)
		} else {
			g.driver.Brush().Grow(-1)
		}
	}
	g.handlePointer()

	if g.overlay != nil {
		g.overlay.Update()
	}
	g.driver.Advance()
	if g.hud != nil {
		g.hud.Update(g.driver.Status().Lines())
	}
	return nil
}

func (g *Game) handlePointer() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.driver.EndStroke()
		return
	}
	mx, my := ebiten.CursorPosition()
	size := g.driver.Sim().Size()
	if mx < 0 || my < 0 || mx >= size.W*g.scale || my >= size.H*g.scale {
		g.driver.EndStroke()
		return
	}
	g.driver.StrokeTo(mx/g.scale, my/g.scale)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if err := g.driver.Frame(g.painter.Buffer()); err != nil {
		g.err = err
		return
	}
	g.painter.Blit(screen, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		size := g.driver.Sim().Size()
		g.hud.Draw(screen, size.W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.driver.Sim().Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
