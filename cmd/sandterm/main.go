// Command sandterm runs the falling-sand world inside a terminal, drawing two
// grid rows per character row with half-block glyphs. A mouse stroke paints
// both grid rows under the pointer.
package main

import (
	"flag"
	"image/color"
	"log"
	"strings"
	"time"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/render"
	_ "falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

var background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

type viewer struct {
	screen  tcell.Screen
	driver  *app.Driver
	painter *render.TermPainter
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	driver, err := app.NewDriver(sim, cfg)
	if err != nil {
		log.Fatalf("start %s: %v", cfg.Sim, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	screen.EnableMouse()

	size := sim.Size()
	v := &viewer{
		screen:  screen,
		driver:  driver,
		painter: render.NewTermPainter(size.W, size.H, background),
	}
	runErr := v.run()
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}

func (v *viewer) run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pumpEvents(v.screen, done)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			v.driver.Advance()
			if err := v.draw(); err != nil {
				return err
			}
		}
	}
}

type eventSource interface {
	PollEvent() tcell.Event
}

// pumpEvents forwards events from src until src is finalized or done is
// closed. The returned channel is closed when the pump stops.
func pumpEvents(src eventSource, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// handle applies one terminal event and reports whether the viewer should keep running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			v.driver.Resume()
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			v.driver.EndStroke()
			return true
		}
		x, y, h := v.painter.CellAt(ev.Position())
		size := v.driver.Sim().Size()
		if x >= size.W || y >= size.H {
			v.driver.EndStroke()
			return true
		}
		v.driver.StrokeBand(x, y, h)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		v.driver.TogglePause()
	case 'n':
		v.driver.StepOnce()
	case 'r':
		v.driver.Reset(v.driver.Seed())
	case 's':
		v.driver.Reset(time.Now().UnixNano())
	case '+', '=':
		v.driver.Brush().Grow(1)
	case '-':
		v.driver.Brush().Grow(-1)
	default:
		v.driver.SelectKey(r)
	}
	return true
}

func (v *viewer) draw() error {
	if err := v.driver.Frame(v.painter.Buffer()); err != nil {
		return err
	}
	v.screen.Clear()
	v.painter.Blit(v.screen, 0, 0)

	line := strings.Join(v.driver.Status().Lines(), "  ")
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	row := v.painter.Rows()
	for i, r := range line {
		v.screen.SetContent(i, row, r, nil, style)
	}
	v.screen.Show()
	return nil
}
