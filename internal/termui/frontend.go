// internal/termui/frontend.go
package termui

import (
	"context"
	"log/slog"
	"time"

	"castle-defense/internal/app"
	"castle-defense/internal/config"
	"castle-defense/internal/defs"

	"github.com/gdamore/tcell/v2"
)

// Frontend runs a game inside a terminal.
type Frontend struct {
	screen  tcell.Screen
	game    *app.Game
	sound   *SoundManager
	log     *slog.Logger
	vp      Viewport
	paused  bool
	buttons tcell.ButtonMask // held buttons from the previous mouse event
}

// NewFrontend takes ownership of an initialized screen. sound may be nil.
func NewFrontend(screen tcell.Screen, g *app.Game, sound *SoundManager, log *slog.Logger) *Frontend {
	f := &Frontend{
		screen: screen,
		game:   g,
		sound:  sound,
		log:    log,
	}
	screen.EnableMouse()
	screen.HideCursor()
	f.resize()
	if sound != nil {
		g.EventDispatcher.SubscribeAll(sound)
	}
	return f
}

func (f *Frontend) resize() {
	cols, rows := f.screen.Size()
	f.vp = Viewport{
		Cols:   cols,
		Rows:   rows,
		Width:  f.game.Config.Canvas.Width,
		Height: f.game.Config.Canvas.Height,
	}
}

// Run drives the game until the player quits or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / config.TerminalFrameRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(f.screen, eventChan, done)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !f.HandleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			last = now
			f.Step(deltaTime)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// Step advances the game by deltaTime (clamped) and redraws.
func (f *Frontend) Step(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if !f.paused {
		f.game.Update(deltaTime)
	}
	Draw(f.screen, f.vp, f.game, f.paused)
	f.screen.Show()
}

// HandleEvent applies one input event. It returns false when the player quits.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P'):
			f.paused = !f.paused
		}

	case *tcell.EventMouse:
		f.handleMouse(ev)

	case *tcell.EventResize:
		f.resize()
		f.screen.Sync()
	}
	return true
}

// handleMouse places on press only; tcell repeats the mask while a button is held.
func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ f.buttons
	f.buttons = buttons
	if f.paused {
		return
	}

	var kind defs.TowerKind
	switch {
	case pressed&tcell.Button1 != 0:
		kind = defs.TowerBasic
	case pressed&tcell.Button2 != 0:
		kind = defs.TowerTriple
	default:
		return
	}

	col, row := ev.Position()
	x, y, ok := f.vp.ToWorld(col, row)
	if !ok {
		return
	}
	if !f.game.PlaceTower(kind, x, y) && f.log != nil {
		f.log.Debug("placement refused", "kind", kind.String(), "x", x, "y", y)
	}
}

func (f *Frontend) Paused() bool {
	return f.paused
}
