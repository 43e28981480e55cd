package termui

import (
	"testing"
	"time"

	"castle-defense/internal/app"
	"castle-defense/internal/config"
	"castle-defense/internal/defs"
	"castle-defense/internal/event"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gridCanvas struct {
	cells map[[2]int]rune
}

func (g *gridCanvas) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	g.cells[[2]int{x, y}] = primary
}

func (g *gridCanvas) count(r rune) int {
	n := 0
	for _, c := range g.cells {
		if c == r {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T) *app.Game {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 3
	cfg.Economy.StartGold = 1000
	return app.NewGame(cfg, nil)
}

func TestViewportRoundTrip(t *testing.T) {
	vp := Viewport{Cols: 80, Rows: 21, Width: 800, Height: 400}

	x, y, ok := vp.ToWorld(10, 1)
	require.True(t, ok)
	assert.InDelta(t, 105.0, x, 1e-9)
	assert.InDelta(t, 10.0, y, 1e-9)

	col, row := vp.ToCell(x, y)
	assert.Equal(t, 10, col)
	assert.Equal(t, 1, row)

	_, _, ok = vp.ToWorld(10, 0)
	assert.False(t, ok, "HUD row is not on the field")
	_, _, ok = vp.ToWorld(80, 5)
	assert.False(t, ok)
}

func TestDrawLayers(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.PlaceTower(defs.TowerBasic, 100, 100))
	require.True(t, g.PlaceTower(defs.TowerTriple, 300, 100))

	canvas := &gridCanvas{cells: map[[2]int]rune{}}
	vp := Viewport{Cols: 80, Rows: 21, Width: 800, Height: 400}
	Draw(canvas, vp, g, false)

	assert.Equal(t, 1, canvas.count('■'))
	assert.Equal(t, 1, canvas.count('▲'))
	assert.Positive(t, canvas.count(runePath))
	assert.Equal(t, 'C', canvas.cells[[2]int{1, 0}])
}

func TestHUDLine(t *testing.T) {
	assert.Contains(t, HUDLine(4, 120), "Castle Health: 4  Gold: 120")
}

func newTestFrontend(t *testing.T) (*Frontend, *app.Game) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 21)

	g := newTestGame(t)
	return NewFrontend(screen, g, nil, nil), g
}

func TestFrontendMousePlacesOnPressOnly(t *testing.T) {
	f, g := newTestFrontend(t)

	assert.True(t, f.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone)))
	assert.True(t, f.HandleEvent(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))) // drag
	assert.True(t, f.HandleEvent(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone)))
	require.Len(t, g.ECS.Towers, 1)
	assert.Equal(t, defs.TowerBasic, g.ECS.Towers[0].Kind)

	f.HandleEvent(tcell.NewEventMouse(30, 8, tcell.Button2, tcell.ModNone))
	require.Len(t, g.ECS.Towers, 2)
	assert.Equal(t, defs.TowerTriple, g.ECS.Towers[1].Kind)

	f.HandleEvent(tcell.NewEventMouse(30, 0, tcell.ButtonNone, tcell.ModNone))
	f.HandleEvent(tcell.NewEventMouse(30, 0, tcell.Button1, tcell.ModNone)) // HUD row
	assert.Len(t, g.ECS.Towers, 2)
}

func TestFrontendPauseFreezesTime(t *testing.T) {
	f, g := newTestFrontend(t)

	f.Step(0.05)
	before := g.GameTime()
	assert.InDelta(t, 0.05, before, 1e-9)

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	require.True(t, f.Paused())
	f.Step(0.05)
	assert.Equal(t, before, g.GameTime())

	f.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	assert.Empty(t, g.ECS.Towers, "clicks are ignored while paused")

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	f.Step(1)
	assert.InDelta(t, before+config.MaxDeltaTime, g.GameTime(), 1e-9, "step is clamped")
}

func TestFrontendQuitKeys(t *testing.T) {
	f, _ := newTestFrontend(t)
	assert.False(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestToneFor(t *testing.T) {
	tone, ok := ToneFor(event.EnemyKilled)
	require.True(t, ok)
	assert.Positive(t, tone.Freq)

	_, ok = ToneFor(event.ProjectileFired)
	assert.False(t, ok)
}

func TestSoundManagerSilentWithoutDevice(t *testing.T) {
	sm := NewSoundManager()
	assert.False(t, sm.Enabled())
	sm.OnEvent(event.Event{Type: event.EnemyKilled})
	sm.Close()
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	out := make(chan tcell.Event) // nobody reads
	done := make(chan struct{})
	returned := make(chan struct{})
	go func() {
		pollEvents(screen, out, done)
		close(returned)
	}()

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	close(done)

	assert.Eventually(t, func() bool {
		select {
		case <-returned:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
