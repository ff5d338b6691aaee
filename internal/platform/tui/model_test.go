package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappydof/internal/config"
	"github.com/vovakirdan/flappydof/internal/core"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.Default(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

// playUntilEnd feeds one-second frames until the unattended player falls out.
func playUntilEnd(t *testing.T, m Model, start time.Time) (Model, time.Time) {
	t.Helper()
	now := start
	for range 40 {
		m, _ = update(t, m, FrameMsg(now))
		if m.World().Ended() {
			return m, now
		}
		now = now.Add(time.Second)
	}
	t.Fatal("session did not end")
	return m, now
}

func TestModelFirstFrameRunsNoTicks(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, FrameMsg(time.Unix(100, 0)))
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}
	if m.World().Tick() != 0 {
		t.Errorf("Tick = %d, expected 0 on the first frame", m.World().Tick())
	}

	m, _ = update(t, m, FrameMsg(time.Unix(100, 0).Add(4*time.Second/64)))
	if m.World().Tick() != 4 {
		t.Errorf("Tick = %d, expected 4", m.World().Tick())
	}
}

func TestModelJump(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(100, 0)
	m, _ = update(t, m, FrameMsg(start))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, FrameMsg(start.Add(time.Second/64)))

	p, err := m.World().Player()
	if err != nil {
		t.Fatal(err)
	}
	if p.Velocity <= 0 {
		t.Errorf("velocity = %v, expected the player to rise after a jump", p.Velocity)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(100, 0)
	m, _ = update(t, m, FrameMsg(start))

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, FrameMsg(start.Add(time.Second)))
	m, _ = update(t, m, FrameMsg(start.Add(2*time.Second)))
	if m.World().Tick() != 0 {
		t.Errorf("Tick = %d, expected no ticks while paused", m.World().Tick())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show the paused status")
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, FrameMsg(start.Add(3*time.Second)))
	if m.World().Tick() != 0 {
		t.Errorf("Tick = %d, paused time must not be replayed", m.World().Tick())
	}
	m, _ = update(t, m, FrameMsg(start.Add(3*time.Second+time.Second/64)))
	if m.World().Tick() != 1 {
		t.Errorf("Tick = %d, expected 1 after resuming", m.World().Tick())
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t)

	// Restart is ignored while the session runs
	before := m.World()
	m, _ = update(t, m, runeKey('r'))
	if m.World() != before {
		t.Error("restart should be ignored before the game ends")
	}

	m, _ = playUntilEnd(t, m, time.Unix(100, 0))
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view should show the game over status")
	}

	m, _ = update(t, m, runeKey('r'))
	if m.World().Ended() {
		t.Error("restart should start a fresh session")
	}
	if m.World().Tick() != 0 {
		t.Errorf("Tick = %d, expected 0 after restart", m.World().Tick())
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("score display should be reset")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelStopsOnSimulationError(t *testing.T) {
	cfg := config.Default()
	cfg.Player.SpriteHeight = 0
	m, err := NewModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	start := time.Unix(100, 0)
	m, _ = update(t, m, FrameMsg(start))
	m, cmd := update(t, m, FrameMsg(start.Add(time.Second/64)))
	if m.Err() == nil {
		t.Fatal("expected the missing sprite metadata to stop the session")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
}

func TestModelUsesConfiguredTickRate(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.TickRate = 128
	m, err := NewModel(cfg, core.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	start := time.Unix(100, 0)
	m, _ = update(t, m, FrameMsg(start))
	m, _ = update(t, m, FrameMsg(start.Add(time.Second/64)))
	if m.World().Tick() != 2 {
		t.Errorf("Tick = %d, expected 2 ticks at 128 Hz in 1/64 s", m.World().Tick())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 12, Height: 4})
	if !strings.Contains(m.View(), "small") {
		t.Error("a tiny terminal should show the size warning")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}
