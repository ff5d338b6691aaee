package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappydof/internal/config"
	"github.com/vovakirdan/flappydof/internal/core"
	"github.com/vovakirdan/flappydof/internal/sim"
)

// Model is the Bubble Tea model for a play session.
type Model struct {
	cfg       config.Config
	seed      int64
	fixedSeed bool // Restarts reuse seed instead of drawing a new one
	logger    *log.Logger

	world  *sim.World
	hud    *HUD
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	input  core.InputFrame

	last     time.Time
	paused   bool
	quitting bool
	err      error
}

// NewModel creates a play model. A zero rt.Seed draws the seed from the
// clock, for this session and every restart.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		cfg:       cfg,
		seed:      rt.Seed,
		fixedSeed: rt.Seed != 0,
		logger:    logger,
		hud:       NewHUD(),
		screen:    core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 0)),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     core.NewInputFrame(),
	}
	m.help.Width = rt.ScreenW
	if !m.fixedSeed {
		m.seed = time.Now().UnixNano()
	}

	world, err := m.newWorld()
	if err != nil {
		return Model{}, err
	}
	m.world = world
	return m, nil
}

func (m Model) newWorld() (*sim.World, error) {
	m.logger.Info("session started", "seed", m.seed)
	return sim.New(m.cfg, m.hud, m.seed, sim.WithLogger(m.logger))
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.cfg.Timing.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused
		// The first frame after a pause must not see the paused time.
		m.last = time.Time{}

	case core.ActionRestart:
		if !m.world.Ended() {
			return m, nil
		}
		if !m.fixedSeed {
			m.seed = time.Now().UnixNano()
		}
		world, err := m.newWorld()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.world = world
		m.last = time.Time{}
		m.input.Clear()

	case core.ActionJump:
		if !m.paused {
			m.input.Set(core.ActionJump)
		}
	}

	return m, nil
}

// handleFrame advances the world by the real time since the previous frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.paused && !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	if _, err := m.world.Frame(elapsed, m.input); err != nil {
		m.logger.Error("simulation stopped", "err", err)
		m.err = err
		return m, tea.Quit
	}
	m.input.Clear()

	return m, frameCmd(m.cfg.Timing.FrameRate)
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// World returns the running session.
func (m Model) World() *sim.World {
	return m.world
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	layout, ok := NewLayout(m.screen.Width(), m.screen.Height())
	if !ok {
		m.screen.DrawTextCentered(0, "too small")
		return RenderScreen(m.screen)
	}

	m.hud.Draw(m.screen, layout.Status, m.world.State(), m.paused)
	m.screen.DrawBox(layout.Box)
	vp := Viewport{
		Field: layout.Field,
		HalfW: m.cfg.Screen.HalfWidth,
		HalfH: m.cfg.Screen.HalfSize,
	}
	DrawWorld(m.screen, vp, m.world.Transforms(nil))

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the error that stopped the simulation, if any.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
