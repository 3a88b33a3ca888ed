package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is what the platform drives. Implementations hold pure game logic;
// the platform owns timing, input mapping and terminal output.
type Game interface {
	// ID returns a unique identifier for this game, used in file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session. cfg.Timer must be stopped by the game
	// once the session ends.
	Reset(cfg core.RuntimeConfig)

	// HandleAction applies player input between ticks.
	HandleAction(a core.Action)

	// Step advances the simulation by one tick.
	Step() core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current session summary.
	State() core.GameState

	// TickInterval is the fixed period between Steps.
	TickInterval() time.Duration

	// DebugState describes the session for screenshots.
	DebugState() string
}

// helpHeight is the number of rows the short help line takes below the game.
const helpHeight = 1

// Options customizes a Model. Zero values fall back to defaults.
type Options struct {
	Logger        *log.Logger
	Painter       *Painter
	ScreenshotDir string // Defaults to ~/.snake/screenshots

	// NoScreenshots disables ctrl+s. Remote sessions must not write files
	// on the host.
	NoScreenshots bool
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game    Game
	screen  *core.Screen
	painter *Painter
	config  core.RuntimeConfig
	clock   *clock
	keys    KeyMap
	help    help.Model
	state   core.GameState
	logger  *log.Logger

	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Painter == nil {
		opts.Painter = NewPainter(lipgloss.DefaultRenderer())
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	}

	clk := newClock(game.TickInterval(), 1)
	cfg.Timer = clk

	h := help.New()
	h.Width = cfg.ScreenW

	keys := DefaultKeyMap()
	keys.Screenshot.SetEnabled(!opts.NoScreenshots)

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		painter:       opts.Painter,
		config:        cfg,
		clock:         clk,
		keys:          keys,
		help:          h,
		logger:        opts.Logger,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init starts the first session and the clock.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), m.clock.Next())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Direction keys reach the game
// immediately; the game applies the latest one on its next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		return m.restart()
	case core.ActionNone:
		return m, nil
	default:
		m.logger.Debug("input", "action", action)
		m.game.HandleAction(action)
		return m, nil
	}
}

// handleResize adapts the screen buffer. Game state is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game and schedules the next tick while it runs.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.owns(msg) {
		return m, nil
	}

	wasOver := m.state.GameOver
	result := m.game.Step()
	m.state = result.State

	if m.state.GameOver && !wasOver {
		m.keys.Restart.SetEnabled(true)
		m.logger.Info("game over", "game", m.game.ID(), "score", m.state.Score)
	}

	return m, m.clock.Next()
}

// restart begins a new session with a fresh seed and clock.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.clock.Stop()
	m.clock = newClock(m.game.TickInterval(), m.clock.gen+1)
	m.config.Timer = m.clock
	m.config.Seed = time.Now().UnixNano()

	m.game.Reset(m.config)
	m.state = m.game.State()
	m.keys.Restart.SetEnabled(false)
	m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)

	return m, m.clock.Next()
}

// saveScreenshot writes the current frame and game state to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	content := m.screen.String() + "\n\n" + m.game.DebugState()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// The full help spans several rows, so the board gives up whatever
	// space the help currently needs.
	helpView := m.help.View(m.keys)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-lipgloss.Height(helpView))

	m.game.Render(m.screen)
	return m.painter.Paint(m.screen) + "\n" + helpView
}

// Run starts a local Bubble Tea program for the game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
