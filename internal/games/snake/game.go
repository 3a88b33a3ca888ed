// Package snake implements the classic single-player Snake game: a snake
// crawls across a fixed grid, grows by eating food and dies on hitting a wall
// or itself.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game adapts a State to the terminal platform. Each Reset starts a new
// session with a fresh State.
type Game struct {
	theme Theme
	state *State
}

// New creates a Snake game drawn with the given theme.
func New(theme Theme) *Game {
	return &Game{theme: theme}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// TickInterval is how often the platform should call Step.
func (g *Game) TickInterval() time.Duration {
	return TickInterval
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(rand.New(rand.NewSource(cfg.Seed)), cfg.Timer)
}

// HandleAction steers the snake. Non-directional actions are ignored.
func (g *Game) HandleAction(a core.Action) {
	if g.state == nil {
		return
	}
	if dir, ok := actionDirection(a); ok {
		g.state.HandleDirectionInput(dir)
	}
}

func actionDirection(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	if g.state != nil {
		g.state.Tick()
	}
	return core.StepResult{State: g.State()}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	frame, ok := boardFrame(dst)
	if !ok {
		renderTooSmall(dst, g.theme)
		return
	}

	dst.DrawBox(frame, g.theme.Border)
	Draw(newScreenCanvas(dst, frame.Inset(1), g.theme), g.state, g.theme)
}

// State returns the platform summary of the current session.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: !g.state.IsRunning(),
	}
}

// DebugState describes the current session for screenshots.
func (g *Game) DebugState() string {
	if g.state == nil {
		return ""
	}
	return g.state.DebugState()
}
