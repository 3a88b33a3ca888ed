// Package tui provides the Bubble Tea integration: the fixed-interval clock,
// key bindings, screen rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	gen  uint64
}

// clock drives a game at a fixed interval until stopped. It satisfies
// core.Timer so the game can stop it when the session ends.
type clock struct {
	interval time.Duration
	gen      uint64
	stopped  bool
}

func newClock(interval time.Duration, gen uint64) *clock {
	return &clock{interval: interval, gen: gen}
}

// Stop prevents any further ticks from being scheduled.
func (c *clock) Stop() {
	c.stopped = true
}

// Stopped reports whether the clock has been stopped.
func (c *clock) Stopped() bool {
	return c.stopped
}

// Next schedules the next tick, or returns nil once stopped.
func (c *clock) Next() tea.Cmd {
	if c.stopped {
		return nil
	}
	gen := c.gen
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, gen: gen}
	})
}

// owns reports whether a tick was scheduled by this clock.
func (c *clock) owns(msg TickMsg) bool {
	return msg.gen == c.gen
}
