// Package tui provides the Bubble Tea front-end for the game.
// It owns the frame and spawn loops, input mapping and terminal rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg and spawnMsg carry the generation of the loop that produced them.
type frameMsg struct{ gen uint64 }

type spawnMsg struct{ gen uint64 }

// loopClock is a flappy.Clock backed by chained tea.Tick commands.
// Bubble Tea cannot cancel a scheduled command, so each Start or Stop bumps
// the generation and messages from an older generation are dropped.
type loopClock struct {
	interval time.Duration
	wrap     func(gen uint64) tea.Msg
	gen      uint64
	running  bool
	armed    bool // Started but first tick not yet scheduled
}

func newFrameClock(tickRate int) *loopClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &loopClock{
		interval: time.Second / time.Duration(tickRate),
		wrap:     func(gen uint64) tea.Msg { return frameMsg{gen: gen} },
	}
}

func newSpawnClock(interval time.Duration) *loopClock {
	return &loopClock{
		interval: interval,
		wrap:     func(gen uint64) tea.Msg { return spawnMsg{gen: gen} },
	}
}

func (c *loopClock) Start() {
	c.gen++
	c.running = true
	c.armed = true
}

func (c *loopClock) Stop() {
	c.gen++
	c.running = false
	c.armed = false
}

// tick schedules the next message for the current generation.
func (c *loopClock) tick() tea.Cmd {
	gen := c.gen
	wrap := c.wrap
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return wrap(gen)
	})
}

// take returns the first tick command after Start, once.
func (c *loopClock) take() tea.Cmd {
	if !c.armed {
		return nil
	}
	c.armed = false
	return c.tick()
}

// accept reports whether a message of generation gen is still live.
func (c *loopClock) accept(gen uint64) bool {
	return c.running && gen == c.gen
}
