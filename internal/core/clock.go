package core

import "time"

// StepClock is a recurring trigger driven by an external host tick.
// It fires once every N host ticks while started, which lets fixed-rate
// hosts (a 60 TPS window, a headless loop) emulate a periodic timer.
type StepClock struct {
	every   int
	count   int
	running bool
	fired   int
}

// NewStepClock creates a clock that fires every n host ticks.
func NewStepClock(n int) *StepClock {
	if n <= 0 {
		n = 1
	}
	return &StepClock{every: n}
}

// TicksFor converts a wall-clock period into host ticks at the given rate,
// rounding to the nearest tick and never returning less than one.
func TicksFor(period time.Duration, tps int) int {
	if tps <= 0 {
		tps = 60
	}
	step := time.Second / time.Duration(tps)
	n := int((period + step/2) / step)
	if n < 1 {
		n = 1
	}
	return n
}

// Start arms the clock. Starting a running clock keeps its phase.
func (c *StepClock) Start() {
	if c.running {
		return
	}
	c.running = true
	c.count = 0
}

// Stop disarms the clock.
func (c *StepClock) Stop() {
	c.running = false
	c.count = 0
}

// Fired returns how many times the clock has fired since creation.
func (c *StepClock) Fired() int {
	return c.fired
}

// Advance consumes one host tick and reports whether the clock fires.
func (c *StepClock) Advance() bool {
	if !c.running {
		return false
	}
	c.count++
	if c.count < c.every {
		return false
	}
	c.count = 0
	c.fired++
	return true
}
