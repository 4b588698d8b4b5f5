package orrery

import "math"

// Speed bounds, in simulated days per tick.
const (
	MinSpeed     = 0.1
	MaxSpeed     = 10.0
	DefaultSpeed = 1.0
)

// Clock decides how much simulated time each tick advances. It is driven
// by the caller's tick cadence, not wall-clock time.
type Clock struct {
	paused  bool
	step    float64
	elapsed float64 // simulated days across advancing ticks
	ticks   int
}

// NewClock creates a running clock with the given step, clamped.
func NewClock(step float64) *Clock {
	c := &Clock{}
	c.SetSpeed(step)
	return c
}

// Tick returns the step to apply this frame, or ok=false while paused.
func (c *Clock) Tick() (dt float64, ok bool) {
	if c.paused {
		return 0, false
	}
	c.elapsed += c.step
	c.ticks++
	return c.step, true
}

// SetSpeed sets the per-tick step, clamped to [MinSpeed, MaxSpeed].
// NaN resets to DefaultSpeed. It returns the effective step.
func (c *Clock) SetSpeed(v float64) float64 {
	switch {
	case math.IsNaN(v):
		v = DefaultSpeed
	case v < MinSpeed:
		v = MinSpeed
	case v > MaxSpeed:
		v = MaxSpeed
	}
	c.step = v
	return v
}

// TogglePause flips the pause flag and returns the new state.
func (c *Clock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Pause stops time advancement.
func (c *Clock) Pause() { c.paused = true }

// Resume continues time advancement.
func (c *Clock) Resume() { c.paused = false }

// Paused returns the pause state.
func (c *Clock) Paused() bool { return c.paused }

// Speed returns the per-tick step.
func (c *Clock) Speed() float64 { return c.step }

// Elapsed returns total simulated days advanced.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// Ticks returns the number of ticks that advanced time.
func (c *Clock) Ticks() int { return c.ticks }
