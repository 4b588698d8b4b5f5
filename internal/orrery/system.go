// Package orrery simulates bodies on fixed tilted circular orbits around a
// central body, scales them into a bounded display volume and keeps short
// trails of their recent display positions.
package orrery

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
)

// Config holds construction parameters for a System.
type Config struct {
	ScaleMode    ScaleMode
	TrailLength  int
	Speed        float64
	Seed         uint64
	RandomPhases bool // false starts every orbiting body at phase 0
}

// DefaultConfig returns the configuration the interactive program uses.
func DefaultConfig() Config {
	return Config{
		ScaleMode:    DefaultScaleMode,
		TrailLength:  DefaultTrailLength,
		Speed:        DefaultSpeed,
		Seed:         uint64(time.Now().UnixNano()),
		RandomPhases: true,
	}
}

// System owns the bodies, their trails, the active scale policy and the
// clock. It has a single writer: the loop that calls Advance.
type System struct {
	bodies []*Body // central body first
	index  map[string]int
	trails map[string]*TrailBuffer
	policy ScalePolicy
	clock  *Clock
}

// New validates the catalog and builds a System from it.
func New(cat Catalog, cfg Config) (*System, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	mode, _ := ParseScaleMode(string(cfg.ScaleMode))
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	ordered := cat.centralFirst()
	s := &System{
		bodies: make([]*Body, 0, len(ordered)),
		index:  make(map[string]int, len(ordered)),
		trails: make(map[string]*TrailBuffer, len(ordered)-1),
		policy: PolicyFor(mode),
		clock:  NewClock(cfg.Speed),
	}

	for i, spec := range ordered {
		var phase float64
		if cfg.RandomPhases && !spec.IsCentral() {
			phase = rng.Float64() * 2 * math.Pi
		}
		b := newBody(spec, phase)
		s.bodies = append(s.bodies, b)
		s.index[b.name] = i
		if !b.central {
			s.trails[b.name] = NewTrailBuffer(cfg.TrailLength)
		}
	}

	return s, nil
}

// Advance runs one tick. The frame number from the driver is not used. While paused
// nothing changes; otherwise every orbiting body is updated in catalog
// order and its display position pushed onto its trail.
func (s *System) Advance(_ int) {
	dt, ok := s.clock.Tick()
	if !ok {
		return
	}

	for _, b := range s.bodies[1:] {
		raw := b.Update(dt)
		s.trails[b.name].Push(DisplayPosition(s.policy, raw))
	}
}

// TogglePause flips the pause state and returns it.
func (s *System) TogglePause() bool { return s.clock.TogglePause() }

// SetSpeed sets the per-tick step (clamped) and returns the effective value.
func (s *System) SetSpeed(v float64) float64 { return s.clock.SetSpeed(v) }

// SetScalePolicy replaces the scale strategy. Trails are cleared because
// their points were produced by the previous policy.
func (s *System) SetScalePolicy(p ScalePolicy) {
	if p == nil {
		p = PolicyFor(DefaultScaleMode)
	}
	s.policy = p
	for _, t := range s.trails {
		t.Reset()
	}
}

// ScalePolicy returns the active scale strategy.
func (s *System) ScalePolicy() ScalePolicy { return s.policy }

// ScaleMode returns the active scale mode name.
func (s *System) ScaleMode() ScaleMode { return s.policy.Mode() }

// Paused returns the pause state.
func (s *System) Paused() bool { return s.clock.Paused() }

// Speed returns the per-tick step in simulated days.
func (s *System) Speed() float64 { return s.clock.Speed() }

// Elapsed returns simulated days advanced so far.
func (s *System) Elapsed() float64 { return s.clock.Elapsed() }

// Ticks returns the number of advancing ticks.
func (s *System) Ticks() int { return s.clock.Ticks() }

// Len returns the number of bodies including the central one.
func (s *System) Len() int { return len(s.bodies) }

// BodyState is a read-only view of one body for renderers.
type BodyState struct {
	Name        string
	Color       string
	Central     bool
	RadiusKm    float64
	DistanceAU  float64
	PeriodDays  float64
	Tilt        float64 // radians
	Phase       float64
	Revolutions int

	Raw          astro.Vec3 // AU
	Scaled       astro.Vec3 // display units
	ScaledRadius float64
	OrbitRadius  float64      // display radius of the static orbit ring
	Trail        []astro.Vec3 // oldest to newest; nil for the central body
}

func (s *System) stateOf(b *Body) BodyState {
	st := BodyState{
		Name:         b.name,
		Color:        b.color,
		Central:      b.central,
		RadiusKm:     b.radiusKm,
		DistanceAU:   b.distanceAU,
		PeriodDays:   b.periodDays,
		Tilt:         b.tilt,
		Phase:        b.phase,
		Revolutions:  b.Revolutions(),
		Raw:          b.position,
		Scaled:       DisplayPosition(s.policy, b.position),
		ScaledRadius: s.policy.Radius(b.radiusKm),
		OrbitRadius:  s.policy.Distance(b.distanceAU),
	}
	if t, ok := s.trails[b.name]; ok {
		st.Trail = t.Snapshot()
	}
	return st
}

// Bodies returns the state of every body, central body first.
func (s *System) Bodies() []BodyState {
	out := make([]BodyState, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = s.stateOf(b)
	}
	return out
}

// Body returns the state of a body by name.
func (s *System) Body(name string) (BodyState, bool) {
	i, ok := s.index[name]
	if !ok {
		return BodyState{}, false
	}
	return s.stateOf(s.bodies[i]), true
}

// Trail returns a copy of a body's trail, or nil for unknown names and
// the central body.
func (s *System) Trail(name string) []astro.Vec3 {
	t, ok := s.trails[name]
	if !ok {
		return nil
	}
	return t.Snapshot()
}

// MaxOrbitRadius returns the largest scaled orbital distance, used by
// renderers to size the view.
func (s *System) MaxOrbitRadius() float64 {
	var r float64
	for _, b := range s.bodies {
		r = max(r, s.policy.Distance(b.distanceAU))
	}
	return r
}

// MaxDisplayRadius returns the largest distance from the origin a body or
// trail point can reach in display space. Orbits are circular, so this is
// the outermost orbital distance mapped through DisplayPosition.
func (s *System) MaxDisplayRadius() float64 {
	var d float64
	for _, b := range s.bodies {
		d = max(d, b.distanceAU)
	}
	return d * s.policy.Distance(1)
}
