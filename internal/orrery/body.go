package orrery

import (
	"fmt"
	"math"

	"github.com/litescript/ls-orrery/internal/astro"
)

// Body is one celestial object: fixed physical constants plus the orbital
// phase and raw position that change every step.
type Body struct {
	name       string
	radiusKm   float64
	distanceAU float64
	periodDays float64
	color      string
	tilt       float64 // radians
	central    bool

	phase      float64    // radians, never wrapped
	startPhase float64
	position   astro.Vec3 // raw, in AU
}

// newBody builds a body from a validated spec.
func newBody(spec BodySpec, phase float64) *Body {
	b := &Body{
		name:       spec.Name,
		radiusKm:   spec.RadiusKm,
		distanceAU: spec.DistanceAU,
		periodDays: spec.PeriodDays,
		color:      spec.Color,
		tilt:       astro.DegToRad(spec.TiltDeg),
		central:    spec.IsCentral(),
	}
	if !b.central {
		b.phase = phase
		b.startPhase = phase
		b.position = b.positionAt(phase)
	}
	return b
}

// Update advances the orbital phase by dt simulated days and returns the
// new raw position. Calling it on the central body is a caller bug.
func (b *Body) Update(dt float64) astro.Vec3 {
	if b.central {
		panic(fmt.Sprintf("orrery: central body %q must not be advanced", b.name))
	}

	angularVelocity := 2 * math.Pi / b.periodDays
	b.phase += angularVelocity * dt
	b.position = b.positionAt(b.phase)
	return b.position
}

// positionAt computes the raw position for a phase, tilting the orbital
// plane about the X axis.
func (b *Body) positionAt(phase float64) astro.Vec3 {
	x := b.distanceAU * math.Cos(phase)
	y := b.distanceAU * math.Sin(phase)
	return astro.Vec3{
		X: x,
		Y: y * math.Cos(b.tilt),
		Z: y * math.Sin(b.tilt),
	}
}

// Name returns the unique body name.
func (b *Body) Name() string { return b.name }

// RadiusKm returns the physical radius.
func (b *Body) RadiusKm() float64 { return b.radiusKm }

// DistanceAU returns the orbital distance from the central body.
func (b *Body) DistanceAU() float64 { return b.distanceAU }

// PeriodDays returns the orbital period.
func (b *Body) PeriodDays() float64 { return b.periodDays }

// Color returns the display color as #RRGGBB.
func (b *Body) Color() string { return b.color }

// Tilt returns the orbital plane tilt in radians.
func (b *Body) Tilt() float64 { return b.tilt }

// Central reports whether this is the body everything else orbits.
func (b *Body) Central() bool { return b.central }

// Phase returns the accumulated orbital angle in radians.
func (b *Body) Phase() float64 { return b.phase }

// Position returns the current raw position in AU.
func (b *Body) Position() astro.Vec3 { return b.position }

// Revolutions returns the number of full orbits completed since the body
// was created.
func (b *Body) Revolutions() int {
	if b.central {
		return 0
	}
	return int(math.Floor((b.phase - b.startPhase) / (2 * math.Pi)))
}
