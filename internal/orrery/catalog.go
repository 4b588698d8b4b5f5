package orrery

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// BodySpec is one catalog entry.
type BodySpec struct {
	Name       string  `json:"name"`
	RadiusKm   float64 `json:"radius_km"`
	DistanceAU float64 `json:"distance_au"`
	PeriodDays float64 `json:"period_days"`
	Color      string  `json:"color"`
	TiltDeg    float64 `json:"tilt_deg"`
}

// IsCentral reports whether the entry describes the central body
// (distance 0 and period 0).
func (s BodySpec) IsCentral() bool {
	return s.DistanceAU == 0 && s.PeriodDays == 0
}

// Catalog is the ordered list of bodies a System is built from.
type Catalog []BodySpec

// DefaultCatalog returns the Sun and the eight planets.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "Sun", RadiusKm: 696000, DistanceAU: 0, PeriodDays: 0, Color: "#FDB813", TiltDeg: 0},
		{Name: "Mercury", RadiusKm: 2440, DistanceAU: 0.39, PeriodDays: 88, Color: "#8C7853", TiltDeg: 7.0},
		{Name: "Venus", RadiusKm: 6052, DistanceAU: 0.72, PeriodDays: 225, Color: "#FFC649", TiltDeg: 3.4},
		{Name: "Earth", RadiusKm: 6371, DistanceAU: 1.0, PeriodDays: 365, Color: "#4169E1", TiltDeg: 0.0},
		{Name: "Mars", RadiusKm: 3390, DistanceAU: 1.52, PeriodDays: 687, Color: "#CD5C5C", TiltDeg: 1.9},
		{Name: "Jupiter", RadiusKm: 69911, DistanceAU: 5.20, PeriodDays: 4333, Color: "#DAA520", TiltDeg: 1.3},
		{Name: "Saturn", RadiusKm: 58232, DistanceAU: 9.54, PeriodDays: 10759, Color: "#F4A460", TiltDeg: 2.5},
		{Name: "Uranus", RadiusKm: 25362, DistanceAU: 19.19, PeriodDays: 30687, Color: "#4FD0E0", TiltDeg: 0.8},
		{Name: "Neptune", RadiusKm: 24622, DistanceAU: 30.07, PeriodDays: 60190, Color: "#4169E1", TiltDeg: 1.8},
	}
}

// LoadCatalog decodes a JSON array of body specs and validates it.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var cat Catalog
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks every entry so that bad data is rejected before the
// first simulation step rather than failing inside one.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(c))
	centrals := 0

	for i, s := range c {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if seen[name] {
			return fmt.Errorf("entry %d %q: %w", i, name, ErrDuplicateName)
		}
		seen[name] = true

		if !(s.RadiusKm > 0) || math.IsInf(s.RadiusKm, 0) {
			return fmt.Errorf("entry %q radius %v: %w", name, s.RadiusKm, ErrInvalidRadius)
		}
		if _, err := colorful.Hex(s.Color); err != nil {
			return fmt.Errorf("entry %q color %q: %w", name, s.Color, ErrInvalidColor)
		}

		if s.IsCentral() {
			centrals++
			continue
		}
		// NaN fails both comparisons, so it is rejected here too
		if !(s.PeriodDays > 0) || math.IsInf(s.PeriodDays, 0) {
			return fmt.Errorf("entry %q period %v: %w", name, s.PeriodDays, ErrInvalidPeriod)
		}
		if !(s.DistanceAU > 0) || math.IsInf(s.DistanceAU, 0) {
			return fmt.Errorf("entry %q distance %v: %w", name, s.DistanceAU, ErrInvalidDistance)
		}
	}

	switch {
	case centrals == 0:
		return ErrNoCentralBody
	case centrals > 1:
		return fmt.Errorf("%d central entries: %w", centrals, ErrMultipleCentral)
	}
	return nil
}

// centralFirst returns a copy with the central entry moved to the front,
// keeping the relative order of the others.
func (c Catalog) centralFirst() Catalog {
	out := make(Catalog, 0, len(c))
	for _, s := range c {
		if s.IsCentral() {
			out = append(out, s)
		}
	}
	for _, s := range c {
		if !s.IsCentral() {
			out = append(out, s)
		}
	}
	return out
}
