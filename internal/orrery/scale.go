package orrery

import (
	"math"
	"strings"

	"github.com/litescript/ls-orrery/internal/astro"
)

// ScaleMode names a strategy for mapping physical units to display space.
type ScaleMode string

const (
	// ScaleRealistic keeps true proportions; planets become tiny.
	ScaleRealistic ScaleMode = "realistic"

	// ScaleLogarithmic compresses the dynamic range of radii and distances.
	ScaleLogarithmic ScaleMode = "logarithmic"

	// ScaleArtistic exaggerates sizes and compresses distances for legibility.
	ScaleArtistic ScaleMode = "artistic"
)

// DefaultScaleMode is used when a mode name is not recognized.
const DefaultScaleMode = ScaleLogarithmic

// ScaleModes lists the modes in menu order.
var ScaleModes = []ScaleMode{ScaleRealistic, ScaleLogarithmic, ScaleArtistic}

// Title returns the capitalized mode name.
func (m ScaleMode) Title() string {
	s := string(m)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseScaleMode resolves a mode name or menu digit ("1".."3").
// Unrecognized input yields DefaultScaleMode and ok=false.
func ParseScaleMode(s string) (mode ScaleMode, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "realistic", "1":
		return ScaleRealistic, true
	case "logarithmic", "log", "2":
		return ScaleLogarithmic, true
	case "artistic", "3":
		return ScaleArtistic, true
	default:
		return DefaultScaleMode, false
	}
}

// NextScaleMode returns the mode after m in menu order, wrapping around.
func NextScaleMode(m ScaleMode) ScaleMode {
	for i, mode := range ScaleModes {
		if mode == m {
			return ScaleModes[(i+1)%len(ScaleModes)]
		}
	}
	return DefaultScaleMode
}

// ScalePolicy maps physical radius (km) and distance (AU) to display
// units. Radius and distance are always scaled independently.
type ScalePolicy interface {
	Mode() ScaleMode
	Radius(km float64) float64
	Distance(au float64) float64
}

// PolicyFor returns the strategy for a mode, falling back to the default.
func PolicyFor(mode ScaleMode) ScalePolicy {
	switch mode {
	case ScaleRealistic:
		return RealisticScale{}
	case ScaleArtistic:
		return ArtisticScale{}
	default:
		return LogarithmicScale{}
	}
}

// RealisticScale preserves true proportions.
type RealisticScale struct{}

func (RealisticScale) Mode() ScaleMode { return ScaleRealistic }

func (RealisticScale) Radius(km float64) float64 { return km / 100000 }

func (RealisticScale) Distance(au float64) float64 { return au }

// LogarithmicScale is the balanced default.
type LogarithmicScale struct{}

func (LogarithmicScale) Mode() ScaleMode { return ScaleLogarithmic }

func (LogarithmicScale) Radius(km float64) float64 {
	return 0.02 + math.Log10(km)*0.01
}

// Distance is exactly 0 at the origin.
func (LogarithmicScale) Distance(au float64) float64 {
	if au == 0 {
		return 0
	}
	return math.Log10(au*10+1) * 3
}

// ArtisticScale trades fidelity for visibility.
type ArtisticScale struct{}

func (ArtisticScale) Mode() ScaleMode { return ScaleArtistic }

func (ArtisticScale) Radius(km float64) float64 {
	return 0.05 + (km/100000)*2
}

func (ArtisticScale) Distance(au float64) float64 {
	return math.Pow(au, 0.7) * 5
}

// DisplayPosition rescales a raw position by the ratio the policy applies
// to one unit of distance. The direction of raw is preserved.
func DisplayPosition(p ScalePolicy, raw astro.Vec3) astro.Vec3 {
	return raw.Scale(p.Distance(1))
}
