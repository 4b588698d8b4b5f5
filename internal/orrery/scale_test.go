package orrery

import (
	"math"
	"testing"

	"github.com/litescript/ls-orrery/internal/astro"
)

var (
	referenceRadii     = []float64{2440, 3390, 6052, 6371, 24622, 25362, 58232, 69911, 696000}
	referenceDistances = []float64{0, 0.39, 0.72, 1.0, 1.52, 5.20, 9.54, 19.19, 30.07}
)

func TestScalePolicyMonotonic(t *testing.T) {
	for _, mode := range ScaleModes {
		t.Run(string(mode), func(t *testing.T) {
			p := PolicyFor(mode)

			for i := 1; i < len(referenceRadii); i++ {
				lo, hi := p.Radius(referenceRadii[i-1]), p.Radius(referenceRadii[i])
				if hi < lo {
					t.Errorf("Radius(%v) = %v < Radius(%v) = %v",
						referenceRadii[i], hi, referenceRadii[i-1], lo)
				}
			}
			for i := 1; i < len(referenceDistances); i++ {
				lo, hi := p.Distance(referenceDistances[i-1]), p.Distance(referenceDistances[i])
				if hi < lo {
					t.Errorf("Distance(%v) = %v < Distance(%v) = %v",
						referenceDistances[i], hi, referenceDistances[i-1], lo)
				}
			}
		})
	}
}

func TestScalePolicyValues(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"realistic radius", RealisticScale{}.Radius(6371), 0.06371},
		{"realistic distance", RealisticScale{}.Distance(5.2), 5.2},
		{"log radius", LogarithmicScale{}.Radius(1000), 0.05},
		{"log distance Jupiter", LogarithmicScale{}.Distance(5.20), math.Log10(53) * 3},
		{"log distance 1 AU", LogarithmicScale{}.Distance(1), math.Log10(11) * 3},
		{"artistic radius", ArtisticScale{}.Radius(100000), 2.05},
		{"artistic distance 1 AU", ArtisticScale{}.Distance(1), 5},
		{"artistic distance 0", ArtisticScale{}.Distance(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	// Jupiter in logarithmic mode lands a little above 5 display units
	if got := (LogarithmicScale{}).Distance(5.20); math.Abs(got-5.1728) > 1e-3 {
		t.Errorf("log distance at 5.20 AU = %v, want ≈5.1728", got)
	}
}

func TestLogarithmicDistanceAtOrigin(t *testing.T) {
	got := LogarithmicScale{}.Distance(0)
	if got != 0 || math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("Distance(0) = %v, want exactly 0", got)
	}
}

func TestParseScaleMode(t *testing.T) {
	tests := []struct {
		in     string
		want   ScaleMode
		wantOK bool
	}{
		{"realistic", ScaleRealistic, true},
		{"Logarithmic", ScaleLogarithmic, true},
		{" ARTISTIC ", ScaleArtistic, true},
		{"1", ScaleRealistic, true},
		{"2", ScaleLogarithmic, true},
		{"3", ScaleArtistic, true},
		{"", ScaleLogarithmic, false},
		{"cubist", ScaleLogarithmic, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseScaleMode(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseScaleMode(%q) = (%s, %v), want (%s, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPolicyForUnknownFallsBack(t *testing.T) {
	if got := PolicyFor("bogus").Mode(); got != DefaultScaleMode {
		t.Errorf("PolicyFor(bogus).Mode() = %s, want %s", got, DefaultScaleMode)
	}
}

func TestNextScaleModeCycles(t *testing.T) {
	m := ScaleRealistic
	seen := []ScaleMode{m}
	for i := 0; i < 3; i++ {
		m = NextScaleMode(m)
		seen = append(seen, m)
	}
	want := []ScaleMode{ScaleRealistic, ScaleLogarithmic, ScaleArtistic, ScaleRealistic}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("step %d = %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestScaleModeTitle(t *testing.T) {
	if got := ScaleLogarithmic.Title(); got != "Logarithmic" {
		t.Errorf("Title() = %q, want Logarithmic", got)
	}
}

func TestDisplayPositionUsesUnitRatio(t *testing.T) {
	raw := astro.Vec3{X: 3, Y: -4, Z: 0.5}

	for _, mode := range ScaleModes {
		p := PolicyFor(mode)
		got := DisplayPosition(p, raw)
		ratio := p.Distance(1)

		want := astro.Vec3{X: 3 * ratio, Y: -4 * ratio, Z: 0.5 * ratio}
		if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Z-want.Z) > 1e-12 {
			t.Errorf("%s: DisplayPosition = %v, want %v", mode, got, want)
		}
	}
}
