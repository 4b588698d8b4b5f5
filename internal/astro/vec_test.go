package astro

import (
	"math"
	"testing"
)

func TestVec3Norm(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"zero", Vec3{0, 0, 0}, 0},
		{"unit x", Vec3{1, 0, 0}, 1},
		{"unit z", Vec3{0, 0, 1}, 1},
		{"3-4-5", Vec3{3, 4, 0}, 5},
		{"negative", Vec3{-3, -4, 0}, 5},
		{"3D", Vec3{1, 2, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Norm()
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3ScaleKeepsDirection(t *testing.T) {
	v := Vec3{1, 2, -3}
	got := v.Scale(2.5)

	if got != (Vec3{2.5, 5, -7.5}) {
		t.Errorf("Scale(2.5) = %v", got)
	}

	// Direction is preserved: cross product with the original is zero
	cx := v.Y*got.Z - v.Z*got.Y
	cy := v.Z*got.X - v.X*got.Z
	cz := v.X*got.Y - v.Y*got.X
	if math.Abs(cx)+math.Abs(cy)+math.Abs(cz) > 1e-12 {
		t.Errorf("scaled vector changed direction: cross = (%v, %v, %v)", cx, cy, cz)
	}
}

func TestVec3Sub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{0.5, -1, 4}

	if got := a.Sub(b); got != (Vec3{0.5, 3, -1}) {
		t.Errorf("a - b = %v", got)
	}
	if got := a.Sub(a).Norm(); got != 0 {
		t.Errorf("|a - a| = %v, want 0", got)
	}
}

func TestVec3Rotate(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"Z 90deg", Vec3{1, 0, 0}.RotateZ(math.Pi / 2), Vec3{0, 1, 0}},
		{"Z 180deg", Vec3{1, 0, 0}.RotateZ(math.Pi), Vec3{-1, 0, 0}},
		{"X 90deg", Vec3{0, 1, 0}.RotateX(math.Pi / 2), Vec3{0, 0, 1}},
		{"X keeps x", Vec3{2, 0, 0}.RotateX(1.234), Vec3{2, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got.X-tt.want.X) > 1e-12 ||
				math.Abs(tt.got.Y-tt.want.Y) > 1e-12 ||
				math.Abs(tt.got.Z-tt.want.Z) > 1e-12 {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 1.9, 7.0, 90, 180, -45} {
		if got := RadToDeg(DegToRad(deg)); math.Abs(got-deg) > 1e-12 {
			t.Errorf("RadToDeg(DegToRad(%v)) = %v", deg, got)
		}
	}
}

func TestFormatLightTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{30.25, "30.2s"},
		{499.005, "8m19s"},
		{30.07 * 499.005, "4h10m"},
	}

	for _, tt := range tests {
		if got := FormatLightTime(tt.seconds); got != tt.want {
			t.Errorf("FormatLightTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
