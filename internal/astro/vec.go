// Package astro provides vector math and unit helpers shared by the
// simulation and the renderers.
package astro

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// RotateZ rotates the vector about the Z axis by angle radians.
func (v Vec3) RotateZ(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}

// RotateX rotates the vector about the X axis by angle radians.
func (v Vec3) RotateX(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// LightTimeFromAU returns the one-way light time for a distance in AU.
func LightTimeFromAU(au float64) float64 {
	// Light travels 1 AU in ~499.005 seconds
	return au * 499.005
}

// FormatLightTime formats light time in seconds to a human-readable string.
func FormatLightTime(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm%ds", int(seconds/60), int(seconds)%60)
	default:
		return fmt.Sprintf("%dh%dm", int(seconds/3600), (int(seconds)%3600)/60)
	}
}
