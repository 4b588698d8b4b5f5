package orrery

import (
	"iter"

	"github.com/litescript/ls-orrery/internal/astro"
)

// DefaultTrailLength is the number of display points kept per body.
const DefaultTrailLength = 100

// TrailBuffer is a bounded FIFO of display-space positions. When full,
// pushing evicts the oldest point.
type TrailBuffer struct {
	points  []astro.Vec3
	writeAt int // next slot to overwrite once full
}

// NewTrailBuffer creates a buffer holding up to capacity points.
// A capacity below 1 uses DefaultTrailLength.
func NewTrailBuffer(capacity int) *TrailBuffer {
	if capacity < 1 {
		capacity = DefaultTrailLength
	}
	return &TrailBuffer{points: make([]astro.Vec3, 0, capacity)}
}

// Push appends a point.
func (t *TrailBuffer) Push(p astro.Vec3) {
	if len(t.points) < cap(t.points) {
		t.points = append(t.points, p)
		return
	}
	t.points[t.writeAt] = p
	t.writeAt = (t.writeAt + 1) % len(t.points)
}

// Len returns the number of stored points.
func (t *TrailBuffer) Len() int { return len(t.points) }

// Cap returns the capacity.
func (t *TrailBuffer) Cap() int { return cap(t.points) }

// All iterates the points oldest to newest. The sequence can be ranged
// over more than once; it reads the buffer as it is at iteration time.
func (t *TrailBuffer) All() iter.Seq2[int, astro.Vec3] {
	return func(yield func(int, astro.Vec3) bool) {
		n := len(t.points)
		for i := 0; i < n; i++ {
			// writeAt stays 0 until the buffer fills, so this is a plain
			// index before wrap-around.
			if !yield(i, t.points[(t.writeAt+i)%n]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the points, oldest to newest.
func (t *TrailBuffer) Snapshot() []astro.Vec3 {
	if len(t.points) == 0 {
		return nil
	}
	out := make([]astro.Vec3, 0, len(t.points))
	for _, p := range t.All() {
		out = append(out, p)
	}
	return out
}

// Reset drops all points, keeping the capacity.
func (t *TrailBuffer) Reset() {
	t.points = t.points[:0]
	t.writeAt = 0
}
