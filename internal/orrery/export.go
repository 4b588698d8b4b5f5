package orrery

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
)

// SnapshotExport is the JSON-serializable representation of a System.
type SnapshotExport struct {
	ExportedAt  time.Time    `json:"exported_at"`
	ScaleMode   ScaleMode    `json:"scale_mode"`
	Paused      bool         `json:"paused"`
	Speed       float64      `json:"speed_days_per_tick"`
	ElapsedDays float64      `json:"elapsed_days"`
	Ticks       int          `json:"ticks"`
	Bodies      []BodyExport `json:"bodies"`
}

// BodyExport is a JSON-friendly body representation.
type BodyExport struct {
	Name         string       `json:"name"`
	Color        string       `json:"color"`
	Central      bool         `json:"central,omitempty"`
	RadiusKm     float64      `json:"radius_km"`
	DistanceAU   float64      `json:"distance_au"`
	PeriodDays   float64      `json:"period_days"`
	TiltDeg      float64      `json:"tilt_deg"`
	Phase        float64      `json:"phase_rad"`
	Revolutions  int          `json:"revolutions"`
	Raw          astro.Vec3   `json:"raw_au"`
	Scaled       astro.Vec3   `json:"scaled"`
	ScaledRadius float64      `json:"scaled_radius"`
	OrbitRadius  float64      `json:"orbit_radius"`
	Trail        []astro.Vec3 `json:"trail,omitempty"`
}

// ExportSnapshot converts the current system state to an exportable form.
func ExportSnapshot(s *System, exportedAt time.Time) *SnapshotExport {
	if s == nil {
		return &SnapshotExport{ExportedAt: exportedAt}
	}

	export := &SnapshotExport{
		ExportedAt:  exportedAt,
		ScaleMode:   s.ScaleMode(),
		Paused:      s.Paused(),
		Speed:       s.Speed(),
		ElapsedDays: s.Elapsed(),
		Ticks:       s.Ticks(),
	}

	for _, b := range s.Bodies() {
		export.Bodies = append(export.Bodies, BodyExport{
			Name:         b.Name,
			Color:        b.Color,
			Central:      b.Central,
			RadiusKm:     b.RadiusKm,
			DistanceAU:   b.DistanceAU,
			PeriodDays:   b.PeriodDays,
			TiltDeg:      astro.RadToDeg(b.Tilt),
			Phase:        b.Phase,
			Revolutions:  b.Revolutions,
			Raw:          b.Raw,
			Scaled:       b.Scaled,
			ScaledRadius: b.ScaledRadius,
			OrbitRadius:  b.OrbitRadius,
			Trail:        b.Trail,
		})
	}

	return export
}

// WriteJSON writes the snapshot as indented JSON.
func (e *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteBodyTable writes the catalog table: name, radius, distance, period.
func WriteBodyTable(w io.Writer, bodies []BodyState) {
	rule := strings.Repeat("=", 70)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SOLAR SYSTEM BODIES")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-12s %-15s %-15s %-15s\n", "Body", "Radius (km)", "Distance (AU)", "Period (days)")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for _, b := range bodies {
		fmt.Fprintf(w, "%-12s %-15s %-15.2f %-15s\n",
			truncateStr(b.Name, 12),
			groupThousands(b.RadiusKm),
			b.DistanceAU,
			groupThousands(b.PeriodDays),
		)
	}

	fmt.Fprintln(w, rule)
}

// WriteStatus writes a one-line summary of the clock and scale state.
func WriteStatus(w io.Writer, s *System) {
	status := "running"
	if s.Paused() {
		status = "paused"
	}
	fmt.Fprintf(w, "scale=%s day=%.1f speed=%.1f ticks=%d %s\n",
		s.ScaleMode(), s.Elapsed(), s.Speed(), s.Ticks(), status)
}

// groupThousands formats a value rounded to an integer with comma
// separators, e.g. 696000 -> "696,000".
func groupThousands(v float64) string {
	n := int64(v + 0.5)
	if v < 0 {
		n = int64(v - 0.5)
	}
	neg := n < 0
	if neg {
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
