package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/state"
)

// Styles for the table views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))
)

// BodiesModel lists every body with its catalog values and live state.
type BodiesModel struct {
	width    int
	height   int
	cursor   int
	snapshot state.Snapshot
}

// NewBodiesModel creates a new bodies table model.
func NewBodiesModel() BodiesModel {
	return BodiesModel{}
}

// SetSize updates the viewport size.
func (m BodiesModel) SetSize(width, height int) BodiesModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new state snapshot.
func (m BodiesModel) UpdateData(snapshot state.Snapshot) BodiesModel {
	m.snapshot = snapshot
	if m.cursor >= len(snapshot.Bodies) {
		m.cursor = max(0, len(snapshot.Bodies)-1)
	}
	return m
}

// Update handles messages.
func (m BodiesModel) Update(msg tea.Msg) (BodiesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.snapshot.Bodies)
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if n > 0 {
				m.cursor = n - 1
			}
		}
	}
	return m, nil
}

// View renders the bodies table.
func (m BodiesModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Bodies (%s scale)", m.snapshot.ScaleMode.Title())))
	b.WriteString("\n")

	header := fmt.Sprintf("   %-10s %10s %9s %9s %8s %5s %8s %8s",
		"Name", "Radius km", "Dist AU", "Period d", "Phase", "Revs", "Size", "Orbit")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	bodies := m.snapshot.Bodies
	if len(bodies) == 0 {
		b.WriteString("  No bodies\n")
		return b.String()
	}

	// Calculate visible rows based on height
	maxRows := max(m.height-4, 5)
	startIdx := 0
	if m.cursor >= maxRows {
		startIdx = m.cursor - maxRows + 1
	}
	endIdx := min(startIdx+maxRows, len(bodies))

	for i := startIdx; i < endIdx; i++ {
		body := bodies[i]

		period := fmt.Sprintf("%.0f", body.PeriodDays)
		phase := fmt.Sprintf("%.1f°", astro.RadToDeg(wrapRadians(body.Phase)))
		if body.Central {
			period, phase = "-", "-"
		}

		row := fmt.Sprintf("%-10s %10.0f %9.2f %9s %8s %5d %8.2f %8.2f",
			truncate(body.Name, 10),
			body.RadiusKm,
			body.DistanceAU,
			period,
			phase,
			body.Revolutions,
			body.ScaledRadius,
			body.OrbitRadius,
		)

		b.WriteString(swatch(body.Color))
		b.WriteString(" ")
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(bodies) > maxRows {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\n  Showing %d-%d of %d bodies", startIdx+1, endIdx, len(bodies))))
	}

	return b.String()
}

// Selected returns the name of the highlighted body.
func (m BodiesModel) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Bodies) {
		return ""
	}
	return m.snapshot.Bodies[m.cursor].Name
}

func wrapRadians(r float64) float64 {
	return astro.DegToRad(wrapDegrees(astro.RadToDeg(r)))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
