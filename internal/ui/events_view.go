package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/state"
)

var eventColors = map[state.EventType]string{
	state.EventPaused:  "#E84A27",
	state.EventResumed: "#46C46E",
	state.EventSpeed:   "#3B82F6",
	state.EventScale:   "#D946EF",
	state.EventOrbit:   "#FDB813",
}

// EventsModel shows the session event log, newest first.
type EventsModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewEventsModel creates a new events model.
func NewEventsModel() EventsModel {
	return EventsModel{}
}

// SetSize updates the viewport size.
func (m EventsModel) SetSize(width, height int) EventsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new state snapshot.
func (m EventsModel) UpdateData(snapshot state.Snapshot) EventsModel {
	m.snapshot = snapshot
	return m
}

// View renders the event log.
func (m EventsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Events"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-8s %9s  %-8s %-10s %s", "Time", "Sim day", "Type", "Body", "Detail")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	events := m.snapshot.Events
	if len(events) == 0 {
		b.WriteString(dimStyle.Render("  No events yet"))
		b.WriteString("\n")
		return b.String()
	}

	maxRows := max(m.height-4, 5)
	shown := 0
	for i := len(events) - 1; i >= 0 && shown < maxRows; i-- {
		e := events[i]
		typ := lipgloss.NewStyle().
			Foreground(lipgloss.Color(eventColors[e.Type])).
			Render(fmt.Sprintf("%-8s", e.Type))

		b.WriteString(fmt.Sprintf(" %-8s %9.1f  %s %-10s %s\n",
			e.Timestamp.Format("15:04:05"), e.SimDay, typ, truncate(e.Body, 10), e.Detail))
		shown++
	}

	return b.String()
}
