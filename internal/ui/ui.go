// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/state"
	"github.com/litescript/ls-orrery/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewOrbit ViewMode = iota
	ViewBodies
	ViewEvents
)

const viewCount = 3

// Msg types for Bubble Tea
type (
	// AnimTickMsg advances the simulation by one frame.
	AnimTickMsg time.Time
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager
	log   *logging.Logger

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	frame     int
	statusMsg string

	// Sub-models
	orbit  OrbitViewModel
	bodies BodiesModel
	events EventsModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	m := Model{
		state:    stateMgr,
		log:      logger.With("ui"),
		viewMode: ViewOrbit,
		orbit:    NewOrbitViewModel(),
		bodies:   NewBodiesModel(),
		events:   NewEventsModel(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return animTickCmd(m.state.TickInterval())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.viewMode = ViewOrbit
		case "2":
			m.viewMode = ViewBodies
		case "3":
			m.viewMode = ViewEvents
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount

		// Simulation controls
		case " ", "p":
			if m.state.TogglePause() {
				m.statusMsg = "Paused"
			} else {
				m.statusMsg = "Running"
			}
			m.refresh()
		case "+", "=":
			m.statusMsg = fmt.Sprintf("Speed %.1f days/tick", m.state.StepSpeed(0.1))
			m.refresh()
		case "-", "_":
			m.statusMsg = fmt.Sprintf("Speed %.1f days/tick", m.state.StepSpeed(-0.1))
			m.refresh()
		case "z":
			mode := m.state.CycleScale()
			m.statusMsg = "Scale: " + mode.Title()
			m.log.Debug("scale switched to %s at frame %d", mode, m.frame)
			m.refresh()

		// Render toggles
		case "o":
			m.statusMsg = "Orbits " + onOff(m.state.ToggleOrbits())
			m.refresh()
		case "l":
			m.statusMsg = "Labels " + onOff(m.state.ToggleLabels())
			m.refresh()
		case "t":
			m.statusMsg = "Trails " + onOff(m.state.ToggleTrails())
			m.refresh()

		default:
			// Pass to active view
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes 3 lines, footer 2
		contentHeight := msg.Height - 6
		m.orbit = m.orbit.SetSize(msg.Width, contentHeight)
		m.bodies = m.bodies.SetSize(msg.Width, contentHeight)
		m.events = m.events.SetSize(msg.Width, contentHeight)

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd(m.state.TickInterval()))
		m.frame++
		m.state.Advance(m.frame)
		m.refresh()

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// refresh pulls a fresh snapshot and pushes it to the sub-models.
func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.orbit = m.orbit.UpdateData(m.snapshot)
	m.bodies = m.bodies.UpdateData(m.snapshot)
	m.events = m.events.UpdateData(m.snapshot)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewOrbit:
		m.orbit, cmd = m.orbit.Update(msg)
	case ViewBodies:
		m.bodies, cmd = m.bodies.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewOrbit:
		content = m.orbit.View()
	case ViewBodies:
		content = m.bodies.View()
	case ViewEvents:
		content = m.events.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

// Title returns the window title line.
func (m Model) Title() string {
	return "Solar System Simulator - Scale: " + m.snapshot.ScaleMode.Title()
}

func (m Model) renderHeader() string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(gradientText(m.Title(), "#3B82F6", "#EC4899"))
	if m.snapshot.Paused {
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27")).Bold(true).Render("[PAUSED]"))
	}
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("v" + version.Version))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Orbit", "[2] Bodies", "[3] Events"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	// Animated spinner frames, frozen while paused
	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.snapshot.Ticks%len(spinnerFrames)]

	status := accentStyle.Render(spinner) + dimStyle.Render(fmt.Sprintf(" day %.1f · %.1f days/tick",
		m.snapshot.ElapsedDays, m.snapshot.Speed))

	// View-specific help hints
	var help string
	switch m.viewMode {
	case ViewOrbit:
		help = "space: pause | +/-: speed | [/]: zoom | arrows: rotate | j/k: focus | o/l/t: orbits/labels/trails | r: reset | z: scale"
	case ViewBodies:
		help = "↑↓: select | space: pause | +/-: speed | z: scale"
	default:
		help = "tab: switch view | space: pause | q: quit"
	}

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + dimStyle.Render(help)
	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}

func animTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}
