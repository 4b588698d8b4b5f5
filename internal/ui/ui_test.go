package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/state"
)

func sendKey(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func readyModel(t *testing.T) (Model, *state.Manager) {
	t.Helper()
	mgr := newTestManager(t)
	m := New(mgr, nil)
	m = sendKey(t, m, tea.WindowSizeMsg{Width: 140, Height: 45})
	return m, mgr
}

func TestModelViewBeforeReady(t *testing.T) {
	m := New(newTestManager(t), nil)
	if m.View() != "Initializing..." {
		t.Errorf("View() = %q", m.View())
	}
}

func TestModelTitle(t *testing.T) {
	m, _ := readyModel(t)

	if got := m.Title(); got != "Solar System Simulator - Scale: Logarithmic" {
		t.Errorf("Title() = %q", got)
	}

	m = sendKey(t, m, runeKey('z'))
	if got := m.Title(); got != "Solar System Simulator - Scale: Artistic" {
		t.Errorf("Title() after z = %q", got)
	}
}

func TestModelAnimTickAdvances(t *testing.T) {
	m, mgr := readyModel(t)

	updated, cmd := m.Update(AnimTickMsg(time.Now()))
	m = updated.(Model)

	if cmd == nil {
		t.Error("anim tick should schedule the next tick")
	}
	if m.frame != 1 {
		t.Errorf("frame = %d, want 1", m.frame)
	}
	if got := mgr.Snapshot().Ticks; got != 1 {
		t.Errorf("simulation ticks = %d, want 1", got)
	}
	if m.snapshot.Ticks != 1 {
		t.Errorf("model snapshot ticks = %d, want 1", m.snapshot.Ticks)
	}
}

func TestModelPause(t *testing.T) {
	m, mgr := readyModel(t)

	m = sendKey(t, m, runeKey('p'))
	if !mgr.Snapshot().Paused {
		t.Fatal("p should pause the simulation")
	}
	if !strings.Contains(m.View(), "[PAUSED]") {
		t.Error("header should show [PAUSED]")
	}

	// Ticks while paused leave the simulation untouched
	m = sendKey(t, m, AnimTickMsg(time.Now()))
	if got := mgr.Snapshot().Ticks; got != 0 {
		t.Errorf("ticks while paused = %d, want 0", got)
	}

	m = sendKey(t, m, runeKey('p'))
	if strings.Contains(m.View(), "[PAUSED]") {
		t.Error("header should drop [PAUSED] after resuming")
	}
}

func TestModelSpeedKeys(t *testing.T) {
	m, mgr := readyModel(t)

	m = sendKey(t, m, runeKey('+'))
	m = sendKey(t, m, runeKey('+'))
	if got := mgr.Snapshot().Speed; got != 1.2 {
		t.Errorf("speed = %v, want 1.2", got)
	}

	for i := 0; i < 200; i++ {
		m = sendKey(t, m, runeKey('+'))
	}
	if got := mgr.Snapshot().Speed; got != orrery.MaxSpeed {
		t.Errorf("speed = %v, want max %v", got, orrery.MaxSpeed)
	}

	m = sendKey(t, m, runeKey('-'))
	if got := m.snapshot.Speed; got != 9.9 {
		t.Errorf("speed = %v, want 9.9", got)
	}
}

func TestModelRenderToggles(t *testing.T) {
	m, _ := readyModel(t)

	m = sendKey(t, m, runeKey('o'))
	m = sendKey(t, m, runeKey('l'))
	m = sendKey(t, m, runeKey('t'))

	if m.snapshot.ShowOrbits || m.snapshot.ShowLabels || m.snapshot.ShowTrails {
		t.Error("toggles should hide all layers")
	}
	if m.statusMsg != "Trails off" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestModelViewSwitching(t *testing.T) {
	m, _ := readyModel(t)

	m = sendKey(t, m, runeKey('2'))
	if m.viewMode != ViewBodies {
		t.Errorf("viewMode = %d, want ViewBodies", m.viewMode)
	}
	if !strings.Contains(m.View(), "Radius km") {
		t.Error("bodies view should render the table header")
	}

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.viewMode != ViewEvents {
		t.Errorf("viewMode = %d, want ViewEvents", m.viewMode)
	}

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.viewMode != ViewOrbit {
		t.Errorf("viewMode = %d, want ViewOrbit after wrap", m.viewMode)
	}
}

func TestModelForwardsCameraKeys(t *testing.T) {
	m, _ := readyModel(t)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if _, azim := m.orbit.Camera(); azim != 50 {
		t.Errorf("azimuth = %v, want 50", azim)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := readyModel(t)

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestEventsViewShowsEvents(t *testing.T) {
	m, _ := readyModel(t)

	m = sendKey(t, m, runeKey('z'))
	m = sendKey(t, m, runeKey('3'))

	view := m.View()
	if !strings.Contains(view, "SCALE") || !strings.Contains(view, "artistic") {
		t.Errorf("events view missing scale event:\n%s", view)
	}
}

func TestBodiesModelCursor(t *testing.T) {
	mgr := newTestManager(t)
	m := NewBodiesModel().SetSize(120, 30).UpdateData(mgr.Snapshot())

	if m.Selected() != "Sun" {
		t.Errorf("Selected() = %q, want Sun", m.Selected())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Selected() != "Venus" {
		t.Errorf("Selected() = %q, want Venus", m.Selected())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if m.Selected() != "Neptune" {
		t.Errorf("Selected() = %q, want Neptune", m.Selected())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Selected() != "Sun" {
		t.Errorf("Selected() = %q, want Sun at top", m.Selected())
	}
}

func TestBodiesModelView(t *testing.T) {
	mgr := newTestManager(t)
	m := NewBodiesModel().SetSize(120, 30).UpdateData(mgr.Snapshot())
	view := m.View()

	for _, want := range []string{"Bodies (Logarithmic scale)", "Jupiter", "69911", "██"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
