// Package state provides thread-safe session state around the simulation:
// render toggles, control hooks and an event log.
package state

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orrery"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventPaused  EventType = "PAUSED"
	EventResumed EventType = "RESUMED"
	EventSpeed   EventType = "SPEED"
	EventScale   EventType = "SCALE"
	EventOrbit   EventType = "ORBIT"
)

// Event represents a change worth showing in the event log.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	SimDay    float64   `json:"sim_day"`
	Body      string    `json:"body,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents    int
	TickInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:    50,                    // Last 50 events
		TickInterval: 50 * time.Millisecond, // 20 frames per second
	}
}

// Manager wraps the simulation with the toggles and hooks the UI drives.
type Manager struct {
	mu sync.RWMutex

	sys *orrery.System
	log *logging.Logger

	// Render-only toggles; they never affect the simulation
	showOrbits bool
	showLabels bool
	showTrails bool

	// Completed revolutions last seen per body
	revolutions map[string]int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	tickInterval time.Duration
}

// NewManager creates a state manager owning sys.
func NewManager(sys *orrery.System, cfg Config, logger *logging.Logger) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	tick := cfg.TickInterval
	if tick <= 0 {
		tick = DefaultConfig().TickInterval
	}
	if logger == nil {
		logger = logging.Discard()
	}

	m := &Manager{
		sys:          sys,
		log:          logger.With("state"),
		showOrbits:   true,
		showLabels:   true,
		showTrails:   true,
		revolutions:  make(map[string]int),
		events:       make([]Event, 0, maxEvents),
		maxEvents:    maxEvents,
		tickInterval: tick,
	}
	for _, b := range sys.Bodies() {
		m.revolutions[b.Name] = b.Revolutions
	}
	return m
}

// Advance runs one simulation tick and records completed revolutions.
func (m *Manager) Advance(frame int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sys.Paused() {
		return
	}
	m.sys.Advance(frame)
	m.detectRevolutions()
}

func (m *Manager) detectRevolutions() {
	for _, b := range m.sys.Bodies() {
		if b.Central {
			continue
		}
		prev := m.revolutions[b.Name]
		if b.Revolutions > prev {
			m.revolutions[b.Name] = b.Revolutions
			m.addEvent(Event{
				Type:   EventOrbit,
				Body:   b.Name,
				Detail: fmt.Sprintf("revolution %d", b.Revolutions),
			})
			m.log.Debug("%s completed revolution %d", b.Name, b.Revolutions)
		}
	}
}

// TogglePause flips the pause state and returns it.
func (m *Manager) TogglePause() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	paused := m.sys.TogglePause()
	if paused {
		m.addEvent(Event{Type: EventPaused})
	} else {
		m.addEvent(Event{Type: EventResumed})
	}
	m.log.Debug("paused=%v", paused)
	return paused
}

// SetSpeed sets the simulated days per tick, clamped, and returns the
// effective value.
func (m *Manager) SetSpeed(v float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setSpeedLocked(v)
}

// StepSpeed nudges the speed by delta, snapping to the 0.1 slider step.
func (m *Manager) StepSpeed(delta float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setSpeedLocked(math.Round((m.sys.Speed()+delta)*10) / 10)
}

func (m *Manager) setSpeedLocked(v float64) float64 {
	prev := m.sys.Speed()
	got := m.sys.SetSpeed(v)
	if got != prev {
		m.addEvent(Event{Type: EventSpeed, Detail: fmt.Sprintf("%.1f days/tick", got)})
	}
	return got
}

// CycleScale switches to the next scale mode and returns it.
func (m *Manager) CycleScale() orrery.ScaleMode {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := orrery.NextScaleMode(m.sys.ScaleMode())
	m.sys.SetScalePolicy(orrery.PolicyFor(next))
	m.addEvent(Event{Type: EventScale, Detail: string(next)})
	m.log.Info("scale mode now %s", next)
	return next
}

// ToggleOrbits flips orbit ring visibility.
func (m *Manager) ToggleOrbits() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.showOrbits = !m.showOrbits
	return m.showOrbits
}

// ToggleLabels flips label visibility.
func (m *Manager) ToggleLabels() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.showLabels = !m.showLabels
	return m.showLabels
}

// ToggleTrails flips trail visibility.
func (m *Manager) ToggleTrails() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.showTrails = !m.showTrails
	return m.showTrails
}

// addEvent adds an event to the ring buffer. Caller holds the lock.
func (m *Manager) addEvent(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	e.SimDay = m.sys.Elapsed()

	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Bodies           []orrery.BodyState
	ScaleMode        orrery.ScaleMode
	Paused           bool
	Speed            float64
	ElapsedDays      float64
	Ticks            int
	MaxOrbitRadius   float64
	MaxDisplayRadius float64 // reach of bodies and trails, may exceed the rings

	ShowOrbits bool
	ShowLabels bool
	ShowTrails bool

	Events []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Bodies:           m.sys.Bodies(),
		ScaleMode:        m.sys.ScaleMode(),
		Paused:           m.sys.Paused(),
		Speed:            m.sys.Speed(),
		ElapsedDays:      m.sys.Elapsed(),
		Ticks:            m.sys.Ticks(),
		MaxOrbitRadius:   m.sys.MaxOrbitRadius(),
		MaxDisplayRadius: m.sys.MaxDisplayRadius(),
		ShowOrbits:       m.showOrbits,
		ShowLabels:       m.showLabels,
		ShowTrails:       m.showTrails,
		Events:           m.getEventsOrdered(),
	}
}

// Export returns the JSON export of the simulation.
func (m *Manager) Export(at time.Time) *orrery.SnapshotExport {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return orrery.ExportSnapshot(m.sys, at)
}

// WriteStatus writes the one-line simulation status.
func (m *Manager) WriteStatus(w io.Writer) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	orrery.WriteStatus(w, m.sys)
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n = max(n, 0)
	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// TickInterval returns the wall-clock interval between animation ticks.
func (m *Manager) TickInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tickInterval
}
