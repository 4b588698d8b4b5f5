package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/state"
)

// Default camera, matching the classic 3D plot view.
const (
	defaultElevation = 20.0
	defaultAzimuth   = 45.0
	cameraStep       = 5.0
)

// Discrete zoom levels for clean stepping
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

const defaultZoomLevel = 3 // 1.0x

// OrbitViewModel renders the system in 3D, projected through a rotatable
// camera onto a character canvas.
type OrbitViewModel struct {
	width    int
	height   int
	snapshot state.Snapshot

	// Camera
	elevation float64 // degrees above the orbital plane
	azimuth   float64 // degrees around the vertical axis
	zoomLevel int     // Index into zoomLevels

	focusIdx  int // Index into snapshot bodies (0 = central body)
	showStars bool
}

// NewOrbitViewModel creates a new orbit view model.
func NewOrbitViewModel() OrbitViewModel {
	return OrbitViewModel{
		elevation: defaultElevation,
		azimuth:   defaultAzimuth,
		zoomLevel: defaultZoomLevel,
		showStars: true,
	}
}

// SetSize updates the viewport size.
func (m OrbitViewModel) SetSize(width, height int) OrbitViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new state snapshot.
func (m OrbitViewModel) UpdateData(snapshot state.Snapshot) OrbitViewModel {
	m.snapshot = snapshot
	if m.focusIdx >= len(snapshot.Bodies) {
		m.focusIdx = 0
	}
	return m
}

// zoom returns the current zoom factor.
func (m OrbitViewModel) zoom() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// Update handles camera and focus keys. Simulation controls are handled by
// the root model.
func (m OrbitViewModel) Update(msg tea.Msg) (OrbitViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "]":
			if m.zoomLevel < len(zoomLevels)-1 {
				m.zoomLevel++
			}
		case "[":
			if m.zoomLevel > 0 {
				m.zoomLevel--
			}

		// Camera rotation
		case "left":
			m.azimuth = wrapDegrees(m.azimuth - cameraStep)
		case "right":
			m.azimuth = wrapDegrees(m.azimuth + cameraStep)
		case "up":
			m.elevation = min(90, m.elevation+cameraStep)
		case "down":
			m.elevation = max(-90, m.elevation-cameraStep)

		// Focus
		case "j":
			m.focusPrev()
		case "k":
			m.focusNext()

		// Starfield toggle
		case "s":
			m.showStars = !m.showStars

		case "r":
			m.elevation = defaultElevation
			m.azimuth = defaultAzimuth
			m.zoomLevel = defaultZoomLevel
		}
	}
	return m, nil
}

func (m *OrbitViewModel) focusNext() {
	n := len(m.snapshot.Bodies)
	if n == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + 1) % n
}

func (m *OrbitViewModel) focusPrev() {
	n := len(m.snapshot.Bodies)
	if n == 0 {
		return
	}
	m.focusIdx = (m.focusIdx - 1 + n) % n
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// project maps a display-space point to camera-plane coordinates: x to the
// right, y up. Elevation 90 looks straight down on the orbital plane.
func (m OrbitViewModel) project(p astro.Vec3) (x, y float64) {
	q := p.RotateZ(-astro.DegToRad(m.azimuth)).RotateX(astro.DegToRad(m.elevation))
	return q.X, q.Z
}

// cell is one canvas position with its color.
type cell struct {
	ch    rune
	color string
	bold  bool
}

type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		c.cells[y] = make([]cell, w)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{ch: ' '}
		}
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

func (c *canvas) set(x, y int, cl cell) {
	if c.inside(x, y) {
		c.cells[y][x] = cl
	}
}

// setIfEmpty writes only over blank cells.
func (c *canvas) setIfEmpty(x, y int, cl cell) {
	if c.inside(x, y) && c.cells[y][x].ch == ' ' {
		c.cells[y][x] = cl
	}
}

func (c *canvas) String() string {
	styles := make(map[string]lipgloss.Style)
	var b strings.Builder
	for _, row := range c.cells {
		for _, cl := range row {
			if cl.ch == ' ' || cl.color == "" {
				b.WriteRune(cl.ch)
				continue
			}
			key := cl.color
			if cl.bold {
				key += "!"
			}
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(cl.color)).Bold(cl.bold)
				styles[key] = st
			}
			b.WriteString(st.Render(string(cl.ch)))
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// View renders the orbit view.
func (m OrbitViewModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for orbit view"
	}
	if len(m.snapshot.Bodies) == 0 {
		return "No bodies to display"
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.buildCanvas().String(), m.renderHUD())
}

// screenMapper converts display-space points to canvas cells.
type screenMapper struct {
	m      OrbitViewModel
	cx, cy int
	scale  float64
}

func (s screenMapper) toScreen(p astro.Vec3) (int, int) {
	x, y := s.m.project(p)
	sx := s.cx + int(math.Round(x*s.scale))
	sy := s.cy - int(math.Round(y*s.scale*0.5)) // Aspect ratio correction
	return sx, sy
}

// bodyPos tracks a body's screen position for label rendering.
type bodyPos struct {
	x, y      int
	name      string
	color     string
	isFocused bool
}

// mapper fits the outermost ring or body, whichever reaches further,
// into a canvas of the given height at zoom 1.
func (m OrbitViewModel) mapper(canvasH int) (screenMapper, float64) {
	maxR := max(m.snapshot.MaxOrbitRadius, m.snapshot.MaxDisplayRadius)
	if maxR <= 0 {
		maxR = 1
	}
	return screenMapper{
		m:     m,
		cx:    m.width / 2,
		cy:    canvasH / 2,
		scale: float64(min(m.width/2, canvasH)) * 0.9 / maxR * m.zoom(),
	}, maxR
}

func (m OrbitViewModel) buildCanvas() *canvas {
	// Reserve space for HUD (3 lines)
	canvasH := max(m.height-5, 5)
	c := newCanvas(m.width, canvasH)
	sm, maxR := m.mapper(canvasH)

	if m.showStars {
		m.drawStarfield(c, sm, maxR)
	}

	if m.snapshot.ShowOrbits {
		for _, b := range m.snapshot.Bodies {
			if !b.Central {
				m.drawOrbitRing(c, sm, b)
			}
		}
	}

	if m.snapshot.ShowTrails {
		for _, b := range m.snapshot.Bodies {
			m.drawTrail(c, sm, b.Trail, b.Color)
		}
	}

	var positions []bodyPos
	maxRadius := m.largestOrbitingRadius()

	// Central body is drawn last so it stays visible
	for i := len(m.snapshot.Bodies) - 1; i >= 0; i-- {
		b := m.snapshot.Bodies[i]
		sx, sy := sm.toScreen(b.Scaled)
		if !c.inside(sx, sy) {
			continue
		}
		focused := i == m.focusIdx
		c.set(sx, sy, cell{ch: bodyGlyph(b, focused, maxRadius), color: parseColor(b.Color).Hex(), bold: true})
		positions = append(positions, bodyPos{x: sx, y: sy, name: b.Name, color: b.Color, isFocused: focused})
	}

	if m.snapshot.ShowLabels {
		m.renderLabels(c, positions)
	}
	return c
}

func (m OrbitViewModel) drawOrbitRing(c *canvas, sm screenMapper, b orrery.BodyState) {
	r := b.OrbitRadius * sm.scale
	if r < 1 {
		return
	}

	// Draw circle using parametric equations
	steps := int(2 * math.Pi * r)
	steps = max(16, min(steps, 720))
	color := fadeColor(b.Color, 0.3)

	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		p := astro.Vec3{X: b.OrbitRadius * math.Cos(theta), Y: b.OrbitRadius * math.Sin(theta)}.RotateX(b.Tilt)
		x, y := sm.toScreen(p)
		c.setIfEmpty(x, y, cell{ch: '·', color: color})
	}
}

// drawStarfield places the bright stars on a shell outside the outermost
// orbit. The shell shrinks as the view zooms in so stars stay put on screen
// and only move when the camera turns.
func (m OrbitViewModel) drawStarfield(c *canvas, sm screenMapper, maxR float64) {
	shell := maxR * 1.5 / m.zoom()
	for _, star := range astro.BrightStars() {
		glyph := starGlyph(star.Mag)
		if glyph == ' ' {
			continue
		}
		x, y := sm.toScreen(star.Direction().Scale(shell))
		c.setIfEmpty(x, y, cell{ch: glyph, color: "#3A3A3A"})
	}
}

// starGlyph returns a subtle glyph based on star magnitude.
func starGlyph(mag float64) rune {
	switch {
	case mag <= 1.0:
		return '∗'
	case mag <= 3.5:
		return '˙'
	default:
		return ' '
	}
}

// isBackground reports whether a glyph may be drawn over by trails and labels.
func isBackground(ch rune) bool {
	switch ch {
	case ' ', '·', '.', '∗', '˙':
		return true
	}
	return false
}

func (m OrbitViewModel) drawTrail(c *canvas, sm screenMapper, trail []astro.Vec3, hex string) {
	n := len(trail)
	for i, p := range trail {
		x, y := sm.toScreen(p)
		if !c.inside(x, y) {
			continue
		}
		glyph := '.'
		if i >= n/2 {
			glyph = '∙'
		}
		// Trails overwrite orbit rings but not other trails' newer points
		if isBackground(c.cells[y][x].ch) {
			c.set(x, y, cell{ch: glyph, color: fadeColor(hex, trailShade(i, n))})
		}
	}
}

func (m OrbitViewModel) largestOrbitingRadius() float64 {
	var r float64
	for _, b := range m.snapshot.Bodies {
		if !b.Central {
			r = max(r, b.ScaledRadius)
		}
	}
	return r
}

// bodyGlyph picks a glyph by role and relative display size.
func bodyGlyph(b orrery.BodyState, focused bool, maxRadius float64) rune {
	if b.Central {
		return '☉'
	}
	if focused {
		return '◉'
	}
	if maxRadius > 0 && b.ScaledRadius >= 0.5*maxRadius {
		return '●'
	}
	return '•'
}

// renderLabels writes body names to the right of their glyphs.
func (m OrbitViewModel) renderLabels(c *canvas, positions []bodyPos) {
	for _, pos := range positions {
		labelX := pos.x + 2
		if pos.y < 0 || pos.y >= c.h || labelX >= c.w {
			continue
		}

		text := pos.name
		if pos.isFocused {
			text = "◄ " + pos.name
		}
		color := "#BCBCBC"
		if pos.isFocused {
			color = parseColor(pos.color).Hex()
		}

		for i, r := range []rune(text) {
			x := labelX + i
			if x >= c.w {
				break
			}
			// Labels go over rings and trails, never over bodies
			if ch := c.cells[pos.y][x].ch; isBackground(ch) || ch == '∙' {
				c.set(x, pos.y, cell{ch: r, color: color, bold: pos.isFocused})
			}
		}
	}
}

func (m OrbitViewModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	focused, ok := m.FocusedBody()
	switch {
	case !ok:
	case focused.Central:
		b.WriteString(headerStyle.Render("☉ " + focused.Name))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("(center of system)"))
	default:
		b.WriteString(headerStyle.Render("◆ " + focused.Name))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Distance:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f AU", focused.Raw.Norm())))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Light Time:"))
		b.WriteString(valueStyle.Render(astro.FormatLightTime(astro.LightTimeFromAU(focused.Raw.Norm()))))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Orbits:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d", focused.Revolutions)))
	}
	b.WriteString("\n")

	b.WriteString(dimStyle.Render("Elev:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.0f°", m.elevation)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Azim:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.0f°", m.azimuth)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Zoom:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.zoom())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Orbits:"))
	b.WriteString(valueStyle.Render(onOff(m.snapshot.ShowOrbits)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels:"))
	b.WriteString(valueStyle.Render(onOff(m.snapshot.ShowLabels)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Trails:"))
	b.WriteString(valueStyle.Render(onOff(m.snapshot.ShowTrails)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Stars:"))
	b.WriteString(valueStyle.Render(onOff(m.showStars)))

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// FocusedBody returns the currently focused body.
func (m OrbitViewModel) FocusedBody() (orrery.BodyState, bool) {
	if m.focusIdx < 0 || m.focusIdx >= len(m.snapshot.Bodies) {
		return orrery.BodyState{}, false
	}
	return m.snapshot.Bodies[m.focusIdx], true
}

// ShowStars returns whether the starfield is visible.
func (m OrbitViewModel) ShowStars() bool {
	return m.showStars
}

// Camera returns the camera elevation and azimuth in degrees.
func (m OrbitViewModel) Camera() (elevation, azimuth float64) {
	return m.elevation, m.azimuth
}
