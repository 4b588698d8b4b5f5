package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Canvas background that faded trails blend toward.
var backgroundColor = colorful.Color{R: 0.08, G: 0.08, B: 0.1}

// fallbackColor is used for hex strings that do not parse.
var fallbackColor = colorful.Color{R: 0.6, G: 0.6, B: 0.6}

func parseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackColor
	}
	return c
}

// fadeColor blends a body color toward the background. t=1 is the full
// body color, t=0 the background.
func fadeColor(hex string, t float64) string {
	t = max(0, min(1, t))
	return backgroundColor.BlendLab(parseColor(hex), t).Clamped().Hex()
}

// trailShade maps a trail point index to a blend factor so the oldest
// point is faintest and the newest nearly full color.
func trailShade(i, n int) float64 {
	if n <= 1 {
		return 0.85
	}
	return 0.2 + 0.65*float64(i)/float64(n-1)
}

// gradientText renders text with a horizontal gradient between two colors.
func gradientText(text, from, to string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, b := parseColor(from), parseColor(to)

	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := a.BlendLuv(b, t).Clamped().Hex()
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true).Render(string(r)))
	}
	return sb.String()
}

// swatch renders a colored legend block for a body.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(parseColor(hex).Hex())).Render("██")
}
