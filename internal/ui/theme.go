package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// HueStep is how far the hue rotates on every bounce
const HueStep = 40.0

const (
	saturation      = 0.5
	foregroundLight = 0.75
	backgroundLight = 0.2
)

// Theme holds the hue every colour on screen is derived from
type Theme struct {
	hue float64
}

// Hue returns the current hue in degrees. A value that is not a finite
// number reads as 0.
func (t *Theme) Hue() float64 {
	if math.IsNaN(t.hue) || math.IsInf(t.hue, 0) {
		return 0
	}
	return t.hue
}

func (t *Theme) SetHue(h float64) {
	t.hue = h
}

// Shift rotates the hue by HueStep, wrapping at 360
func (t *Theme) Shift() {
	t.hue = math.Mod(t.Hue()+HueStep, 360)
}

// Foreground is the colour of the ball, paddles and text
func (t *Theme) Foreground() tcell.Color {
	return hslColor(t.Hue(), saturation, foregroundLight)
}

// Background is the court colour
func (t *Theme) Background() tcell.Color {
	return hslColor(t.Hue(), saturation, backgroundLight)
}

// Style is the default foreground-on-background style
func (t *Theme) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Foreground()).Background(t.Background())
}

func hslColor(h, s, l float64) tcell.Color {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
