package ui

import (
	"math"

	"github.com/diegok/pingpong/internal/game"
)

// ScoreRows is the number of rows above the court reserved for the scores
const ScoreRows = 1

// Court is the block of terminal cells the playfield is drawn into
type Court struct {
	X, Y          int
	Width, Height int
}

// CourtLayout places the court below the score row, filling the screen
func CourtLayout(screenW, screenH int) Court {
	h := screenH - ScoreRows
	if h < 0 {
		h = 0
	}
	return Court{X: 0, Y: ScoreRows, Width: screenW, Height: h}
}

// Fraction maps a screen row to a 0-1 vertical position in the court
func (c Court) Fraction(row int) (float64, bool) {
	if c.Height <= 0 {
		return 0, false
	}
	f := float64(row-c.Y) / float64(c.Height)
	return math.Max(0, math.Min(1, f)), true
}

// Col maps a playfield x coordinate to a screen column
func (c Court) Col(x float64) int {
	return c.X + scale(x, c.Width)
}

// Row maps a playfield y coordinate to a screen row
func (c Court) Row(y float64) int {
	return c.Y + scale(y, c.Height)
}

// Cells returns the inclusive cell span covered by r, clipped to the court
func (c Court) Cells(r game.Rect) (x0, y0, x1, y1 int) {
	x0 = c.X + clamp(scale(r.Left, c.Width), 0, c.Width-1)
	x1 = c.X + clamp(scaleEnd(r.Right, c.Width), 0, c.Width-1)
	y0 = c.Y + clamp(scale(r.Top, c.Height), 0, c.Height-1)
	y1 = c.Y + clamp(scaleEnd(r.Bottom, c.Height), 0, c.Height-1)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

func scale(v float64, size int) int {
	return int(math.Floor(v * float64(size) / game.FieldSize))
}

// scaleEnd maps the far edge of a span, which is exclusive in cells
func scaleEnd(v float64, size int) int {
	return int(math.Ceil(v*float64(size)/game.FieldSize)) - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
