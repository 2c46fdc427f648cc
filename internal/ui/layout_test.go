package ui

import (
	"testing"

	"github.com/diegok/pingpong/internal/game"
)

func TestCourtLayout(t *testing.T) {
	c := CourtLayout(80, 24)

	if c.X != 0 || c.Y != ScoreRows || c.Width != 80 || c.Height != 23 {
		t.Errorf("unexpected court %+v", c)
	}

	if c := CourtLayout(10, 0); c.Height != 0 {
		t.Errorf("expected empty court on zero-height screen, got %+v", c)
	}
}

func TestCourt_Fraction(t *testing.T) {
	c := Court{Y: 2, Width: 40, Height: 10}

	tests := []struct {
		row  int
		want float64
	}{
		{2, 0},
		{7, 0.5},
		{12, 1},
		{0, 0},  // Above the court clamps
		{30, 1}, // Below the court clamps
	}

	for _, tt := range tests {
		got, ok := c.Fraction(tt.row)
		if !ok {
			t.Fatalf("Fraction(%d) not ok", tt.row)
		}
		if got != tt.want {
			t.Errorf("Fraction(%d) = %f, want %f", tt.row, got, tt.want)
		}
	}
}

func TestCourt_ColRow(t *testing.T) {
	c := Court{X: 0, Y: 1, Width: 80, Height: 20}

	if got := c.Col(50); got != 40 {
		t.Errorf("Col(50) = %d, want 40", got)
	}
	if got := c.Row(50); got != 11 {
		t.Errorf("Row(50) = %d, want 11", got)
	}
	if got := c.Row(0); got != 1 {
		t.Errorf("Row(0) = %d, want 1", got)
	}
}

func TestCourt_Cells(t *testing.T) {
	c := Court{X: 0, Y: 1, Width: 100, Height: 20}

	x0, y0, x1, y1 := c.Cells(game.Rect{Left: 1, Top: 45, Right: 2, Bottom: 55})

	if x0 != 1 || x1 != 1 {
		t.Errorf("expected single column 1, got %d-%d", x0, x1)
	}
	if y0 != 10 || y1 != 11 {
		t.Errorf("expected rows 10-11, got %d-%d", y0, y1)
	}

	// Clipped to the court
	x0, y0, x1, y1 = c.Cells(game.Rect{Left: -5, Top: -5, Right: 120, Bottom: 120})
	if x0 != 0 || y0 != 1 || x1 != 99 || y1 != 20 {
		t.Errorf("expected clipping to court, got (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
}
