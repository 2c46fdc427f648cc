package game

// Rect is an axis-aligned rectangle in playfield units.
// Y grows downwards, so Top <= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectAround builds a rectangle of size w x h centred on (cx, cy)
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// Overlaps reports whether two rectangles intersect.
// Rectangles that share only an edge count as overlapping.
func Overlaps(a, b Rect) bool {
	return a.Left <= b.Right &&
		a.Right >= b.Left &&
		a.Top <= b.Bottom &&
		a.Bottom >= b.Top
}
