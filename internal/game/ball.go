package game

import (
	"math"
	"math/rand"
)

const (
	InitialVelocity  = 0.015    // Playfield units per millisecond
	VelocityIncrease = 0.000005 // Added to velocity per millisecond of play
	BallSize         = 2.5

	// Launch headings are resampled until |cos| falls strictly inside this band
	MinLaunchX = 0.2
	MaxLaunchX = 0.9
)

// Bounce reports which reflections happened during one ball update
type Bounce struct {
	Wall   bool
	Paddle bool
}

// Any returns true if the ball changed direction
func (b Bounce) Any() bool {
	return b.Wall || b.Paddle
}

type Ball struct {
	X, Y       float64
	DirX, DirY float64
	Velocity   float64
}

func NewBall(rng *rand.Rand) *Ball {
	b := &Ball{}
	b.Reset(rng)
	return b
}

// Reset places the ball at the centre and picks a new launch heading.
// Near-vertical and near-horizontal headings are rejected.
func (b *Ball) Reset(rng *rand.Rand) {
	b.X = FieldSize / 2
	b.Y = FieldSize / 2
	b.DirX, b.DirY = 0, 0
	for math.Abs(b.DirX) <= MinLaunchX || math.Abs(b.DirX) >= MaxLaunchX {
		heading := rng.Float64() * 2 * math.Pi
		b.DirX = math.Cos(heading)
		b.DirY = math.Sin(heading)
	}
	b.Velocity = InitialVelocity
}

// Update advances the ball by delta milliseconds and reflects it off the
// top/bottom walls and any paddle it overlaps after the move.
func (b *Ball) Update(delta float64, paddles []Rect) Bounce {
	b.X += b.DirX * b.Velocity * delta
	b.Y += b.DirY * b.Velocity * delta
	b.Velocity += VelocityIncrease * delta

	var bounce Bounce
	rect := b.Rect()

	if rect.Bottom >= FieldSize || rect.Top <= 0 {
		b.DirY = -b.DirY
		bounce.Wall = true
	}

	for _, p := range paddles {
		if Overlaps(p, rect) {
			b.DirX = -b.DirX
			bounce.Paddle = true
			break
		}
	}

	return bounce
}

// Rect returns the ball's bounding box
func (b *Ball) Rect() Rect {
	return RectAround(b.X, b.Y, BallSize, BallSize)
}
