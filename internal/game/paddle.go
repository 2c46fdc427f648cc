package game

const (
	TrackingRate = 0.1 // Max computer paddle travel per millisecond
	PaddleWidth  = 1.0
	PaddleHeight = 10.0
	PaddleInset  = 1.0 // Gap between a paddle and its side of the field
)

// Side identifies which edge of the field a paddle guards
type Side int

const (
	SidePlayer   Side = 0 // Left
	SideComputer Side = 1 // Right
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "computer"
}

type Paddle struct {
	Side     Side
	Position float64 // Vertical centre, 0-100
}

func NewPaddle(side Side) *Paddle {
	p := &Paddle{Side: side}
	p.Reset()
	return p
}

func (p *Paddle) Reset() {
	p.Position = FieldSize / 2
}

// SetPosition moves the paddle straight to y. Used for input-driven paddles.
func (p *Paddle) SetPosition(y float64) {
	p.Position = y
}

// Track moves the paddle toward ballY, at most TrackingRate*delta per call
func (p *Paddle) Track(delta, ballY float64) {
	maxStep := TrackingRate * delta
	diff := ballY - p.Position
	if diff > maxStep {
		diff = maxStep
	}
	if diff < -maxStep {
		diff = -maxStep
	}
	p.Position += diff
}

// Rect returns the paddle's bounding box
func (p *Paddle) Rect() Rect {
	cx := PaddleInset + PaddleWidth/2
	if p.Side == SideComputer {
		cx = FieldSize - cx
	}
	return RectAround(cx, p.Position, PaddleWidth, PaddleHeight)
}
