package game

// BallState is the ball's position and motion at one instant
type BallState struct {
	X, Y       float64
	DirX, DirY float64
	Velocity   float64
}

// Snapshot is a copy of everything the presentation layer draws
type Snapshot struct {
	Phase         Phase
	Ball          BallState
	PlayerY       float64
	ComputerY     float64
	PlayerScore   int
	ComputerScore int
	Overlay       Overlay

	BallRect     Rect
	PlayerRect   Rect
	ComputerRect Rect
}

// Snapshot copies the current session state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase: s.Phase,
		Ball: BallState{
			X:        s.Ball.X,
			Y:        s.Ball.Y,
			DirX:     s.Ball.DirX,
			DirY:     s.Ball.DirY,
			Velocity: s.Ball.Velocity,
		},
		PlayerY:       s.Player.Position,
		ComputerY:     s.Computer.Position,
		PlayerScore:   s.PlayerScore,
		ComputerScore: s.ComputerScore,
		Overlay:       s.Overlay(),
		BallRect:      s.Ball.Rect(),
		PlayerRect:    s.Player.Rect(),
		ComputerRect:  s.Computer.Rect(),
	}
}
