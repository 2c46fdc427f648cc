package game

import (
	"fmt"
	"math/rand"
)

const (
	FieldSize = 100.0 // Playfield spans 0-100 on both axes
	MaxScore  = 10
)

// Overlay prompt texts
const (
	WelcomeMessage = "Welcome to Ping Pong Game!"
	StartLabel     = "Start"
	RestartLabel   = "Restart"
)

// Phase is the session state machine position
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Listener receives session events. Calls happen synchronously from
// Start and Tick on the caller's goroutine.
type Listener interface {
	OnStart()
	OnBounce(b Bounce)
	OnPoint(scorer Side, playerScore, computerScore int)
	OnGameOver(playerScore, computerScore int)
}

// Overlay describes the prompt shown over the court
type Overlay struct {
	Visible bool
	Message string
	Button  string
}

// Session owns one game: entities, scores and the frame clock
type Session struct {
	Phase         Phase
	Ball          *Ball
	Player        *Paddle
	Computer      *Paddle
	PlayerScore   int
	ComputerScore int

	lastTime float64
	hasLast  bool
	rng      *rand.Rand
	listener Listener
}

// NewSession creates an idle session. A nil listener is allowed.
func NewSession(rng *rand.Rand, l Listener) *Session {
	if l == nil {
		l = nopListener{}
	}
	return &Session{
		Phase:    PhaseIdle,
		Ball:     NewBall(rng),
		Player:   NewPaddle(SidePlayer),
		Computer: NewPaddle(SideComputer),
		rng:      rng,
		listener: l,
	}
}

// Start begins a new game from the idle or game-over screen
func (s *Session) Start() {
	if s.Phase == PhasePlaying {
		return
	}

	s.PlayerScore = 0
	s.ComputerScore = 0
	s.Ball.Reset(s.rng)
	s.Computer.Reset()
	s.hasLast = false
	s.Phase = PhasePlaying

	s.listener.OnStart()
}

// Tick runs one frame. now is a monotonically increasing timestamp in
// milliseconds. The first tick of a game only records the timestamp.
func (s *Session) Tick(now float64) {
	if s.Phase != PhasePlaying {
		return
	}

	if s.hasLast {
		delta := now - s.lastTime

		bounce := s.Ball.Update(delta, []Rect{s.Player.Rect(), s.Computer.Rect()})
		if bounce.Wall {
			s.listener.OnBounce(Bounce{Wall: true})
		}
		if bounce.Paddle {
			s.listener.OnBounce(Bounce{Paddle: true})
		}

		s.Computer.Track(delta, s.Ball.Y)

		s.checkPoint()
	}

	s.lastTime = now
	s.hasLast = true
}

// checkPoint scores a point if the ball reached the left or right edge
func (s *Session) checkPoint() {
	rect := s.Ball.Rect()

	var scorer Side
	switch {
	case rect.Right >= FieldSize:
		s.PlayerScore++
		scorer = SidePlayer
	case rect.Left <= 0:
		s.ComputerScore++
		scorer = SideComputer
	default:
		return
	}

	s.listener.OnPoint(scorer, s.PlayerScore, s.ComputerScore)

	if s.PlayerScore >= MaxScore || s.ComputerScore >= MaxScore {
		s.Phase = PhaseGameOver
		s.listener.OnGameOver(s.PlayerScore, s.ComputerScore)
		return
	}

	s.Ball.Reset(s.rng)
	s.Computer.Reset()
}

// PointerMoved sets the player paddle from a vertical fraction (0-1) of the
// playfield. Ignored once the game is over.
func (s *Session) PointerMoved(fraction float64) {
	if s.Phase == PhaseGameOver {
		return
	}
	s.Player.SetPosition(fraction * FieldSize)
}

// NudgePlayer moves the player paddle by dy playfield units, clamped to the field
func (s *Session) NudgePlayer(dy float64) {
	if s.Phase == PhaseGameOver {
		return
	}
	y := s.Player.Position + dy
	if y < 0 {
		y = 0
	}
	if y > FieldSize {
		y = FieldSize
	}
	s.Player.SetPosition(y)
}

// Overlay returns the prompt for the current phase
func (s *Session) Overlay() Overlay {
	switch s.Phase {
	case PhaseIdle:
		return Overlay{Visible: true, Message: WelcomeMessage, Button: StartLabel}
	case PhaseGameOver:
		return Overlay{
			Visible: true,
			Message: GameOverMessage(s.PlayerScore, s.ComputerScore),
			Button:  RestartLabel,
		}
	}
	return Overlay{}
}

// GameOverMessage formats the final score line
func GameOverMessage(playerScore, computerScore int) string {
	return fmt.Sprintf("Game Over! Player: %d, Computer: %d", playerScore, computerScore)
}

type nopListener struct{}

func (nopListener) OnStart()               {}
func (nopListener) OnBounce(Bounce)        {}
func (nopListener) OnPoint(Side, int, int) {}
func (nopListener) OnGameOver(int, int)    {}
