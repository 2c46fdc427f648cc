package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pingpong/internal/game"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
	NetChar    = '\u2502' // │
)

// Renderer draws game snapshots onto a screen
type Renderer struct {
	screen *Screen
	theme  *Theme
}

// NewRenderer creates a new renderer with the given screen and theme
func NewRenderer(screen *Screen, theme *Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws one frame
func (r *Renderer) Render(snap game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	court := CourtLayout(screenW, screenH)
	style := r.theme.Style()

	// Whole screen takes the theme background
	r.screen.FillRect(0, 0, screenW, screenH, style, ' ')

	if court.Width > 0 && court.Height > 0 {
		r.renderNet(court, style)
		r.renderRect(court, snap.PlayerRect, style, PaddleChar)
		r.renderRect(court, snap.ComputerRect, style, PaddleChar)
		r.renderBall(court, snap, style)
	}

	r.renderScores(snap, screenW, style)

	if snap.Overlay.Visible {
		r.renderOverlay(snap.Overlay, screenW, screenH, style)
	}

	r.screen.Show()
}

// renderNet draws a dashed centre line
func (r *Renderer) renderNet(court Court, style tcell.Style) {
	x := court.Col(game.FieldSize / 2)
	netStyle := style.Dim(true)
	for y := court.Y; y < court.Y+court.Height; y += 2 {
		r.screen.SetCell(x, y, netStyle, NetChar)
	}
}

func (r *Renderer) renderRect(court Court, rect game.Rect, style tcell.Style, ch rune) {
	x0, y0, x1, y1 := court.Cells(rect)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetCell(x, y, style, ch)
		}
	}
}

func (r *Renderer) renderBall(court Court, snap game.Snapshot, style tcell.Style) {
	x := court.Col(snap.Ball.X)
	y := court.Row(snap.Ball.Y)
	if x < court.X || x >= court.X+court.Width || y < court.Y || y >= court.Y+court.Height {
		return
	}
	r.screen.SetCell(x, y, style.Bold(true), BallChar)
}

// renderScores draws the player score left of centre and the computer score right of it
func (r *Renderer) renderScores(snap game.Snapshot, screenW int, style tcell.Style) {
	scoreStyle := style.Bold(true)

	player := strconv.Itoa(snap.PlayerScore)
	computer := strconv.Itoa(snap.ComputerScore)

	r.screen.DrawText(screenW/4-TextWidth(player)/2, 0, player, scoreStyle)
	r.screen.DrawText(screenW*3/4-TextWidth(computer)/2, 0, computer, scoreStyle)
}

// renderOverlay draws the prompt box with its message and button
func (r *Renderer) renderOverlay(o game.Overlay, screenW, screenH int, style tcell.Style) {
	button := ButtonText(o.Button)

	boxW := max(TextWidth(o.Message), TextWidth(button)) + 6
	if boxW > screenW {
		boxW = screenW
	}
	boxH := 7
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2

	r.screen.FillRect(boxX, boxY, boxW, boxH, style, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, style)

	r.screen.DrawCentered(boxY+2, o.Message, style.Bold(true))
	r.screen.DrawCentered(boxY+4, button, style.Reverse(true))
}

// ButtonText decorates a button label the way the overlay shows it
func ButtonText(label string) string {
	return "[ " + label + " ]"
}
