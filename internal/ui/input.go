package ui

import (
	"github.com/gdamore/tcell/v2"
)

// KeyStep is how far the arrow keys move the player paddle, in playfield units
const KeyStep = 5.0

// Action is what a key press asks the game to do
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionConfirm // Press the overlay button
	ActionUp
	ActionDown
)

// KeyToAction maps a key event to a game action
func KeyToAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit
		case ' ':
			return ActionConfirm
		case 'w', 'W':
			return ActionUp
		case 's', 'S':
			return ActionDown
		}
	}
	return ActionNone
}

// PointerKind classifies a mouse report
type PointerKind int

const (
	PointerMove PointerKind = iota // Motion with no button held
	TouchStart                     // Button pressed
	TouchMove                      // Motion with the button held
	TouchEnd                       // Button released
)

// PointerEvent is a mouse report translated to court coordinates
type PointerEvent struct {
	Kind PointerKind
	// Fraction is the vertical position within the court, 0 at the top
	// and 1 at the bottom. Unset for TouchEnd.
	Fraction float64
}

// Pointer turns raw mouse reports into pointer and touch events
type Pointer struct {
	pressed bool
	touchY  int
}

// Handle classifies ev and maps its row into the court. It returns false
// when the row cannot be mapped.
func (p *Pointer) Handle(ev *tcell.EventMouse, court Court) (PointerEvent, bool) {
	_, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	var kind PointerKind
	switch {
	case held && !p.pressed:
		kind = TouchStart
		p.pressed = true
		p.touchY = y
	case held:
		kind = TouchMove
	case p.pressed:
		p.pressed = false
		p.touchY = 0
		return PointerEvent{Kind: TouchEnd}, true
	default:
		kind = PointerMove
	}

	fraction, ok := court.Fraction(y)
	if !ok {
		return PointerEvent{}, false
	}
	return PointerEvent{Kind: kind, Fraction: fraction}, true
}

// Pressed reports whether a touch is in progress
func (p *Pointer) Pressed() bool {
	return p.pressed
}

// TouchRow is the row where the current touch started, 0 when none
func (p *Pointer) TouchRow() int {
	return p.touchY
}
