package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want Action
	}{
		{tcell.KeyUp, 0, ActionUp},
		{tcell.KeyDown, 0, ActionDown},
		{tcell.KeyRune, 'w', ActionUp},
		{tcell.KeyRune, 'W', ActionUp},
		{tcell.KeyRune, 's', ActionDown},
		{tcell.KeyRune, 'S', ActionDown},
		{tcell.KeyEnter, 0, ActionConfirm},
		{tcell.KeyRune, ' ', ActionConfirm},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'Q', ActionQuit},
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyTab, 0, ActionNone},
	}

	for _, tt := range tests {
		got := KeyToAction(tt.key, tt.rune)
		if got != tt.want {
			t.Errorf("KeyToAction(%v, %c) = %v, want %v", tt.key, tt.rune, got, tt.want)
		}
	}
}

func TestPointer_Move(t *testing.T) {
	var p Pointer
	court := Court{X: 0, Y: 1, Width: 80, Height: 20}

	ev, ok := p.Handle(tcell.NewEventMouse(10, 6, tcell.ButtonNone, tcell.ModNone), court)

	if !ok {
		t.Fatal("expected event to map")
	}
	if ev.Kind != PointerMove {
		t.Errorf("expected PointerMove, got %v", ev.Kind)
	}
	if ev.Fraction != 0.25 {
		t.Errorf("expected fraction 0.25, got %f", ev.Fraction)
	}
}

func TestPointer_TouchSequence(t *testing.T) {
	var p Pointer
	court := Court{X: 0, Y: 1, Width: 80, Height: 20}

	ev, ok := p.Handle(tcell.NewEventMouse(5, 11, tcell.Button1, tcell.ModNone), court)
	if !ok || ev.Kind != TouchStart {
		t.Fatalf("expected TouchStart, got %v (ok=%v)", ev.Kind, ok)
	}
	if ev.Fraction != 0.5 {
		t.Errorf("expected fraction 0.5, got %f", ev.Fraction)
	}
	if !p.Pressed() || p.TouchRow() != 11 {
		t.Errorf("expected touch at row 11, got pressed=%v row=%d", p.Pressed(), p.TouchRow())
	}

	ev, ok = p.Handle(tcell.NewEventMouse(5, 16, tcell.Button1, tcell.ModNone), court)
	if !ok || ev.Kind != TouchMove {
		t.Fatalf("expected TouchMove, got %v (ok=%v)", ev.Kind, ok)
	}
	if ev.Fraction != 0.75 {
		t.Errorf("expected fraction 0.75, got %f", ev.Fraction)
	}

	ev, ok = p.Handle(tcell.NewEventMouse(5, 16, tcell.ButtonNone, tcell.ModNone), court)
	if !ok || ev.Kind != TouchEnd {
		t.Fatalf("expected TouchEnd, got %v (ok=%v)", ev.Kind, ok)
	}
	if p.Pressed() || p.TouchRow() != 0 {
		t.Errorf("expected touch state reset, got pressed=%v row=%d", p.Pressed(), p.TouchRow())
	}

	ev, _ = p.Handle(tcell.NewEventMouse(5, 16, tcell.ButtonNone, tcell.ModNone), court)
	if ev.Kind != PointerMove {
		t.Errorf("expected PointerMove after release, got %v", ev.Kind)
	}
}

func TestPointer_EmptyCourt(t *testing.T) {
	var p Pointer

	_, ok := p.Handle(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone), Court{})

	if ok {
		t.Error("expected no mapping for an empty court")
	}
}
