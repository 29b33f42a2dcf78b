package sim

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"simon/game"
)

func newTestPanel(t *testing.T) (*Panel, tcell.SimulationScreen) {

	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(60, 20)
	t.Cleanup(screen.Fini)
	return NewPanel(screen, zerolog.Nop()), screen
}

// TestKeyHoldsButton verifies a key press reads as held for the hold window
func TestKeyHoldsButton(t *testing.T) {

	p, _ := newTestPanel(t)
	now := time.Unix(1000, 0)
	p.now = func() time.Time { return now }

	if !p.handleKey(tcell.KeyRune, 'b') {
		t.Fatal("Expected key to keep the panel running")
	}

	if !p.ReadButton(game.Blue) {
		t.Error("Expected blue held straight after its key")
	}
	if p.ReadButton(game.Red) {
		t.Error("Expected red untouched")
	}

	now = now.Add(defaultHold)
	if p.ReadButton(game.Blue) {
		t.Error("Expected blue released after the hold window")
	}
}

// TestKeyMapping verifies number and initial keys select the same pads
func TestKeyMapping(t *testing.T) {

	tests := []struct {
		keys []rune
		ch   game.Channel
	}{
		{[]rune{'1', 'r'}, game.Red},
		{[]rune{'2', 'g'}, game.Green},
		{[]rune{'3', 'b'}, game.Blue},
		{[]rune{'4', 'y'}, game.Yellow},
	}

	for _, tt := range tests {
		for _, k := range tt.keys {
			if got, ok := DefaultKeys[k]; !ok || got != tt.ch {
				t.Errorf("Key %q maps to %v, want %v", k, got, tt.ch)
			}
		}
	}
}

// TestQuitKeys verifies Escape, Ctrl-C and q end the panel
func TestQuitKeys(t *testing.T) {

	p, _ := newTestPanel(t)

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		quit bool
	}{
		{"escape", tcell.KeyEscape, 0, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, true},
		{"q", tcell.KeyRune, 'q', true},
		{"unmapped", tcell.KeyRune, 'x', false},
		{"enter", tcell.KeyEnter, 0, false},
	}

	for _, tt := range tests {
		if got := !p.handleKey(tt.key, tt.r); got != tt.quit {
			t.Errorf("%s: quit = %v, want %v", tt.name, got, tt.quit)
		}
	}
}

// TestSetLEDDraws verifies a lit pad is drawn solid in its colour
func TestSetLEDDraws(t *testing.T) {

	p, screen := newTestPanel(t)

	p.SetLED(game.Yellow, true)

	// Yellow is the bottom-right pad
	x := padGap + padWidth + padGap
	y := 1 + padHeight + 1
	mainc, _, style, _ := screen.GetContent(x, y)
	if mainc != '█' {
		t.Errorf("Expected lit pad fill, got %q", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.ColorYellow {
		t.Errorf("Expected yellow foreground, got %v", fg)
	}

	p.SetLED(game.Yellow, false)
	mainc, _, _, _ = screen.GetContent(x, y)
	if mainc != '░' {
		t.Errorf("Expected dark pad fill, got %q", mainc)
	}
}

// TestObserveStatus verifies controller events reach the status line
func TestObserveStatus(t *testing.T) {

	p, _ := newTestPanel(t)

	p.Observe(game.Event{Kind: game.EventTransition, To: game.PlaySequence, Length: 3, Best: 2})
	if !strings.Contains(p.status, "length 3") {
		t.Errorf("Unexpected status %q", p.status)
	}

	p.Observe(game.Event{Kind: game.EventPress, Correct: true, Cursor: 0, Length: 3, Best: 2})
	if !strings.HasPrefix(p.status, "Your turn: 1/3") {
		t.Errorf("Unexpected status %q", p.status)
	}

	p.Observe(game.Event{Kind: game.EventPress, Correct: false, Length: 3})
	if !strings.HasPrefix(p.status, "Your turn: 1/3") {
		t.Errorf("Wrong press changed status to %q", p.status)
	}

	p.Observe(game.Event{Kind: game.EventTransition, To: game.GameOver, Length: 3, Best: 2})
	if !strings.HasPrefix(p.status, "Game over at 3") {
		t.Errorf("Unexpected status %q", p.status)
	}
}

// TestRunStopsOnCancel verifies Run returns when its context ends
func TestRunStopsOnCancel(t *testing.T) {

	p, _ := newTestPanel(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// TestRequestQuit verifies the Quit channel closes once, however often asked
func TestRequestQuit(t *testing.T) {

	p, _ := newTestPanel(t)

	p.requestQuit()
	p.requestQuit()

	select {
	case <-p.Quit():
	default:
		t.Fatal("Quit not closed")
	}
}

// TestRepeatedKeyIsNewPress verifies an auto-repeat arriving after the hold
// window reads as a release followed by a fresh press
func TestRepeatedKeyIsNewPress(t *testing.T) {

	p, _ := newTestPanel(t)
	now := time.Unix(2000, 0)
	p.now = func() time.Time { return now }

	p.handleKey(tcell.KeyRune, 'g')
	if !p.ReadButton(game.Green) {
		t.Fatal("Expected green held after its key")
	}

	// Typical initial repeat delay
	now = now.Add(300 * time.Millisecond)
	if p.ReadButton(game.Green) {
		t.Error("Expected green released before the first repeat")
	}

	p.handleKey(tcell.KeyRune, 'g')
	if !p.ReadButton(game.Green) {
		t.Error("Expected the repeat to press green again")
	}
}
