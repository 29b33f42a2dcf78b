/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */

// Package sim draws the four Simon pads in a terminal and turns key presses
// into button presses.
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"simon/game"
)

const (
	padWidth  = 14
	padHeight = 5
	padGap    = 2

	// A terminal reports key presses but not releases, so a key holds its
	// button down for this long. This is shorter than a terminal's initial
	// auto-repeat delay: a key kept down reads as a press, a release, then
	// one press per repeat.
	defaultHold = 120 * time.Millisecond
)

var padColors = [game.NumChannels]tcell.Color{
	game.Red:    tcell.ColorRed,
	game.Green:  tcell.ColorGreen,
	game.Blue:   tcell.ColorBlue,
	game.Yellow: tcell.ColorYellow,
}

// DefaultKeys maps keys to pads: number row and colour initials
var DefaultKeys = map[rune]game.Channel{
	'1': game.Red, 'r': game.Red,
	'2': game.Green, 'g': game.Green,
	'3': game.Blue, 'b': game.Blue,
	'4': game.Yellow, 'y': game.Yellow,
}

// Panel implements game.Panel on a tcell screen.
type Panel struct {
	mu     sync.Mutex
	screen tcell.Screen
	logger zerolog.Logger
	keys   map[rune]game.Channel
	hold   time.Duration
	now    func() time.Time

	leds     [game.NumChannels]bool
	heldTill [game.NumChannels]time.Time
	status   string

	quit chan struct{}
	once sync.Once
}

// NewPanel wraps an initialised screen
func NewPanel(screen tcell.Screen, logger zerolog.Logger) *Panel {

	return &Panel{
		screen: screen,
		logger: logger,
		keys:   DefaultKeys,
		hold:   defaultHold,
		now:    time.Now,
		quit:   make(chan struct{}),
	}
}

// Quit is closed when the user asks to leave
func (p *Panel) Quit() <-chan struct{} {

	return p.quit
}

// Run polls terminal events until ctx is done or the user quits
func (p *Panel) Run(ctx context.Context) {

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	p.draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !p.handleEvent(ev) {
				p.requestQuit()
				return
			}
		}
	}
}

func (p *Panel) requestQuit() {

	p.once.Do(func() { close(p.quit) })
}

// handleEvent returns false when the user quits
func (p *Panel) handleEvent(ev tcell.Event) bool {

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		p.screen.Sync()
		p.draw()
	}
	return true
}

func (p *Panel) handleKey(key tcell.Key, r rune) bool {

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		if r == 'q' {
			return false
		}
		if ch, ok := p.keys[r]; ok {
			p.press(ch)
		}
	}
	return true
}

func (p *Panel) press(ch game.Channel) {

	p.mu.Lock()
	p.heldTill[ch] = p.now().Add(p.hold)
	p.mu.Unlock()
	p.logger.Trace().Str("channel", ch.String()).Msg("Key press")
}

// ReadButton reports a pad as down while its key hold lasts
func (p *Panel) ReadButton(c game.Channel) bool {

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now().Before(p.heldTill[c])
}

// SetLED lights or darkens a pad and redraws
func (p *Panel) SetLED(c game.Channel, on bool) {

	p.mu.Lock()
	changed := p.leds[c] != on
	p.leds[c] = on
	p.mu.Unlock()

	if changed {
		p.draw()
	}
}

// Observe renders controller events on the status line
func (p *Panel) Observe(e game.Event) {

	var status string
	switch {
	case e.Kind == game.EventPress && e.Correct:
		status = fmt.Sprintf("Your turn: %d/%d   best %d", e.Cursor+1, e.Length, e.Best)
	case e.Kind == game.EventPress:
		return
	case e.To == game.WaitForStart:
		status = fmt.Sprintf("Press %s to start   best %d", game.StartChannel, e.Best)
	case e.To == game.PlaySequence:
		status = fmt.Sprintf("Watch...   length %d   best %d", e.Length, e.Best)
	case e.To == game.UserInput:
		status = fmt.Sprintf("Your turn: 0/%d   best %d", e.Length, e.Best)
	case e.To == game.GameOver:
		status = fmt.Sprintf("Game over at %d   best %d", e.Length, e.Best)
	default:
		return
	}

	p.mu.Lock()
	p.status = status
	p.mu.Unlock()
	p.draw()
}

func (p *Panel) draw() {

	p.mu.Lock()
	defer p.mu.Unlock()

	p.screen.Clear()
	for i, ch := range game.Channels {
		x := padGap + (i%2)*(padWidth+padGap)
		y := 1 + (i/2)*(padHeight+1)
		p.drawPad(x, y, ch, p.leds[ch])
	}

	statusY := 1 + 2*(padHeight+1)
	drawText(p.screen, padGap, statusY, tcell.StyleDefault, p.status)
	drawText(p.screen, padGap, statusY+1, tcell.StyleDefault.Dim(true), "keys 1-4 or r g b y, q to quit")
	p.screen.Show()
}

func (p *Panel) drawPad(x, y int, ch game.Channel, lit bool) {

	style := tcell.StyleDefault.Foreground(padColors[ch])
	fill := '░'
	if lit {
		style = style.Bold(true)
		fill = '█'
	}

	for dy := 0; dy < padHeight; dy++ {
		for dx := 0; dx < padWidth; dx++ {
			p.screen.SetContent(x+dx, y+dy, fill, nil, style)
		}
	}
	label := fmt.Sprintf(" %s ", ch)
	drawText(p.screen, x+(padWidth-len(label))/2, y+padHeight/2, style.Reverse(true), label)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {

	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
