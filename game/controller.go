/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Random supplies channel draws. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Controller owns the game state machine, the sequence and the debounce and
// blink timers. It is driven by a single goroutine calling Tick.
type Controller struct {
	hw       Hardware
	rng      Random
	logger   zerolog.Logger
	observer Observer

	state    State
	sequence Sequence

	// Player position in the sequence, valid in UserInput
	cursor int

	// Debounce control
	lastInput uint32

	// Start button blink control
	lastBlink uint32
	isBlinkOn bool

	// Session score
	games int
	best  int

	// Pause between idle polls, zero for none
	pollInterval uint32
}

type Option func(*Controller)

func WithRandom(r Random) Option {

	return func(c *Controller) {
		c.rng = r
	}
}

func WithLogger(logger zerolog.Logger) Option {

	return func(c *Controller) {
		c.logger = logger
	}
}

// WithPollInterval pauses ms between polls that find nothing to do, and
// between polls while waiting for a release. Leave it unset on a
// microcontroller; set it on a desktop so idle polling does not hog a core.
func WithPollInterval(ms uint32) Option {

	return func(c *Controller) {
		c.pollInterval = ms
	}
}

func WithObserver(o Observer) Option {

	return func(c *Controller) {
		c.observer = o
	}
}

// New returns a controller in the Welcome state.
func New(hw Hardware, opts ...Option) *Controller {

	c := &Controller{
		hw:     hw,
		logger: zerolog.Nop(),
		state:  Welcome,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

func (c *Controller) State() State {

	return c.state
}

// Sequence returns a copy of the current sequence.
func (c *Controller) Sequence() []Channel {

	return c.sequence.Channels()
}

func (c *Controller) Cursor() int {

	return c.cursor
}

// Games returns the number of rounds started this session.
func (c *Controller) Games() int {

	return c.games
}

// Best returns the longest sequence completed this session.
func (c *Controller) Best() int {

	return c.best
}

// Run calls Tick until ctx is done. Blocking actions already under way run to
// completion; the context is only checked between ticks.
func (c *Controller) Run(ctx context.Context) error {

	for {
		select {
		case <-ctx.Done():
			c.allLEDs(OFF)
			c.hw.StopTone()
			return ctx.Err()
		default:
			c.Tick()
		}
	}
}

/*
 *  Main Game Loop
 */
// Tick performs one iteration of the polling loop: the current state's action
// and any transition it triggers.
func (c *Controller) Tick() {

	switch c.state {
	case Welcome:
		c.welcome()
	case WaitForStart:
		c.waitForStart()
	case PlaySequence:
		c.playSequence()
	case UserInput:
		c.userInput()
	case GameOver:
		c.gameOver()
	}
}

func (c *Controller) welcome() {

	welcomeAnimation(c.hw)
	c.enterWaitForStart()
}

func (c *Controller) waitForStart() {

	// Blink the start LED without blocking
	now := c.hw.NowMillis()
	if Elapsed(now, c.lastBlink) >= START_BLINK_PERIOD_MS {
		c.isBlinkOn = !c.isBlinkOn
		c.hw.SetLED(StartChannel, c.isBlinkOn)
		c.lastBlink = now
	}

	if !c.hw.ReadButton(StartChannel) {
		c.idle()
		return
	}

	// One start per press: hold here until the button is let go
	c.waitForRelease(StartChannel)
	c.isBlinkOn = false
	c.hw.SetLED(StartChannel, OFF)

	c.sequence.Reset()
	c.games++
	c.logger.Info().Int("game", c.games).Msg("Round started")
	c.hw.Delay(START_PAUSE_MS)
	c.setState(PlaySequence)
}

func (c *Controller) playSequence() {

	if c.sequence.Append(c.nextChannel()) {
		c.logger.Debug().Int("length", c.sequence.Len()).Msg("Sequence extended")
	} else {
		c.logger.Debug().Int("length", c.sequence.Len()).Msg("Sequence at capacity")
	}

	for i := 0; i < c.sequence.Len(); i++ {
		ch := c.sequence.At(i)
		c.hw.SetLED(ch, ON)
		c.hw.PlayTone(ch.Tone(), PLAYBACK_TONE_MS)
		c.hw.Delay(PLAYBACK_TONE_MS)
		c.hw.SetLED(ch, OFF)
		c.hw.StopTone()
		c.hw.Delay(PLAYBACK_GAP_MS)
	}

	c.cursor = 0
	c.lastInput = c.hw.NowMillis()
	c.setState(UserInput)
}

// nextChannel draws the channel to append. A fresh sequence never opens with
// the start channel.
func (c *Controller) nextChannel() Channel {

	ch := Channel(c.rng.Intn(NumChannels))
	if c.sequence.Len() == 0 {
		for ch == StartChannel {
			ch = Channel(c.rng.Intn(NumChannels))
		}
	}
	return ch
}

func (c *Controller) userInput() {

	ch, ok := c.readInput()
	if !ok {
		c.idle()
		return
	}

	playFeedback(c.hw, ch)

	correct := ch == c.sequence.At(c.cursor)
	c.notify(Event{Kind: EventPress, Channel: ch, Correct: correct})
	if !correct {
		c.logger.Info().
			Str("pressed", ch.String()).
			Str("expected", c.sequence.At(c.cursor).String()).
			Int("position", c.cursor).
			Msg("Wrong button")
		c.setState(GameOver)
		return
	}

	c.cursor++
	if c.cursor < c.sequence.Len() {
		return
	}

	// Whole sequence repeated
	if c.sequence.Len() > c.best {
		c.best = c.sequence.Len()
		c.logger.Info().Int("best", c.best).Msg("New best")
	}
	c.hw.Delay(ROUND_PAUSE_MS)
	c.setState(PlaySequence)
}

// readInput returns a debounced press. Presses sooner than DEBOUNCE_TIME_MS
// after the last recognised one are ignored. A recognised press blocks until
// its button is released.
func (c *Controller) readInput() (Channel, bool) {

	now := c.hw.NowMillis()
	if Elapsed(now, c.lastInput) < DEBOUNCE_TIME_MS {
		return 0, false
	}

	for _, ch := range Channels {
		if c.hw.ReadButton(ch) {
			c.lastInput = now
			c.waitForRelease(ch)
			return ch, true
		}
	}
	return 0, false
}

func (c *Controller) waitForRelease(ch Channel) {

	for c.hw.ReadButton(ch) {
		c.idle()
	}
}

func (c *Controller) idle() {

	if c.pollInterval > 0 {
		c.hw.Delay(c.pollInterval)
	}
}

func (c *Controller) gameOver() {

	gameOverAnimation(c.hw)
	c.enterWaitForStart()
}

func (c *Controller) enterWaitForStart() {

	c.allLEDs(OFF)
	c.isBlinkOn = false
	c.lastBlink = c.hw.NowMillis()
	c.setState(WaitForStart)
}

func (c *Controller) setState(next State) {

	prev := c.state
	c.state = next
	c.logger.Debug().
		Str("from", prev.String()).
		Str("to", next.String()).
		Int("length", c.sequence.Len()).
		Msg("State change")
	c.notify(Event{Kind: EventTransition, From: prev, To: next})
}

func (c *Controller) notify(e Event) {

	if c.observer == nil {
		return
	}
	e.Length = c.sequence.Len()
	e.Cursor = c.cursor
	e.Games = c.games
	e.Best = c.best
	c.observer(e)
}

func (c *Controller) allLEDs(on bool) {

	setAll(c.hw, on)
}
