package game

import (
	"testing"
)

// press is a scripted button press: down at 'at' (or the first poll after),
// held for 'hold' milliseconds
type press struct {
	ch   Channel
	at   uint32
	hold uint32
}

// fakeBoard is a Hardware whose clock moves only when the controller polls or
// delays. Every poll costs a millisecond.
type fakeBoard struct {
	now uint32

	leds    [NumChannels]bool
	toggles [NumChannels]int
	tones   []uint
	stops   int
	delays  int

	queue   []press
	down    bool
	downCh  Channel
	release uint32
}

func (b *fakeBoard) update() {

	if b.down {
		if b.now >= b.release {
			b.down = false
		}
		return
	}
	if len(b.queue) > 0 && b.queue[0].at <= b.now {
		p := b.queue[0]
		b.queue = b.queue[1:]
		b.down = true
		b.downCh = p.ch
		b.release = b.now + p.hold
	}
}

func (b *fakeBoard) push(p ...press) {

	b.queue = append(b.queue, p...)
}

func (b *fakeBoard) ReadButton(c Channel) bool {

	b.now++
	b.update()
	return b.down && b.downCh == c
}

func (b *fakeBoard) SetLED(c Channel, on bool) {

	if b.leds[c] != on {
		b.toggles[c]++
	}
	b.leds[c] = on
}

func (b *fakeBoard) PlayTone(frequency uint, durationMs uint32) {

	b.tones = append(b.tones, frequency)
}

func (b *fakeBoard) StopTone() {

	b.stops++
}

func (b *fakeBoard) NowMillis() uint32 {

	b.now++
	b.update()
	return b.now
}

func (b *fakeBoard) Delay(ms uint32) {

	b.delays++
	b.now += ms
}

// scriptedRandom returns its values in order, then repeats the last one
type scriptedRandom struct {
	values []int
	calls  int
}

func (r *scriptedRandom) Intn(n int) int {

	i := r.calls
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.calls++
	return r.values[i] % n
}

const maxTicks = 1000000

func runUntil(t *testing.T, c *Controller, done func() bool) {

	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if done() {
			return
		}
		c.Tick()
	}
	t.Fatalf("condition not reached; state %v, length %d", c.State(), len(c.Sequence()))
}

func inState(c *Controller, s State) func() bool {

	return func() bool { return c.State() == s }
}

// startRound drives the controller from power-on or game over to the first
// UserInput of a new round.
func startRound(t *testing.T, c *Controller, b *fakeBoard) {

	t.Helper()
	runUntil(t, c, inState(c, WaitForStart))
	b.push(press{ch: StartChannel, at: b.now + 10, hold: 40})
	runUntil(t, c, inState(c, UserInput))
}

// repeatSequence scripts the player pressing seq, one press every 400ms.
func repeatSequence(b *fakeBoard, seq []Channel) {

	at := b.now
	for _, ch := range seq {
		at += 400
		b.push(press{ch: ch, at: at, hold: 50})
	}
}
