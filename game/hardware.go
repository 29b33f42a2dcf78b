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
	"time"
)

// Buttons reports whether a channel's button is currently held down.
type Buttons interface {
	ReadButton(c Channel) bool
}

// LEDs drives a channel's light.
type LEDs interface {
	SetLED(c Channel, on bool)
}

// Buzzer emits a single tone. PlayTone returns at once; the tone stops by
// itself after durationMs, or earlier on StopTone.
type Buzzer interface {
	PlayTone(frequency uint, durationMs uint32)
	StopTone()
}

// Clock is a monotonic millisecond counter that may wrap. Delay blocks for ms.
type Clock interface {
	NowMillis() uint32
	Delay(ms uint32)
}

// Hardware is everything the controller touches. Reads and writes are
// assumed never to fail.
type Hardware interface {
	Buttons
	LEDs
	Buzzer
	Clock
}

// Panel is a board that has buttons and lights but no sound or clock of its
// own, such as the terminal simulator or a serial button box.
type Panel interface {
	Buttons
	LEDs
}

type board struct {
	Panel
	Buzzer
	Clock
}

// Compose assembles Hardware from separate parts.
func Compose(panel Panel, buzzer Buzzer, clock Clock) Hardware {

	return board{Panel: panel, Buzzer: buzzer, Clock: clock}
}

// SystemClock is a Clock backed by the runtime's monotonic time.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {

	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) NowMillis() uint32 {

	// Truncation gives the same wrap-around as a 32-bit hardware counter
	return uint32(time.Since(c.start).Milliseconds())
}

func (c *SystemClock) Delay(ms uint32) {

	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Elapsed returns the milliseconds from since to now, correct across wrap.
func Elapsed(now, since uint32) uint32 {

	return now - since
}
