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

// Channel is one of the four colour units: a button, an LED and a tone.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
	Yellow

	NumChannels int = 4
)

// StartChannel is the button that begins a round. Its LED blinks while waiting.
const StartChannel Channel = Green

// Channels lists every channel in cascade order.
var Channels = [NumChannels]Channel{Red, Green, Blue, Yellow}

var channelTones = [NumChannels]uint{
	Red:    310,
	Green:  415,
	Blue:   209,
	Yellow: 252,
}

var channelNames = [NumChannels]string{
	Red:    "red",
	Green:  "green",
	Blue:   "blue",
	Yellow: "yellow",
}

// Tone returns the channel's buzzer frequency in Hz.
func (c Channel) Tone() uint {

	if !c.Valid() {
		return 0
	}
	return channelTones[c]
}

func (c Channel) Valid() bool {

	return int(c) < NumChannels
}

func (c Channel) String() string {

	if !c.Valid() {
		return "unknown"
	}
	return channelNames[c]
}

// ParseChannel maps a colour name back to its channel.
func ParseChannel(name string) (Channel, bool) {

	for i, n := range channelNames {
		if n == name {
			return Channel(i), true
		}
	}
	return 0, false
}
