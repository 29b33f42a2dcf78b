/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package buttonbox

import (
	"simon/game"
)

// Box pin numbers, as the box firmware reports and accepts them
const (
	WHITE_BUTTON_LED  byte = 13
	GREEN_BUTTON_LED  byte = 12
	YELLOW_BUTTON_LED byte = 11
	RED_BUTTON_LED    byte = 10

	WHITE_BUTTON  byte = 30
	GREEN_BUTTON  byte = 32
	YELLOW_BUTTON byte = 34
	RED_BUTTON    byte = 36

	// Bit 7 marks a button release, or an LED switching off
	OFF_BIT   byte = 0x80
	HEARTBEAT byte = 0xFF
)

// The box's white button stands in for blue
var buttons = [game.NumChannels]byte{
	game.Red:    RED_BUTTON,
	game.Green:  GREEN_BUTTON,
	game.Blue:   WHITE_BUTTON,
	game.Yellow: YELLOW_BUTTON,
}

var leds = [game.NumChannels]byte{
	game.Red:    RED_BUTTON_LED,
	game.Green:  GREEN_BUTTON_LED,
	game.Blue:   WHITE_BUTTON_LED,
	game.Yellow: YELLOW_BUTTON_LED,
}

// decodeButton turns a byte from the box into a channel and its new state.
// ok is false for heartbeats and buttons the game does not use.
func decodeButton(b byte) (ch game.Channel, pressed bool, ok bool) {

	if b == HEARTBEAT {
		return 0, false, false
	}

	button := b &^ OFF_BIT
	for i, pin := range buttons {
		if pin == button {
			return game.Channel(i), b&OFF_BIT == 0, true
		}
	}
	return 0, false, false
}

// encodeLED builds the byte that switches a channel's LED
func encodeLED(ch game.Channel, on bool) byte {

	led := leds[ch]
	if !on {
		led |= OFF_BIT
	}
	return led
}
