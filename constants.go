//go:build tinygo

/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"machine"

	"simon/game"
)

/*
 * CONSTANTS
 */
const (
	// GPIO pins
	PIN_SDA     machine.Pin = machine.GP8
	PIN_SCL     machine.Pin = machine.GP9
	PIN_SPEAKER machine.Pin = machine.GP16

	PIN_LED_RED    machine.Pin = machine.GP21
	PIN_LED_GREEN  machine.Pin = machine.GP20
	PIN_LED_BLUE   machine.Pin = machine.GP19
	PIN_LED_YELLOW machine.Pin = machine.GP18

	PIN_BUTTON_RED    machine.Pin = machine.GP2
	PIN_BUTTON_GREEN  machine.Pin = machine.GP3
	PIN_BUTTON_BLUE   machine.Pin = machine.GP4
	PIN_BUTTON_YELLOW machine.Pin = machine.GP5

	// Failure blink period
	FAIL_BLINK_MS int64 = 100
)

// Channel to pin mapping, indexed by game.Channel
var (
	buttonPins = [game.NumChannels]machine.Pin{
		game.Red:    PIN_BUTTON_RED,
		game.Green:  PIN_BUTTON_GREEN,
		game.Blue:   PIN_BUTTON_BLUE,
		game.Yellow: PIN_BUTTON_YELLOW,
	}
	ledPins = [game.NumChannels]machine.Pin{
		game.Red:    PIN_LED_RED,
		game.Green:  PIN_LED_GREEN,
		game.Blue:   PIN_LED_BLUE,
		game.Yellow: PIN_LED_YELLOW,
	}
)
