//go:build tinygo

/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"machine"
	prand "math/rand"
	"time"

	"github.com/rs/zerolog"

	"simon/game"
	"simon/ht16k33"
)

func main() {

	// Set up the hardware or fail
	board, err := setup()
	if err != nil {
		failLoop()
	}

	logger := zerolog.New(machine.Serial).Level(zerolog.InfoLevel)
	controller := game.New(board,
		game.WithRandom(prand.New(prand.NewSource(seed()))),
		game.WithLogger(logger),
		game.WithObserver(showScore))

	// Play the game
	for {
		controller.Tick()
	}
}

/*
 *  Initialisation Functions
 */
func setup() (*picoBoard, error) {

	// Set up the game hardware
	board, err := newPicoBoard(machine.PWM0)
	if err != nil {
		return nil, err
	}

	// The score display is optional: play on without it
	i2c := machine.I2C0
	err = i2c.Configure(machine.I2CConfig{SCL: PIN_SCL, SDA: PIN_SDA})
	if err == nil {
		display = ht16k33.New(i2c)
		isDisplayPresent = display.Init() == nil
	}

	return board, nil
}

func seed() int64 {

	// Prefer the RP2040's ring oscillator RNG
	if n, err := machine.GetRNG(); err == nil {
		return int64(n)
	}
	return time.Now().UnixNano()
}

/*
 *  Score display
 */
func showScore(e game.Event) {

	if !isDisplayPresent {
		return
	}

	switch {
	case e.Kind == game.EventTransition && e.To == game.WaitForStart:
		display.ShowNumber(e.Best)
	case e.Kind == game.EventTransition && e.To == game.UserInput:
		display.ShowScore(e.Length, e.Best)
	default:
		return
	}
	display.Draw()
}

/*
 *  Misc Functions
 */
func failLoop() {

	// Signal hardware failure on the Pico LED
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(time.Millisecond * time.Duration(FAIL_BLINK_MS))
		led.High()
		time.Sleep(time.Millisecond * time.Duration(FAIL_BLINK_MS))
	}
}
