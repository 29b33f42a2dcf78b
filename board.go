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
	"time"

	"simon/game"
)

// pwmGroup is the part of TinyGo's RP2040 PWM slice the buzzer needs
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
	SetPeriod(period uint64) error
}

// picoBoard implements game.Hardware on the Pico's GPIO and PWM.
type picoBoard struct {
	pwm     pwmGroup
	channel uint8
	clock   *game.SystemClock

	// Tone cut-off control
	toneEnd  uint32
	isToneOn bool
}

func newPicoBoard(pwm pwmGroup) (*picoBoard, error) {

	// Buttons pull up and read low when pressed
	for _, pin := range buttonPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	for _, pin := range ledPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}

	// Set up the speaker on its PWM slice, silent to begin with
	err := pwm.Configure(machine.PWMConfig{Period: uint64(time.Second / 440)})
	if err != nil {
		return nil, err
	}
	channel, err := pwm.Channel(PIN_SPEAKER)
	if err != nil {
		return nil, err
	}
	pwm.Set(channel, 0)

	return &picoBoard{pwm: pwm, channel: channel, clock: game.NewSystemClock()}, nil
}

func (b *picoBoard) ReadButton(c game.Channel) bool {

	return !buttonPins[c].Get()
}

func (b *picoBoard) SetLED(c game.Channel, on bool) {

	ledPins[c].Set(on)
}

func (b *picoBoard) PlayTone(frequency uint, durationMs uint32) {

	if frequency == 0 {
		b.StopTone()
		return
	}

	// Square wave: period from the frequency, 50% duty
	if err := b.pwm.SetPeriod(uint64(time.Second) / uint64(frequency)); err != nil {
		return
	}
	b.pwm.Set(b.channel, b.pwm.Top()/2)
	b.toneEnd = b.clock.NowMillis() + durationMs
	b.isToneOn = true
}

func (b *picoBoard) StopTone() {

	b.pwm.Set(b.channel, 0)
	b.isToneOn = false
}

func (b *picoBoard) NowMillis() uint32 {

	now := b.clock.NowMillis()

	// Cut the tone once its duration is up
	if b.isToneOn && int32(now-b.toneEnd) >= 0 {
		b.StopTone()
	}
	return now
}

func (b *picoBoard) Delay(ms uint32) {

	start := b.NowMillis()
	for game.Elapsed(b.NowMillis(), start) < ms {
		time.Sleep(time.Millisecond)
	}
}
