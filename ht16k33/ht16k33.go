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
package ht16k33

import (
	"errors"
)

// HT16K33 LED Segment Commands
const (
	HT16K33_GENERIC_DISPLAY_ON      uint8 = 0x81
	HT16K33_GENERIC_DISPLAY_OFF     uint8 = 0x80
	HT16K33_GENERIC_SYSTEM_ON       uint8 = 0x21
	HT16K33_GENERIC_SYSTEM_OFF      uint8 = 0x20
	HT16K33_GENERIC_DISPLAY_ADDRESS uint8 = 0x00
	HT16K33_GENERIC_CMD_BRIGHTNESS  uint8 = 0xE0
	HT16K33_GENERIC_CMD_BLINK       uint8 = 0x81
	HT16K33_ADDRESS                 uint8 = 0x70

	// Display RAM offsets of the four digits; offset 4 is the colon
	HT16K33_SEGMENT_COLON_ROW uint8 = 4
	HT16K33_SEGMENT_MINUS     byte  = 0x40
	HT16K33_SEGMENT_BLANK     byte  = 0x00
)

var digitRows = [4]int{0, 2, 6, 8}

// Segment patterns for 0-9
var CHARSET = [10]byte{
	0x3F, 0x06, 0x5B, 0x4F, 0x66,
	0x6D, 0x7D, 0x07, 0x7F, 0x6F,
}

var ErrDigit = errors.New("ht16k33: digit out of range")

// Bus is an I2C controller. TinyGo's *machine.I2C satisfies it.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// HT16K33 drives a four-digit seven-segment backpack.
type HT16K33 struct {
	// Host I2C bus
	bus Bus
	// Internal data: brightness level, buffer
	address    uint8
	brightness uint
	buffer     []byte
}

func New(bus Bus) HT16K33 {

	return HT16K33{bus: bus, address: HT16K33_ADDRESS, brightness: 15, buffer: make([]byte, 16)}
}

func (p *HT16K33) Init() error {

	if err := p.Power(true); err != nil {
		return err
	}
	if err := p.SetBrightness(2); err != nil {
		return err
	}
	p.Clear()
	return p.Draw()
}

func (p *HT16K33) Power(isOn bool) error {

	if isOn {
		if err := p.i2cWriteByte(HT16K33_GENERIC_SYSTEM_ON); err != nil {
			return err
		}
		return p.i2cWriteByte(HT16K33_GENERIC_DISPLAY_ON)
	}

	if err := p.i2cWriteByte(HT16K33_GENERIC_DISPLAY_OFF); err != nil {
		return err
	}
	return p.i2cWriteByte(HT16K33_GENERIC_SYSTEM_OFF)
}

func (p *HT16K33) SetBrightness(brightness uint) error {

	if brightness > 15 {
		brightness = 15
	}

	p.brightness = brightness
	return p.i2cWriteByte(HT16K33_GENERIC_CMD_BRIGHTNESS | byte(brightness&0xFF))
}

func (p *HT16K33) Brightness() uint {

	return p.brightness
}

// SetGlyph writes a raw segment pattern to digit 0-3, counted from the left.
func (p *HT16K33) SetGlyph(digit int, glyph byte) error {

	if digit < 0 || digit > 3 {
		return ErrDigit
	}
	p.buffer[digitRows[digit]] = glyph
	return nil
}

func (p *HT16K33) SetColon(isSet bool) {

	if isSet {
		p.buffer[HT16K33_SEGMENT_COLON_ROW] = 0x02
	} else {
		p.buffer[HT16K33_SEGMENT_COLON_ROW] = 0x00
	}
}

// ShowNumber right-aligns value on the display. Values above 9999 show
// as dashes.
func (p *HT16K33) ShowNumber(value int) {

	p.Clear()
	if value < 0 || value > 9999 {
		for i := 0; i < 4; i++ {
			p.buffer[digitRows[i]] = HT16K33_SEGMENT_MINUS
		}
		return
	}

	// Fill from the right, dropping leading zeros
	for i := 3; i >= 0; i-- {
		p.buffer[digitRows[i]] = CHARSET[value%10]
		value /= 10
		if value == 0 {
			break
		}
	}
}

// ShowScore puts two two-digit numbers either side of the colon: the
// current sequence length on the left, the best on the right.
func (p *HT16K33) ShowScore(current int, best int) {

	p.Clear()
	p.setPair(0, current)
	p.setPair(2, best)
	p.SetColon(true)
}

func (p *HT16K33) setPair(first int, value int) {

	if value > 99 {
		value = 99
	}
	if value >= 10 {
		p.buffer[digitRows[first]] = CHARSET[value/10]
	}
	p.buffer[digitRows[first+1]] = CHARSET[value%10]
}

func (p *HT16K33) Clear() {

	// Clear the display buffer
	for i := range p.buffer {
		p.buffer[i] = 0x00
	}
}

func (p *HT16K33) Draw() error {

	// Prefix the buffer with the display RAM start address
	output_buffer := [17]byte{HT16K33_GENERIC_DISPLAY_ADDRESS}
	copy(output_buffer[1:], p.buffer)

	// Write out the transmit buffer
	return p.i2cWriteBlock(output_buffer[:])
}

func (p *HT16K33) i2cWriteByte(value byte) error {

	// Convenience function to write a single byte to the display
	data := [1]byte{value}
	return p.bus.Tx(uint16(p.address), data[:], nil)
}

func (p *HT16K33) i2cWriteBlock(data []byte) error {

	// Convenience function to write a block of bytes to the display
	return p.bus.Tx(uint16(p.address), data, nil)
}
