/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */

// Package buttonbox drives a serial button box: buttons in, LEDs out, one
// byte per event.
package buttonbox

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.bug.st/serial"

	"simon/game"
	"simon/logging"
)

const heartbeatPeriod = 200 * time.Millisecond

// Box implements game.Panel over a serial port.
type Box struct {
	logger    *zerolog.Logger
	port      io.ReadWriteCloser
	outChan   chan byte
	done      chan struct{}
	waitGroup sync.WaitGroup

	mu      sync.Mutex
	pressed [game.NumChannels]bool
	closed  bool
}

// Open connects to the box on the named serial port
func Open(logger *zerolog.Logger, portName string, baudRate int) (*Box, error) {

	mode := &serial.Mode{
		BaudRate: baudRate,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", portName, err)
	}
	return New(logging.Module(logger, "ButtonBox"), port), nil
}

// New wraps an already open port
func New(logger *zerolog.Logger, port io.ReadWriteCloser) *Box {

	return &Box{
		logger:  logger,
		port:    port,
		outChan: make(chan byte, 10),
		done:    make(chan struct{}),
	}
}

// Start launches the reader, writer and heartbeat. They stop when ctx is done
// or the port closes.
func (b *Box) Start(ctx context.Context) {

	ctx, cancel := context.WithCancel(ctx)
	b.waitGroup.Add(3)
	go b.reader(cancel)
	go b.writer(ctx)
	go b.heartbeat(ctx)
	go func() {
		<-ctx.Done()
		b.shutdown()
	}()
}

// Close releases the port and waits for the goroutines
func (b *Box) Close() error {

	err := b.shutdown()
	b.waitGroup.Wait()
	return err
}

func (b *Box) shutdown() error {

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.pressed = [game.NumChannels]bool{}
	close(b.done)
	b.mu.Unlock()

	return b.port.Close()
}

// ReadButton reports the last state the box sent for the channel's button
func (b *Box) ReadButton(c game.Channel) bool {

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pressed[c]
}

// SetLED queues the LED command; it is dropped once the box is closed
func (b *Box) SetLED(c game.Channel, on bool) {

	select {
	case b.outChan <- encodeLED(c, on):
	case <-b.done:
	}
}

func (b *Box) reader(portCancel context.CancelFunc) {

	buff := make([]byte, 100)
	defer b.waitGroup.Done()

	for {
		n, err := b.port.Read(buff)
		if n == 0 || err != nil {
			b.logger.Info().Err(err).Msg("Done reading")
			b.releaseAll()
			portCancel()
			return
		}
		for _, element := range buff[:n] {
			ch, pressed, ok := decodeButton(element)
			if !ok {
				continue
			}
			b.mu.Lock()
			if !b.closed {
				b.pressed[ch] = pressed
			}
			b.mu.Unlock()
			b.logger.Trace().Str("channel", ch.String()).Bool("pressed", pressed).Msg("Button")
		}
	}
}

// releaseAll drops every held button: a lost box reports no releases
func (b *Box) releaseAll() {

	b.mu.Lock()
	b.pressed = [game.NumChannels]bool{}
	b.mu.Unlock()
}

func (b *Box) writer(ctx context.Context) {

	buff := make([]byte, 1)
	defer b.waitGroup.Done()

	for {
		select {
		case toWrite := <-b.outChan:
			buff[0] = toWrite
			if _, err := b.port.Write(buff); err != nil {
				b.logger.Error().Err(err).Msg("Failed writing to port")
				return
			}
			b.logger.Trace().Msgf("Wrote byte '%v'", toWrite)
		case <-ctx.Done():
			b.logger.Info().Msg("Writer done")
			return
		}
	}
}

func (b *Box) heartbeat(ctx context.Context) {

	ticker := time.NewTicker(heartbeatPeriod)
	defer ticker.Stop()
	defer b.waitGroup.Done()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info().Msg("Heartbeat done")
			return
		case <-ticker.C:
			select {
			case b.outChan <- HEARTBEAT:
			case <-ctx.Done():
			}
		}
	}
}
