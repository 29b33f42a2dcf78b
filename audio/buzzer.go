/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// Config selects the output device settings
type Config struct {
	Enabled    bool
	SampleRate int
	Volume     float64 // 0.0-1.0
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {

	return Config{
		Enabled:    true,
		SampleRate: 44100,
		Volume:     0.5,
	}
}

// Buzzer plays single sine tones through the system speaker. It implements
// game.Buzzer. When the speaker cannot be opened it stays silent.
type Buzzer struct {
	mu          sync.Mutex
	logger      zerolog.Logger
	config      Config
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewBuzzer creates a buzzer; call Start to open the speaker
func NewBuzzer(logger zerolog.Logger, cfg Config) *Buzzer {

	return &Buzzer{
		logger:     logger,
		config:     cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		mixer:      &beep.Mixer{},
	}
}

// Start opens the speaker. A failure leaves the buzzer silent and is returned
// for the caller to log; the game can run without sound.
func (b *Buzzer) Start() error {

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized || !b.config.Enabled {
		return nil
	}

	err := speaker.Init(b.sampleRate, b.sampleRate.N(time.Millisecond*50))
	if err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(b.mixer)
	b.initialized = true
	b.logger.Info().Int("sample_rate", b.config.SampleRate).Msg("Speaker ready")
	return nil
}

// Close silences and releases the speaker
func (b *Buzzer) Close() {

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.initialized = false
}

// PlayTone replaces any sounding tone and returns at once
func (b *Buzzer) PlayTone(frequency uint, durationMs uint32) {

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	streamer, err := b.tone(frequency, time.Duration(durationMs)*time.Millisecond)
	if err != nil {
		b.logger.Warn().Err(err).Uint("frequency", frequency).Msg("Tone skipped")
		return
	}

	speaker.Lock()
	b.mixer.Clear()
	b.mixer.Add(streamer)
	speaker.Unlock()
}

// StopTone cuts any sounding tone
func (b *Buzzer) StopTone() {

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
}

// tone builds a finite sine streamer at the configured volume
func (b *Buzzer) tone(frequency uint, d time.Duration) (beep.Streamer, error) {

	sine, err := generators.SineTone(b.sampleRate, float64(frequency))
	if err != nil {
		return nil, err
	}
	return beep.Take(b.sampleRate.N(d), &effects.Gain{
		Streamer: sine,
		Gain:     b.config.Volume - 1,
	}), nil
}
