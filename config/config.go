/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */

// Package config loads the host programs' settings from YAML and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config holds everything the simulator and the serial host can be told
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Audio  AudioConfig  `yaml:"audio"`
	Serial SerialConfig `yaml:"serial"`
	Status StatusConfig `yaml:"status"`

	// Seed fixes the colour draws; 0 seeds from the clock
	Seed int64 `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

type StatusConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Default returns the built-in settings
func Default() *Config {

	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
		Serial: SerialConfig{
			BaudRate: 9600,
		},
		Status: StatusConfig{
			Addr: ":8080",
		},
	}
}

// Load reads path over the defaults, applies SIMON_* environment overrides
// and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {

	if level := os.Getenv("SIMON_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if enabled := os.Getenv("SIMON_AUDIO_ENABLED"); enabled != "" {
		val, err := strconv.ParseBool(enabled)
		if err != nil {
			return fmt.Errorf("SIMON_AUDIO_ENABLED: %w", err)
		}
		c.Audio.Enabled = val
	}

	// Volume is given as 0-100
	if volume := os.Getenv("SIMON_VOLUME"); volume != "" {
		val, err := strconv.Atoi(volume)
		if err != nil {
			return fmt.Errorf("SIMON_VOLUME: %w", err)
		}
		c.Audio.Volume = float64(val) / 100.0
	}

	if port := os.Getenv("SIMON_SERIAL_PORT"); port != "" {
		c.Serial.Port = port
	}

	if addr := os.Getenv("SIMON_STATUS_ADDR"); addr != "" {
		c.Status.Addr = addr
		c.Status.Enabled = true
	}

	if seed := os.Getenv("SIMON_SEED"); seed != "" {
		val, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("SIMON_SEED: %w", err)
		}
		c.Seed = val
	}
	return nil
}

// Validate reports every setting that cannot be used
func (c *Config) Validate() error {

	var errs []error

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %v outside 0-1", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate %d must be positive", c.Audio.SampleRate))
	}
	if c.Serial.BaudRate <= 0 {
		errs = append(errs, fmt.Errorf("serial.baud_rate %d must be positive", c.Serial.BaudRate))
	}
	if c.Status.Enabled && c.Status.Addr == "" {
		errs = append(errs, errors.New("status.addr required when status is enabled"))
	}
	return errors.Join(errs...)
}
