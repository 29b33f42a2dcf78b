package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {

	for _, key := range []string{
		"SIMON_LOG_LEVEL", "SIMON_AUDIO_ENABLED", "SIMON_VOLUME",
		"SIMON_SERIAL_PORT", "SIMON_STATUS_ADDR", "SIMON_SEED",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {

	path := filepath.Join(t.TempDir(), "simon.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadDefaults verifies an empty path yields the defaults
func TestLoadDefaults(t *testing.T) {

	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "info" || !cfg.Audio.Enabled || cfg.Audio.Volume != 0.5 {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if cfg.Serial.BaudRate != 9600 || cfg.Status.Enabled {
		t.Errorf("Unexpected serial/status defaults %+v %+v", cfg.Serial, cfg.Status)
	}
}

// TestLoadFile verifies YAML values override defaults and unset keys keep them
func TestLoadFile(t *testing.T) {

	clearEnv(t)
	path := writeConfig(t, `
log:
  level: debug
  file: /tmp/simon.log
audio:
  volume: 0.8
serial:
  port: /dev/ttyACM0
seed: 99
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/simon.log" {
		t.Errorf("Unexpected log config %+v", cfg.Log)
	}
	if cfg.Audio.Volume != 0.8 || cfg.Audio.SampleRate != 44100 {
		t.Errorf("Unexpected audio config %+v", cfg.Audio)
	}
	if cfg.Serial.Port != "/dev/ttyACM0" || cfg.Serial.BaudRate != 9600 {
		t.Errorf("Unexpected serial config %+v", cfg.Serial)
	}
	if cfg.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Seed)
	}
}

// TestLoadEnvOverrides verifies SIMON_* variables win over the file
func TestLoadEnvOverrides(t *testing.T) {

	clearEnv(t)
	path := writeConfig(t, "audio:\n  enabled: true\n")
	t.Setenv("SIMON_AUDIO_ENABLED", "false")
	t.Setenv("SIMON_VOLUME", "25")
	t.Setenv("SIMON_SERIAL_PORT", "/dev/ttyUSB1")
	t.Setenv("SIMON_STATUS_ADDR", "127.0.0.1:9000")
	t.Setenv("SIMON_SEED", "12")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 0.25 {
		t.Errorf("Unexpected audio config %+v", cfg.Audio)
	}
	if cfg.Serial.Port != "/dev/ttyUSB1" {
		t.Errorf("Unexpected port %q", cfg.Serial.Port)
	}
	if !cfg.Status.Enabled || cfg.Status.Addr != "127.0.0.1:9000" {
		t.Errorf("Unexpected status config %+v", cfg.Status)
	}
	if cfg.Seed != 12 {
		t.Errorf("Expected seed 12, got %d", cfg.Seed)
	}
}

// TestLoadErrors verifies bad input is reported
func TestLoadErrors(t *testing.T) {

	tests := []struct {
		name string
		body string
		env  map[string]string
		want string
	}{
		{"unknown key", "colour: red\n", nil, "parse config"},
		{"bad volume", "audio:\n  volume: 2\n", nil, "audio.volume"},
		{"bad baud", "serial:\n  baud_rate: 0\n", nil, "serial.baud_rate"},
		{"bad env bool", "", map[string]string{"SIMON_AUDIO_ENABLED": "loud"}, "SIMON_AUDIO_ENABLED"},
		{"bad env seed", "", map[string]string{"SIMON_SEED": "x"}, "SIMON_SEED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

// TestLoadMissingFile verifies a missing file is an error
func TestLoadMissingFile(t *testing.T) {

	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
