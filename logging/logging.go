/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */

// Package logging builds the zerolog loggers shared by the host programs.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// LogKey names the structured fields every module uses
var LogKey = struct {
	Module string
	Port   string
	State  string
}{
	Module: "module",
	Port:   "port",
	State:  "state",
}

// Options selects where and how much to log
type Options struct {
	Level string
	// File, when set, receives JSON lines instead of the console
	File string
}

// New returns the root logger and a close function for any opened file.
func New(opts Options) (zerolog.Logger, func() error, error) {

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var out io.Writer
	closer := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f.Close
	} else {
		out = zerolog.ConsoleWriter{
			Out:        colorable.NewColorableStderr(),
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
			TimeFormat: time.TimeOnly,
		}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

// Module returns a child logger tagged with the module name
func Module(logger *zerolog.Logger, name string) *zerolog.Logger {

	return ptr(logger.With().Str(LogKey.Module, name).Logger())
}

func ptr[T any](v T) *T {

	return &v
}
