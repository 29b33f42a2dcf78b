/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */

// Command simon-term plays Simon in a terminal: the pads are drawn with tcell,
// keys stand in for the buttons and tones go to the system speaker.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"simon/audio"
	"simon/config"
	"simon/game"
	"simon/logging"
	"simon/sim"
)

// Idle polls pause this long so the loop does not spin a core
const hostPollMs = 1

func main() {

	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "simon-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The screen belongs to the panel, so logs only ever go to a file
	logOpts := logging.Options{Level: cfg.Log.Level, File: cfg.Log.File}
	if logOpts.File == "" {
		logOpts.Level = "disabled"
	}
	rootLogger, closeLog, err := logging.New(logOpts)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := logging.Module(&rootLogger, "Main")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	buzzer := audio.NewBuzzer(*logging.Module(&rootLogger, "Audio"), audio.Config{
		Enabled:    cfg.Audio.Enabled,
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.Audio.Volume,
	})
	if err := buzzer.Start(); err != nil {
		// Non-fatal, the game can run without sound
		logger.Warn().Err(err).Msg("Audio unavailable")
	}
	defer buzzer.Close()

	panel := sim.NewPanel(screen, *logging.Module(&rootLogger, "Panel"))
	controller := game.New(
		game.Compose(panel, buzzer, game.NewSystemClock()),
		game.WithPollInterval(hostPollMs),
		game.WithRandom(rand.New(rand.NewSource(seed(cfg.Seed)))),
		game.WithLogger(*logging.Module(&rootLogger, "Game")),
		game.WithObserver(panel.Observe),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go panel.Run(ctx)
	go func() {
		<-panel.Quit()
		cancel()
	}()

	logger.Info().Msg("Starting simulator")
	err = controller.Run(ctx)
	logger.Info().Err(err).Int("games", controller.Games()).Int("best", controller.Best()).Msg("Done")
	return nil
}

func seed(configured int64) int64 {

	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}
