/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */

// Command simon-host plays Simon on a serial button box, with tones from the
// host's speaker and an optional HTTP status endpoint.
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"simon/audio"
	"simon/buttonbox"
	"simon/config"
	"simon/game"
	"simon/logging"
	"simon/statusapi"
)

// Idle polls pause this long so the loop does not spin a core
const hostPollMs = 1

func main() {

	configPath := flag.String("config", "", "YAML config file")
	portName := flag.String("port", "", "serial port of the button box (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad configuration")
	}
	if *portName != "" {
		cfg.Serial.Port = *portName
	}

	rootLogger, closeLog, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		log.Fatal().Err(err).Msg("Logging setup failed")
	}
	defer closeLog()

	if cfg.Serial.Port == "" {
		rootLogger.Fatal().Msg("No port name provided")
	}
	rootLogger = rootLogger.With().Str(logging.LogKey.Port, cfg.Serial.Port).Logger()
	logger := logging.Module(&rootLogger, "Main")
	logger.Info().Msg("Starting host")

	ctx, cancel := context.WithCancel(context.Background())
	waitGroup := &sync.WaitGroup{}

	box, err := buttonbox.Open(&rootLogger, cfg.Serial.Port, cfg.Serial.BaudRate)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed opening port")
	}
	box.Start(ctx)

	buzzer := audio.NewBuzzer(*logging.Module(&rootLogger, "Audio"), audio.Config{
		Enabled:    cfg.Audio.Enabled,
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.Audio.Volume,
	})
	if err := buzzer.Start(); err != nil {
		logger.Warn().Err(err).Msg("Audio unavailable")
	}

	tracker := statusapi.NewTracker()
	if cfg.Status.Enabled {
		statusapi.NewStatusAPI(&rootLogger, cfg.Status.Addr, tracker, waitGroup).Start(ctx)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	controller := game.New(
		game.Compose(box, buzzer, game.NewSystemClock()),
		game.WithPollInterval(hostPollMs),
		game.WithRandom(rand.New(rand.NewSource(seed))),
		game.WithLogger(*logging.Module(&rootLogger, "Game")),
		game.WithObserver(tracker.Observe),
	)

	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		controller.Run(ctx)
	}()

	waitForSignal()
	cancel()
	waitGroup.Wait()

	buzzer.Close()
	if err := box.Close(); err != nil {
		logger.Error().Err(err).Msg("Error closing port")
	}
	logger.Info().Int("games", controller.Games()).Int("best", controller.Best()).Msg("Done")
}

func waitForSignal() {

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
}
