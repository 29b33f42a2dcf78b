/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */

// Package statusapi serves the live game status over HTTP.
package statusapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"simon/game"
	"simon/logging"
)

// Snapshot is the JSON body of GET /status
type Snapshot struct {
	State  string    `json:"state"`
	Length int       `json:"length"`
	Cursor int       `json:"cursor"`
	Games  int       `json:"games"`
	Best   int       `json:"best"`
	Since  time.Time `json:"since"`
}

// Tracker keeps the latest snapshot from controller events
type Tracker struct {
	mu       sync.RWMutex
	snapshot Snapshot
	now      func() time.Time
}

func NewTracker() *Tracker {

	return &Tracker{
		snapshot: Snapshot{State: game.Welcome.String(), Since: time.Now()},
		now:      time.Now,
	}
}

// Observe is a game.Observer
func (t *Tracker) Observe(e game.Event) {

	t.mu.Lock()
	defer t.mu.Unlock()

	if e.Kind == game.EventTransition {
		t.snapshot.State = e.To.String()
		t.snapshot.Since = t.now()
	}
	t.snapshot.Length = e.Length
	t.snapshot.Cursor = e.Cursor
	if e.Kind == game.EventPress && e.Correct {
		t.snapshot.Cursor = e.Cursor + 1
	}
	t.snapshot.Games = e.Games
	t.snapshot.Best = e.Best
}

func (t *Tracker) Snapshot() Snapshot {

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshot
}

// StatusAPI is the HTTP server
type StatusAPI struct {
	logger     *zerolog.Logger
	tracker    *Tracker
	httpServer *http.Server
	waitGroup  *sync.WaitGroup
}

func NewStatusAPI(logger *zerolog.Logger, addr string, tracker *Tracker, waitGroup *sync.WaitGroup) *StatusAPI {

	api := &StatusAPI{
		logger:    logging.Module(logger, "StatusAPI"),
		tracker:   tracker,
		waitGroup: waitGroup,
	}
	api.httpServer = &http.Server{
		Addr:         addr,
		Handler:      api.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return api
}

// Handler routes / and /status
func (api *StatusAPI) Handler() http.Handler {

	mux := http.NewServeMux()
	mux.Handle("/status", &statusHandler{logger: api.logger, tracker: api.tracker})
	mux.Handle("/", &homeHandler{logger: api.logger})
	return mux
}

// Start listens in the background until ctx is done
func (api *StatusAPI) Start(ctx context.Context) {

	api.waitGroup.Add(2)
	go api.listen()
	go api.waitForCancel(ctx)
}

func (api *StatusAPI) listen() {

	defer api.waitGroup.Done()

	api.logger.Info().Str("addr", api.httpServer.Addr).Msg("Listening")
	err := api.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		api.logger.Error().Err(err).Msg("Server failed")
		return
	}
	api.logger.Info().Msg("Done")
}

func (api *StatusAPI) waitForCancel(ctx context.Context) {

	defer api.waitGroup.Done()

	<-ctx.Done()
	api.logger.Info().Msg("Stopping")
	api.stop()
}

func (api *StatusAPI) stop() {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := api.httpServer.Shutdown(ctx); err != nil {
		api.logger.Error().Err(err).Msg("HTTP server shutdown error")
	}
}

type statusHandler struct {
	logger  *zerolog.Logger
	tracker *Tracker
}

func (sh *statusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sh.tracker.Snapshot()); err != nil {
		sh.logger.Error().Err(err).Msg("Write failed")
	}
}

type homeHandler struct {
	logger *zerolog.Logger
}

func (hh *homeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if _, err := w.Write([]byte("Simon status: GET /status")); err != nil {
		hh.logger.Error().Err(err).Msg("Write failed")
	}
}
