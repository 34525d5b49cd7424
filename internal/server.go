// v3
// file: internal/server.go
package internal

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type server struct {
	log    *slog.Logger
	run    *runner
	health *Health
	start  time.Time
}

// routes sets up the query API with access logging.
func (s *server) routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/snapshot", s.handleSnapshot).Methods("GET")
	r.HandleFunc("/countries", s.handleCountries).Methods("GET")
	r.HandleFunc("/cities", s.handleCities).Methods("GET")
	r.HandleFunc("/files", s.handleFiles).Methods("GET")
	return handlers.LoggingHandler(os.Stdout, r)
}

// StartCmd parses flags and starts the refresh loop and the HTTP server.
func StartCmd() error {
	propsPath := flag.String("props", "./geopulse.properties", "Path to properties file")
	flag.Parse()

	cfg := LoadProps(propsEnvOr(*propsPath))
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	return Start(ctx, logger, cfg)
}

func propsEnvOr(fallback string) string {
	if p := os.Getenv("GEOPULSE_PROPERTIES"); p != "" {
		return p
	}
	return fallback
}

// Start wires the runner, publisher and HTTP server and blocks until the
// server exits.
func Start(ctx context.Context, log *slog.Logger, cfg Config) error {
	health := NewHealth(cfg.RefreshInterval)
	pub := newPublisher(log, cfg.Brokers, cfg.SnapshotTopic)
	run := newRunner(log, cfg, health, pub)
	go run.run(ctx)

	s := &server{log: log, run: run, health: health, start: time.Now()}
	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Info("starting geopulse",
		"addr", cfg.ListenAddr,
		"input_dir", cfg.InputDir,
		"refresh_s", int(cfg.RefreshInterval.Seconds()),
		"publishing", pub != nil,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "err", err)
		return err
	}
	return nil
}
