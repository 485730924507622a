// Package server hosts the tutorial API together with health, metrics and
// practice database endpoints.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/snake14v/SQL-LEARNX/internal/api"
)

// ShutdownTimeout bounds graceful shutdown after the context is done.
const ShutdownTimeout = 5 * time.Second

// Config captures the settings for serving the tutorial.
type Config struct {
	Addr           string
	Tutor          api.Tutor
	Gatherer       prometheus.Gatherer
	PracticeDBPath string
	Logger         log.Logger
}

// Serve starts an HTTP server and blocks until ctx is done or the listener fails.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("server: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("server: addr is required")
	}
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return ServeListener(ctx, listener, cfg)
}

// ServeListener is Serve over an existing listener. The listener is closed
// when the server stops.
func ServeListener(ctx context.Context, listener net.Listener, cfg Config) error {
	if ctx == nil {
		return errors.New("server: context is nil")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		_ = listener.Close()
		return err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	level.Info(logger).Log("msg", "serving", "addr", listener.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			level.Warn(logger).Log("msg", "shutdown incomplete", "err", err)
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
