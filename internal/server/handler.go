package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/snake14v/SQL-LEARNX/internal/api"
)

// PracticeDBRoute is where the practice database file is served.
const PracticeDBRoute = "/data/practice.duckdb"

// NewHandler builds the HTTP handler for the tutorial daemon.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Tutor == nil {
		return nil, errors.New("server: tutor is required")
	}
	if cfg.PracticeDBPath != "" {
		info, err := os.Stat(cfg.PracticeDBPath)
		if err != nil {
			return nil, fmt.Errorf("server: practice db: %w", err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("server: practice db %s is a directory", cfg.PracticeDBPath)
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/v1/", api.NewHandler(api.Config{Tutor: cfg.Tutor, Logger: cfg.Logger}))
	mux.HandleFunc("/healthz", serveHealth)
	if cfg.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	if cfg.PracticeDBPath != "" {
		mux.Handle(PracticeDBRoute, serveDatabase(cfg.PracticeDBPath))
	}
	return mux, nil
}

func serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// serveDatabase serves the practice DuckDB file so learners can open it locally.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="practice.duckdb"`)
		http.ServeFile(w, r, dbPath)
	})
}
