package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/server"
	"github.com/snake14v/SQL-LEARNX/internal/tutor"
)

// main launches sqltutord.
func main() {
	os.Exit(run())
}

// run executes sqltutord and returns an exit code.
func run() int {
	configPath := flag.String("config", "", "path to sqltutord config (default: built-in defaults)")
	envFile := flag.String("env-file", ".env", "optional dotenv file with SQLTUTOR_* overrides")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "env error: %v\n", err)
		return 1
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}
	allow, _ := levelOption(cfg.Log.Level)
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, allow)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	catalog, err := curriculum.Load(cfg.Tutor.CurriculumPath)
	if err != nil {
		level.Error(logger).Log("msg", "curriculum load failed", "path", cfg.Tutor.CurriculumPath, "err", err)
		return 1
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	svc, err := tutor.New(tutor.Config{
		Catalog:    catalog,
		Delay:      cfg.delay(),
		Logger:     logger,
		Registerer: reg,
	})
	if err != nil {
		level.Error(logger).Log("msg", "service setup failed", "err", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = server.Serve(ctx, server.Config{
		Addr:           cfg.Server.ListenAddr,
		Tutor:          svc,
		Gatherer:       reg,
		PracticeDBPath: cfg.Practice.DBPath,
		Logger:         logger,
	})
	if err != nil {
		level.Error(logger).Log("msg", "server error", "err", err)
		return 1
	}
	level.Info(logger).Log("msg", "shutdown complete")
	return 0
}
