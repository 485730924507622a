package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/server"
	"github.com/snake14v/SQL-LEARNX/internal/tutor"
)

// serveTutor is a test seam for running the tutorial server.
var serveTutor = server.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "127.0.0.1:8080", "Address to listen on")
		curriculumPath := fs.String("curriculum", "", "Path to a curriculum YAML/JSON file (default: built-in)")
		practiceDB := fs.String("practice-db", "", "DuckDB file to offer at /data/practice.duckdb")
		delay := fs.Duration("delay", tutor.DefaultDelay, "Pause before lessons and results are returned")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}
		if *practiceDB != "" {
			if _, err := os.Stat(*practiceDB); err != nil {
				fmt.Fprintf(stderr, "Database not found: %v\n", err)
				return ExitError
			}
		}

		logger := level.NewFilter(log.NewLogfmtLogger(log.NewSyncWriter(stderr)), level.AllowInfo())
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		catalog, err := curriculum.Load(*curriculumPath)
		if err != nil {
			fmt.Fprintf(stderr, "Curriculum error:\n%v\n", err)
			return ExitError
		}
		serviceDelay := *delay
		if serviceDelay <= 0 {
			serviceDelay = -1
		}
		reg := prometheus.NewRegistry()
		svc, err := tutor.New(tutor.Config{
			Catalog:    catalog,
			Delay:      serviceDelay,
			Logger:     logger,
			Registerer: reg,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Service error: %v\n", err)
			return ExitError
		}

		cfg := server.Config{
			Addr:           *addr,
			Tutor:          svc,
			Gatherer:       reg,
			PracticeDBPath: *practiceDB,
			Logger:         logger,
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Fprintf(stdout, "Serving tutorial API at http://%s\n", cfg.Addr)
		if err := serveTutor(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
