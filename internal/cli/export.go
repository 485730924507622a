package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/snake14v/SQL-LEARNX/internal/dataset"
	"github.com/snake14v/SQL-LEARNX/internal/practicedb"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		out := fs.String("out", "", "Path of the DuckDB file to write")
		if code := parseFlags(cmd, fs, args, stdout, stderr); code >= 0 {
			return code
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}
		if strings.TrimSpace(*out) == "" {
			fmt.Fprintln(stderr, "Missing --out")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if err := practicedb.Export(context.Background(), *out, dataset.Fixture()); err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote practice database to %s\n", *out)
		return ExitOK
	}
}
