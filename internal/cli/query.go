package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
)

// runQuery builds the handler for the query command.
func runQuery(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		tutorOpts := addTutorFlags(fs, 0)
		asJSON := fs.Bool("json", false, "Print the result as JSON")
		if code := parseFlags(cmd, fs, args, stdout, stderr); code >= 0 {
			return code
		}
		query := strings.TrimSpace(strings.Join(fs.Args(), " "))
		if query == "" {
			fmt.Fprintln(stderr, "Missing <sql>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		svc, err := tutorOpts.newService(log.NewNopLogger())
		if err != nil {
			fmt.Fprintf(stderr, "Curriculum error:\n%v\n", err)
			return ExitError
		}

		result := svc.RunQuery(context.Background(), query)
		if *asJSON {
			if err := writeJSON(stdout, result); err != nil {
				fmt.Fprintf(stderr, "write output: %v\n", err)
				return ExitError
			}
		} else {
			writeResult(result, stdout, stderr)
		}
		if result.Failed() {
			return ExitError
		}
		return ExitOK
	}
}
