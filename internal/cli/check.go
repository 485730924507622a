package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/snake14v/SQL-LEARNX/internal/dataset"
	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
	"github.com/snake14v/SQL-LEARNX/internal/practicedb"
)

type checkReport struct {
	Mock       evaluator.QueryResult  `json:"mock"`
	Reference  *evaluator.QueryResult `json:"reference,omitempty"`
	Error      string                 `json:"referenceError,omitempty"`
	Comparison practicedb.Comparison  `json:"comparison"`
}

// runCheck builds the handler for the check command.
func runCheck(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		asJSON := fs.Bool("json", false, "Print the comparison as JSON")
		if code := parseFlags(cmd, fs, args, stdout, stderr); code >= 0 {
			return code
		}
		query := strings.TrimSpace(strings.Join(fs.Args(), " "))
		if query == "" {
			fmt.Fprintln(stderr, "Missing <sql>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		ctx := context.Background()
		data := dataset.Fixture()
		db, err := practicedb.Open(ctx, data)
		if err != nil {
			fmt.Fprintf(stderr, "Practice database error: %v\n", err)
			return ExitError
		}
		defer db.Close()

		report := checkReport{Mock: evaluator.New(data).Evaluate(query)}
		reference, err := practicedb.Reference(ctx, db, query)
		if err != nil {
			report.Error = err.Error()
			report.Comparison = practicedb.Comparison{Mismatches: []string{"reference query failed"}}
		} else {
			report.Reference = &reference
			report.Comparison = practicedb.Compare(report.Mock, reference)
		}

		if *asJSON {
			if err := writeJSON(stdout, report); err != nil {
				fmt.Fprintf(stderr, "write output: %v\n", err)
				return ExitError
			}
		} else {
			writeCheckReport(report, stdout, stderr)
		}
		if !report.Comparison.Match {
			return ExitError
		}
		return ExitOK
	}
}

func writeCheckReport(report checkReport, stdout, stderr io.Writer) {
	fmt.Fprintln(stdout, headerStyle.Render("Mock evaluator"))
	writeResult(report.Mock, stdout, stderr)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, headerStyle.Render("DuckDB"))
	if report.Reference != nil {
		writeResult(*report.Reference, stdout, stderr)
	} else {
		fmt.Fprintf(stderr, "DuckDB error: %s\n", report.Error)
	}
	fmt.Fprintln(stdout)
	if report.Comparison.Match {
		fmt.Fprintln(stdout, "Results match")
		return
	}
	fmt.Fprintln(stdout, "Results differ:")
	for _, mismatch := range report.Comparison.Mismatches {
		fmt.Fprintf(stdout, "  - %s\n", mismatch)
	}
}
