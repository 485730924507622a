package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		curriculumPath := flags.String("curriculum", "", "Path to a curriculum YAML/JSON file")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if strings.TrimSpace(*curriculumPath) == "" {
			fmt.Fprintln(stderr, "Missing --curriculum")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		catalog, err := curriculum.Load(*curriculumPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintf(stdout, "Curriculum OK (%d modules)\n", len(catalog.Modules()))
		return ExitOK
	}
}
