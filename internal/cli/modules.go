package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
)

// runModules builds the handler for the modules command.
func runModules(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		tutorOpts := addTutorFlags(fs, 0)
		asJSON := fs.Bool("json", false, "Print JSON instead of a table")
		if code := parseFlags(cmd, fs, args, stdout, stderr); code >= 0 {
			return code
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}
		svc, err := tutorOpts.newService(log.NewNopLogger())
		if err != nil {
			fmt.Fprintf(stderr, "Curriculum error:\n%v\n", err)
			return ExitError
		}
		if *asJSON {
			if err := writeJSON(stdout, map[string]any{"modules": svc.Modules()}); err != nil {
				fmt.Fprintf(stderr, "write output: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		writeModules(svc.Modules(), stdout)
		return ExitOK
	}
}
