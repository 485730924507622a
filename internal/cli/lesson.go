package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/go-kit/log"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
)

// runLesson builds the handler for the lesson command.
func runLesson(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		tutorOpts := addTutorFlags(fs, 0)
		id := fs.String("id", "", "Module id")
		title := fs.String("title", "", "Module title")
		asJSON := fs.Bool("json", false, "Print JSON")
		if code := parseFlags(cmd, fs, args, stdout, stderr); code >= 0 {
			return code
		}
		if (*id == "") == (*title == "") {
			fmt.Fprintln(stderr, "Provide exactly one of --id or --title")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		svc, err := tutorOpts.newService(log.NewNopLogger())
		if err != nil {
			fmt.Fprintf(stderr, "Curriculum error:\n%v\n", err)
			return ExitError
		}

		ctx := context.Background()
		var lesson curriculum.Lesson
		if *id != "" {
			found, ok := svc.LessonForModule(ctx, *id)
			if !ok {
				fmt.Fprintf(stderr, "Unknown module id: %s\n", *id)
				return ExitError
			}
			lesson = found
		} else {
			lesson = svc.SelectModule(ctx, *title)
		}
		if *asJSON {
			if err := writeJSON(stdout, lesson); err != nil {
				fmt.Fprintf(stderr, "write output: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		writeLesson(lesson, stdout)
		return ExitOK
	}
}
