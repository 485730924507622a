package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-kit/log"

	"github.com/snake14v/SQL-LEARNX/internal/tutor"
	"github.com/snake14v/SQL-LEARNX/internal/ui/learn"
)

// stdin is the input for interactive sessions. Tests replace it.
var stdin io.Reader = os.Stdin

// startLearnUI is a test seam for running the Bubble Tea session.
var startLearnUI = learn.Run

// runLearn builds the handler for the learn command.
func runLearn(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		tutorOpts := addTutorFlags(fs, tutor.DefaultDelay)
		uiMode := fs.String("ui", "auto", "UI mode: auto|live|plain")
		noColor := fs.Bool("no-color", false, "Disable colors")
		if code := parseFlags(cmd, fs, args, stdout, stderr); code >= 0 {
			return code
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}
		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		svc, err := tutorOpts.newService(log.NewNopLogger())
		if err != nil {
			fmt.Fprintf(stderr, "Curriculum error:\n%v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if decision.useLive {
			if err := startLearnUI(ctx, svc, stdin, stdout, learn.Options{NoColor: *noColor}); err != nil {
				fmt.Fprintf(stderr, "UI error: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		if err := runPrompt(ctx, svc, stdin, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "read input: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// runPrompt is the line-based session: SQL lines run as queries, lines
// starting with a colon are session commands.
func runPrompt(ctx context.Context, svc *tutor.Service, in io.Reader, stdout, stderr io.Writer) error {
	fmt.Fprintln(stdout, "Type SQL to run it, :modules to list modules, :lesson <id> to read one, :quit to leave.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(stdout, "sql> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return nil
		case line == ":modules":
			writeModules(svc.Modules(), stdout)
		case strings.HasPrefix(line, ":lesson"):
			id := strings.TrimSpace(strings.TrimPrefix(line, ":lesson"))
			lesson, ok := svc.LessonForModule(ctx, id)
			if !ok {
				fmt.Fprintf(stderr, "Unknown module id: %s\n", id)
				continue
			}
			writeLesson(lesson, stdout)
		case strings.HasPrefix(line, ":"):
			fmt.Fprintf(stderr, "Unknown command: %s\n", line)
		default:
			writeResult(svc.RunQuery(ctx, line), stdout, stderr)
		}
	}
}
