package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/go-kit/log"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/tutor"
)

// tutorFlags are the service options shared by several commands.
type tutorFlags struct {
	curriculumPath *string
	delay          *time.Duration
}

// addTutorFlags registers --curriculum, and --delay when defaultDelay is set.
func addTutorFlags(fs *flag.FlagSet, defaultDelay time.Duration) tutorFlags {
	flags := tutorFlags{
		curriculumPath: fs.String("curriculum", "", "Path to a curriculum YAML/JSON file (default: built-in)"),
	}
	if defaultDelay > 0 {
		flags.delay = fs.Duration("delay", defaultDelay, "Pause before lessons and results are shown")
	}
	return flags
}

// newService builds the tutor service from parsed flags.
func (f tutorFlags) newService(logger log.Logger) (*tutor.Service, error) {
	catalog, err := curriculum.Load(*f.curriculumPath)
	if err != nil {
		return nil, err
	}
	delay := time.Duration(-1)
	if f.delay != nil && *f.delay > 0 {
		delay = *f.delay
	}
	return tutor.New(tutor.Config{
		Catalog: catalog,
		Delay:   delay,
		Logger:  logger,
	})
}

// parseFlags parses args and maps errors onto exit codes. It returns -1 when
// the command should continue.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) int {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage
	}
	return -1
}
