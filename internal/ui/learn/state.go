package learn

import (
	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
)

// Focus names the pane that receives key presses.
type Focus int

const (
	FocusModules Focus = iota
	FocusQuery
)

// State captures the learn session shown on screen.
type State struct {
	Modules       []curriculum.Module
	Cursor        int
	ActiveID      string
	Lesson        *curriculum.Lesson
	LessonLoading bool
	Result        *evaluator.QueryResult
	Running       bool
	Focus         Focus

	lessonSeq int
	querySeq  int
}

// activeModule returns the module the lesson pane is showing.
func (s State) activeModule() (curriculum.Module, bool) {
	for _, module := range s.Modules {
		if module.ID == s.ActiveID {
			return module, true
		}
	}
	return curriculum.Module{}, false
}
