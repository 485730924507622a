package learn

import (
	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
)

// lessonMsg carries a lesson answer tagged with the request that asked for it.
type lessonMsg struct {
	seq    int
	lesson curriculum.Lesson
}

// resultMsg carries a query answer tagged with the request that asked for it.
type resultMsg struct {
	seq    int
	result evaluator.QueryResult
}

// moveCursor shifts the module cursor, clamped to the list.
func moveCursor(state State, delta int) State {
	if len(state.Modules) == 0 {
		state.Cursor = 0
		return state
	}
	state.Cursor = min(max(state.Cursor+delta, 0), len(state.Modules)-1)
	return state
}

// beginLesson marks the module under the cursor active and returns the
// sequence number its answer must carry.
func beginLesson(state State) (State, int) {
	if len(state.Modules) == 0 {
		return state, 0
	}
	state.ActiveID = state.Modules[state.Cursor].ID
	state.LessonLoading = true
	state.lessonSeq++
	return state, state.lessonSeq
}

// applyLesson shows a lesson unless a newer request has been made since.
func applyLesson(state State, msg lessonMsg) State {
	if msg.seq != state.lessonSeq {
		return state
	}
	lesson := msg.lesson
	state.Lesson = &lesson
	state.LessonLoading = false
	return state
}

// beginQuery clears the previous result and returns the sequence number the
// new answer must carry.
func beginQuery(state State) (State, int) {
	state.Result = nil
	state.Running = true
	state.querySeq++
	return state, state.querySeq
}

// applyResult shows a query result unless a newer query has been run since.
func applyResult(state State, msg resultMsg) State {
	if msg.seq != state.querySeq {
		return state
	}
	result := msg.result
	state.Result = &result
	state.Running = false
	return state
}
