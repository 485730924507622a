// Package evaluator runs tutorial queries against the fixed dataset by
// pattern matching the query text. It is not a SQL parser: each step of a
// fixed detector chain looks for a marker substring and reshapes the rows.
package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/snake14v/SQL-LEARNX/internal/dataset"
)

// ErrNotSelect is returned by Run for text that does not start with select.
var ErrNotSelect = errors.New("query must start with SELECT")

// ErrDetectorPanic wraps a panic raised while a detector ran.
var ErrDetectorPanic = errors.New("detector panicked")

// Evaluator evaluates queries over one dataset. It holds no mutable state and
// is safe for concurrent use.
type Evaluator struct {
	data  dataset.Dataset
	chain []detector
}

// New builds an evaluator over data.
func New(data dataset.Dataset) *Evaluator {
	return &Evaluator{
		data: dataset.Dataset{
			Students:    append([]dataset.Student(nil), data.Students...),
			Assignments: append([]dataset.Assignment(nil), data.Assignments...),
		},
		chain: chain(),
	}
}

// Default builds an evaluator over the tutorial fixture.
func Default() *Evaluator {
	return New(dataset.Fixture())
}

// Evaluate runs query and folds any failure into the result's error field.
func (e *Evaluator) Evaluate(query string) QueryResult {
	result, _ := e.Run(query)
	return result
}

// Run evaluates query. On failure the result is the generic error result and
// err carries the cause.
func (e *Evaluator) Run(query string) (result QueryResult, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			result = failureResult()
			err = fmt.Errorf("%w: %v", ErrDetectorPanic, recovered)
		}
	}()

	normalized := strings.ToLower(strings.TrimSpace(query))
	if !strings.HasPrefix(normalized, "select") {
		return failureResult(), ErrNotSelect
	}

	ws := newWorkingSet(normalized, e.data)
	for _, step := range e.chain {
		if !step.match(ws.query) {
			continue
		}
		if err := step.apply(ws); err != nil {
			return failureResult(), fmt.Errorf("%s: %w", step.name, err)
		}
		if ws.result != nil {
			return *ws.result, nil
		}
	}
	return project(ws), nil
}
