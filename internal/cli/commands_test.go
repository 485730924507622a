package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
	"github.com/snake14v/SQL-LEARNX/internal/practicedb"
	"github.com/snake14v/SQL-LEARNX/internal/tutor"
	"github.com/snake14v/SQL-LEARNX/internal/ui/learn"
)

// TestModulesCommandListsCurriculum verifies the table output.
func TestModulesCommandListsCurriculum(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"modules"}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, err.String())
	}
	for _, want := range []string{"ID", "basic-querying", "8. Leaderboards (Window Funcs)", "RANK()"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

// TestModulesCommandCustomCurriculum verifies --curriculum is honored.
func TestModulesCommandCustomCurriculum(t *testing.T) {
	path := writeCurriculum(t, validCurriculum)
	var out, err bytes.Buffer
	if code := Run([]string{"modules", "--json", "--curriculum", path}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, err.String())
	}
	var payload struct {
		Modules []struct {
			ID string `json:"id"`
		} `json:"modules"`
	}
	if decodeErr := json.Unmarshal(out.Bytes(), &payload); decodeErr != nil {
		t.Fatalf("decode output: %v", decodeErr)
	}
	if len(payload.Modules) != 2 || payload.Modules[1].ID != "joins" {
		t.Fatalf("unexpected modules %+v", payload.Modules)
	}
}

// TestLessonCommand verifies lookup by id and by title.
func TestLessonCommand(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"lesson", "--id", "aggregates", "--json"}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, err.String())
	}
	var lesson struct {
		Title        string `json:"title"`
		ExampleQuery string `json:"exampleQuery"`
	}
	if decodeErr := json.Unmarshal(out.Bytes(), &lesson); decodeErr != nil {
		t.Fatalf("decode lesson: %v", decodeErr)
	}
	if lesson.ExampleQuery == "" {
		t.Fatalf("expected example query, got %+v", lesson)
	}

	out.Reset()
	if code := Run([]string{"lesson", "--title", "3. Connecting Worlds (JOINS)"}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit ok, got %d", code)
	}
	if !strings.Contains(out.String(), "1. The Blueprint of Queries") {
		t.Fatalf("expected fallback lesson for upper-case JOINS title:\n%s", out.String())
	}
}

// TestLessonCommandUsage verifies flag combinations and unknown ids.
func TestLessonCommandUsage(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"lesson"}, &out, &err); code != ExitUsage {
		t.Fatalf("expected usage exit without flags, got %d", code)
	}
	if code := Run([]string{"lesson", "--id", "a", "--title", "b"}, &out, &err); code != ExitUsage {
		t.Fatalf("expected usage exit with both flags, got %d", code)
	}
	if code := Run([]string{"lesson", "--id", "missing"}, &out, &err); code != ExitError {
		t.Fatalf("expected error exit for unknown id, got %d", code)
	}
}

// TestQueryCommand verifies table output, JSON output and failures.
func TestQueryCommand(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"query", "SELECT name FROM students WHERE score > 90"}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, err.String())
	}
	if !strings.Contains(out.String(), "Vaishak") || !strings.Contains(out.String(), "2 row(s)") {
		t.Fatalf("unexpected table output:\n%s", out.String())
	}

	out.Reset()
	if code := Run([]string{"query", "--json", "SELECT", "COUNT(*)", "FROM", "students"}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit ok, got %d", code)
	}
	var result evaluator.QueryResult
	if decodeErr := json.Unmarshal(out.Bytes(), &result); decodeErr != nil {
		t.Fatalf("decode result: %v", decodeErr)
	}
	if len(result.Rows) != 1 || result.Rows[0][1] != "82.4" {
		t.Fatalf("unexpected aggregate %+v", result)
	}

	out.Reset()
	err.Reset()
	if code := Run([]string{"query", "UPDATE students SET score = 100"}, &out, &err); code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(err.String(), evaluator.GenericErrorMessage) {
		t.Fatalf("expected generic error, got %q", err.String())
	}
	if code := Run([]string{"query"}, &out, &err); code != ExitUsage {
		t.Fatalf("expected usage exit without sql, got %d", code)
	}
}

// TestExportCommandWritesDatabase verifies the exported file is readable.
func TestExportCommandWritesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "practice.duckdb")
	var out, err bytes.Buffer
	if code := Run([]string{"export", "--out", path}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, err.String())
	}
	db, openErr := sql.Open("duckdb", path)
	if openErr != nil {
		t.Fatalf("open export: %v", openErr)
	}
	defer db.Close()
	result, refErr := practicedb.Reference(context.Background(), db, "SELECT COUNT(*) AS n FROM assignments")
	if refErr != nil {
		t.Fatalf("query export: %v", refErr)
	}
	if result.Rows[0][0] != 6 {
		t.Fatalf("expected 6 assignments, got %v", result.Rows[0][0])
	}
	if code := Run([]string{"export"}, &out, &err); code != ExitUsage {
		t.Fatalf("expected usage exit without --out, got %d", code)
	}
}

// TestCheckCommand verifies matching and mismatching comparisons.
func TestCheckCommand(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"check", "SELECT name, score FROM students WHERE score > 90"}, &out, &err); code != ExitOK {
		t.Fatalf("expected match, got %d:\n%s%s", code, out.String(), err.String())
	}
	if !strings.Contains(out.String(), "Results match") {
		t.Fatalf("expected match message:\n%s", out.String())
	}

	out.Reset()
	if code := Run([]string{"check", "--json", "SELECT name FROM students WHERE grade = 8"}, &out, &err); code != ExitError {
		t.Fatalf("expected mismatch exit, got %d", code)
	}
	var report struct {
		Comparison practicedb.Comparison `json:"comparison"`
	}
	if decodeErr := json.Unmarshal(out.Bytes(), &report); decodeErr != nil {
		t.Fatalf("decode report: %v", decodeErr)
	}
	if report.Comparison.Match || len(report.Comparison.Mismatches) == 0 {
		t.Fatalf("expected mismatches, got %+v", report.Comparison)
	}
}

// TestLearnPlainPrompt verifies the line-based session.
func TestLearnPlainPrompt(t *testing.T) {
	origStdin := stdin
	stdin = strings.NewReader(":modules\n:lesson joins\nSELECT name FROM students WHERE score > 90\n:bogus\n:quit\nSELECT never\n")
	t.Cleanup(func() { stdin = origStdin })

	var out, err bytes.Buffer
	if code := Run([]string{"learn", "--ui", "plain", "--delay", "0s"}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, err.String())
	}
	output := out.String()
	for _, want := range []string{"basic-querying", "Casey", "sql> "} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
	if !strings.Contains(err.String(), "Unknown command: :bogus") {
		t.Fatalf("expected unknown command warning, got %q", err.String())
	}
}

// TestLearnLiveUsesUI verifies the interactive UI is chosen on a terminal.
func TestLearnLiveUsesUI(t *testing.T) {
	origTerminal := isTerminal
	origUI := startLearnUI
	t.Cleanup(func() {
		isTerminal = origTerminal
		startLearnUI = origUI
	})
	isTerminal = func(io.Writer) bool { return true }
	called := false
	startLearnUI = func(_ context.Context, tut learn.Tutor, _ io.Reader, _ io.Writer, opts learn.Options) error {
		called = true
		if _, ok := tut.(*tutor.Service); !ok {
			t.Fatalf("expected tutor service, got %T", tut)
		}
		if !opts.NoColor {
			t.Fatalf("expected no-color option to pass through")
		}
		return nil
	}

	var out, err bytes.Buffer
	if code := Run([]string{"learn", "--no-color"}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, err.String())
	}
	if !called {
		t.Fatalf("expected interactive UI to start")
	}
}

// TestLearnRejectsBadMode verifies invalid --ui values.
func TestLearnRejectsBadMode(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"learn", "--ui", "fancy"}, &out, &err); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}
