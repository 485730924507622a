package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestRootHelp verifies --help lists every sqltutor command with its summary.
func TestRootHelp(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"--help"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	output := out.String()
	if !strings.Contains(output, "sqltutor <command> [options]") {
		t.Fatalf("expected sqltutor usage header, got %q", output)
	}
	for _, cmd := range commands {
		if !strings.Contains(output, cmd.Name) || !strings.Contains(output, cmd.Summary) {
			t.Fatalf("expected command %q with summary %q in output", cmd.Name, cmd.Summary)
		}
	}
}

// TestCommandTableCoversTutorSurface verifies the command set a learner relies on.
func TestCommandTableCoversTutorSurface(t *testing.T) {
	want := []string{"modules", "lesson", "query", "learn", "serve", "export", "check", "validate"}
	if len(commands) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(commands))
	}
	for i, name := range want {
		if commands[i].Name != name {
			t.Fatalf("command %d: expected %q, got %q", i, name, commands[i].Name)
		}
		if findCommand(name) != commands[i] {
			t.Fatalf("findCommand(%q) did not return the table entry", name)
		}
	}
}

// TestNoArgsShowsUsage verifies a bare invocation prints usage with exit 2.
func TestNoArgsShowsUsage(t *testing.T) {
	var out, err bytes.Buffer
	code := Run(nil, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), `Use "sqltutor <command> --help"`) {
		t.Fatalf("expected usage output, got %q", out.String())
	}
}

// TestUnknownCommand verifies unknown commands go to stderr with usage.
func TestUnknownCommand(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"select"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "Unknown command: select") {
		t.Fatalf("expected unknown command error, got %q", err.String())
	}
	if !strings.Contains(err.String(), "Usage:") {
		t.Fatalf("expected usage in stderr, got %q", err.String())
	}
}

// TestCommandHelp verifies every command prints its own usage lines.
func TestCommandHelp(t *testing.T) {
	for _, cmd := range commands {
		var out, err bytes.Buffer
		code := Run([]string{cmd.Name, "--help"}, &out, &err)
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitOK, code)
		}
		if err.Len() != 0 {
			t.Fatalf("%s: expected no stderr output, got %q", cmd.Name, err.String())
		}
		for _, line := range cmd.Usage {
			if !strings.HasPrefix(line, "sqltutor "+cmd.Name) {
				t.Fatalf("%s: usage line %q does not start with the command", cmd.Name, line)
			}
			if !strings.Contains(out.String(), line) {
				t.Fatalf("%s: expected usage line %q", cmd.Name, line)
			}
		}
	}
}

// TestSQLCommandsRequireQuery verifies query and check document and demand <sql>.
func TestSQLCommandsRequireQuery(t *testing.T) {
	for _, name := range []string{"query", "check"} {
		cmd := findCommand(name)
		if cmd == nil || !strings.Contains(strings.Join(cmd.Usage, "\n"), "<sql>") {
			t.Fatalf("%s: expected usage to mention <sql>", name)
		}

		var out, err bytes.Buffer
		code := Run([]string{name, "   "}, &out, &err)
		if code != ExitUsage {
			t.Fatalf("%s: expected exit %d, got %d", name, ExitUsage, code)
		}
		if !strings.Contains(err.String(), "Missing <sql>") {
			t.Fatalf("%s: expected missing sql error, got %q", name, err.String())
		}
		if out.Len() != 0 {
			t.Fatalf("%s: expected no stdout output, got %q", name, out.String())
		}
	}
}
