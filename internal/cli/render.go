package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
	"github.com/snake14v/SQL-LEARNX/internal/ui/learn"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// renderTable draws headers and rows as a bordered table.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.String()
}

// writeResult prints a query result as a table, or its error to stderr.
func writeResult(result evaluator.QueryResult, stdout, stderr io.Writer) {
	if result.Failed() {
		fmt.Fprintf(stderr, "Syntax Error: %s\n", result.Error)
		return
	}
	if len(result.Columns) == 0 {
		fmt.Fprintln(stdout, "(no columns)")
		return
	}
	rows := make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		cells := make([]string, len(result.Columns))
		for i := range cells {
			var value any
			if i < len(row) {
				value = row[i]
			}
			cells[i] = learn.FormatCell(value)
		}
		rows = append(rows, cells)
	}
	fmt.Fprintln(stdout, renderTable(result.Columns, rows))
	fmt.Fprintf(stdout, "%d row(s)\n", len(result.Rows))
}

// writeModules prints the curriculum as a table.
func writeModules(modules []curriculum.Module, stdout io.Writer) {
	rows := make([][]string, 0, len(modules))
	for _, module := range modules {
		rows = append(rows, []string{module.ID, module.Title, strings.Join(module.Topics, ", ")})
	}
	fmt.Fprintln(stdout, renderTable([]string{"ID", "Title", "Topics"}, rows))
}

// writeLesson prints a lesson as plain text.
func writeLesson(lesson curriculum.Lesson, stdout io.Writer) {
	fmt.Fprintln(stdout, headerStyle.Render(lesson.Title))
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Analogy: %s\n\n", lesson.Analogy)
	fmt.Fprintln(stdout, strings.TrimSpace(lesson.Explanation))
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Example: %s\n", lesson.ExampleQuery)
	fmt.Fprintln(stdout, lesson.ExampleExplanation)
	if lesson.ChallengePrompt != "" {
		fmt.Fprintf(stdout, "\nChallenge: %s\n", lesson.ChallengePrompt)
	}
}

// writeJSON prints payload as indented JSON.
func writeJSON(stdout io.Writer, payload any) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
