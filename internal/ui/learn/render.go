package learn

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 40

// renderSidebar renders the module list with the cursor and active marker.
func renderSidebar(state State, noColor bool) string {
	lines := []string{stylize("SQL Tutor", noColor, lipgloss.Color("42")), ""}
	for i, module := range state.Modules {
		prefix := "  "
		if i == state.Cursor {
			prefix = "> "
		}
		line := prefix + module.Title
		switch {
		case module.ID == state.ActiveID:
			line = stylize(line, noColor, lipgloss.Color("51"))
		case i == state.Cursor:
			line = stylize(line, noColor, lipgloss.Color("252"))
		default:
			line = stylize(line, noColor, lipgloss.Color("244"))
		}
		lines = append(lines, line)
	}
	style := lipgloss.NewStyle().Width(sidebarWidth).PaddingRight(2)
	return style.Render(strings.Join(lines, "\n"))
}

// renderLesson renders the lesson pane.
func renderLesson(state State, noColor bool) string {
	if state.LessonLoading {
		return stylize("Loading lesson...", noColor, lipgloss.Color("244"))
	}
	if state.Lesson == nil {
		return stylize("Pick a module to start.", noColor, lipgloss.Color("244"))
	}
	lesson := state.Lesson
	parts := []string{
		stylize(lesson.Title, noColor, lipgloss.Color("42")),
		"",
		stylize("Analogy: ", noColor, lipgloss.Color("214")) + lesson.Analogy,
		"",
		strings.TrimSpace(lesson.Explanation),
		"",
		stylize("Example: ", noColor, lipgloss.Color("214")) + lesson.ExampleQuery,
		lesson.ExampleExplanation,
	}
	if lesson.ChallengePrompt != "" {
		parts = append(parts, "", stylize("Challenge: ", noColor, lipgloss.Color("205"))+lesson.ChallengePrompt)
	}
	return strings.Join(parts, "\n")
}

// renderEditorHeader renders the query box label.
func renderEditorHeader(state State, noColor bool) string {
	label := "Code Zone | DB: School Records"
	if state.Running {
		label += " | Running..."
	}
	return stylize(label, noColor, lipgloss.Color("42"))
}

// renderResult renders the error banner, the result table or a placeholder.
func renderResult(state State, tableView string, noColor bool) string {
	switch {
	case state.Result == nil:
		return stylize("Results here", noColor, lipgloss.Color("240"))
	case state.Result.Failed():
		return stylize("Syntax Error: "+state.Result.Error, noColor, lipgloss.Color("196"))
	case len(state.Result.Columns) == 0:
		return stylize("Results here", noColor, lipgloss.Color("240"))
	case len(state.Result.Rows) == 0:
		return tableView + "\n" + stylize("0 rows", noColor, lipgloss.Color("244"))
	}
	return tableView
}

// renderHelp renders the key hints for the focused pane.
func renderHelp(state State, noColor bool) string {
	hint := "up/down: move | enter: open lesson | e: try example | tab: query | q: quit"
	if state.Focus == FocusQuery {
		hint = "enter: run | tab/esc: modules | ctrl+c: quit"
	}
	return stylize(hint, noColor, lipgloss.Color("240"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
