package learn

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
)

const maxColumnWidth = 28

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("158"))
	return styles
}

// columnsForResult sizes one column per result column to fit its widest cell.
func columnsForResult(result *evaluator.QueryResult) []table.Column {
	if result == nil || result.Failed() {
		return []table.Column{}
	}
	columns := make([]table.Column, len(result.Columns))
	for i, name := range result.Columns {
		width := len(name)
		for _, row := range result.Rows {
			if i < len(row) {
				width = max(width, len(FormatCell(row[i])))
			}
		}
		columns[i] = table.Column{Title: name, Width: min(width, maxColumnWidth)}
	}
	return columns
}

// rowsForResult converts result rows into table rows.
func rowsForResult(result *evaluator.QueryResult) []table.Row {
	if result == nil || result.Failed() {
		return []table.Row{}
	}
	rows := make([]table.Row, 0, len(result.Rows))
	for _, row := range result.Rows {
		cells := make(table.Row, len(result.Columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = FormatCell(row[i])
			} else {
				cells[i] = FormatCell(nil)
			}
		}
		rows = append(rows, cells)
	}
	return rows
}

// FormatCell renders one result cell for display. Missing values read NULL.
func FormatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
