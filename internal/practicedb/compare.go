package practicedb

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
)

// numericTolerance absorbs the one-decimal rounding of mock averages.
const numericTolerance = 0.05

const maxMismatches = 10

// Comparison is the outcome of checking a mock result against DuckDB.
type Comparison struct {
	Match      bool     `json:"match"`
	Mismatches []string `json:"mismatches,omitempty"`
}

// Compare checks mock against reference over the columns both share, matched
// by name. Row order matters.
func Compare(mock, reference evaluator.QueryResult) Comparison {
	if mock.Failed() {
		return Comparison{Mismatches: []string{"mock evaluator rejected the query"}}
	}
	if reference.Failed() {
		return Comparison{Mismatches: []string{"reference query failed"}}
	}

	type pair struct {
		name      string
		mock, ref int
	}
	var shared []pair
	for i, name := range mock.Columns {
		for j, refName := range reference.Columns {
			if strings.EqualFold(name, refName) {
				shared = append(shared, pair{name: name, mock: i, ref: j})
				break
			}
		}
	}

	var mismatches []string
	add := func(format string, args ...any) {
		mismatches = append(mismatches, fmt.Sprintf(format, args...))
	}
	if len(shared) == 0 {
		add("no shared columns: mock %v, reference %v", mock.Columns, reference.Columns)
	}
	if len(mock.Rows) != len(reference.Rows) {
		add("row count: mock %d, reference %d", len(mock.Rows), len(reference.Rows))
	}
	rows := min(len(mock.Rows), len(reference.Rows))
	for r := 0; r < rows; r++ {
		for _, col := range shared {
			got := cellAt(mock.Rows[r], col.mock)
			want := cellAt(reference.Rows[r], col.ref)
			if !cellsEqual(got, want) {
				add("row %d %s: mock %v, reference %v", r+1, col.name, got, want)
			}
		}
	}
	if len(mismatches) > maxMismatches {
		extra := len(mismatches) - maxMismatches
		mismatches = append(mismatches[:maxMismatches], fmt.Sprintf("and %d more", extra))
	}
	return Comparison{Match: len(mismatches) == 0, Mismatches: mismatches}
}

func cellAt(row []any, idx int) any {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}

func cellsEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	fa, aNumeric := asNumber(a)
	fb, bNumeric := asNumber(b)
	if aNumeric && bNumeric {
		return math.Abs(fa-fb) <= numericTolerance
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
