package evaluator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/snake14v/SQL-LEARNX/internal/dataset"
)

const averageSubquery = "(select avg(score) from students)"

// detector is one step of the evaluation chain: when match accepts the
// current query text, apply transforms the working set.
type detector struct {
	name  string
	match func(query string) bool
	apply func(ws *workingSet) error
}

// workingSet is the state threaded through the chain. A non-nil result ends
// the chain early and skips projection.
type workingSet struct {
	query  string
	data   dataset.Dataset
	rows   []Record
	result *QueryResult
}

func newWorkingSet(query string, data dataset.Dataset) *workingSet {
	ws := &workingSet{query: query, data: data}
	ws.rows = make([]Record, 0, len(data.Students))
	for _, student := range data.Students {
		ws.rows = append(ws.rows, studentRecord(student))
	}
	return ws
}

func contains(marker string) func(string) bool {
	return func(query string) bool {
		return strings.Contains(query, marker)
	}
}

// chain lists the detectors in evaluation order. Later steps read the shape
// earlier steps leave behind, so the order is part of the behavior.
func chain() []detector {
	return []detector{
		{name: "scalar_subquery", match: contains(averageSubquery), apply: substituteAverage},
		{name: "assignments_table", match: contains("from assignments"), apply: selectAssignments},
		{name: "join", match: contains("join"), apply: joinTables},
		{name: "where", match: contains("where"), apply: applyFilters},
		{name: "aggregate", match: contains("count(*)"), apply: aggregate},
		{name: "rank", match: contains("rank()"), apply: rankByScore},
		{name: "case", match: contains("case when"), apply: labelGrades},
		{name: "upper", match: contains("upper(name)"), apply: upperName},
		{name: "order_by", match: contains("order by"), apply: orderByScore},
	}
}

// substituteAverage splices the student average into the query text so the
// score threshold filters can read it as a literal.
func substituteAverage(ws *workingSet) error {
	if len(ws.data.Students) == 0 {
		return nil
	}
	total := 0
	for _, student := range ws.data.Students {
		total += student.Score
	}
	avg := float64(total) / float64(len(ws.data.Students))
	ws.query = strings.Replace(ws.query, averageSubquery, strconv.FormatFloat(avg, 'f', -1, 64), 1)
	return nil
}

func selectAssignments(ws *workingSet) error {
	ws.rows = make([]Record, 0, len(ws.data.Assignments))
	for _, assignment := range ws.data.Assignments {
		ws.rows = append(ws.rows, assignmentRecord(assignment))
	}
	return nil
}

// joinTables replaces the working set with one row per student/assignment
// pair linked by student id, student-major.
func joinTables(ws *workingSet) error {
	rows := make([]Record, 0, len(ws.data.Assignments))
	for _, student := range ws.data.Students {
		for _, assignment := range ws.data.Assignments {
			if assignment.StudentID != student.ID {
				continue
			}
			rows = append(rows, joinedRecord(student, assignment))
		}
	}
	ws.rows = rows
	return nil
}

// aggregate ends the chain with a single summary row. Over an empty working
// set the average and best cells are null rather than a "NaN" string.
func aggregate(ws *workingSet) error {
	result := emptyResult()
	result.Columns = []string{"total_students", "average_score", "best_score"}
	var (
		sum  float64
		best any
		top  float64
	)
	for i, row := range ws.rows {
		value, _ := row.number("score")
		sum += value
		if i == 0 || value > top {
			top = value
			best, _ = row.Get("score")
		}
	}
	var average any
	if len(ws.rows) > 0 {
		average = formatTenths(sum / float64(len(ws.rows)))
	}
	result.Rows = [][]any{{len(ws.rows), average, best}}
	ws.result = &result
	return nil
}

// formatTenths renders value with one decimal place. Rounding reads the exact
// binary value and sends ties away from zero, so 79.25 becomes "79.3" while
// 8.45, stored just below the tie, becomes "8.4".
func formatTenths(value float64) string {
	sign := ""
	if value < 0 {
		sign, value = "-", -value
	}
	exact := strconv.FormatFloat(value, 'f', 64, 64)
	dot := strings.IndexByte(exact, '.')
	tenths, err := strconv.ParseInt(exact[:dot]+exact[dot+1:dot+2], 10, 64)
	if err != nil {
		return sign + strconv.FormatFloat(value, 'f', 1, 64)
	}
	if exact[dot+2] >= '5' {
		tenths++
	}
	return fmt.Sprintf("%s%d.%d", sign, tenths/10, tenths%10)
}

func rankByScore(ws *workingSet) error {
	sortByScore(ws.rows, true)
	for i := range ws.rows {
		ws.rows[i].Set("class_rank", i+1)
	}
	return nil
}

func labelGrades(ws *workingSet) error {
	for i := range ws.rows {
		score, _ := ws.rows[i].number("score")
		label := "C-Grade"
		switch {
		case score >= 90:
			label = "A-Grade"
		case score >= 70:
			label = "B-Grade"
		}
		ws.rows[i].Set("report_card", label)
	}
	return nil
}

func upperName(ws *workingSet) error {
	for i := range ws.rows {
		var value any
		if name, ok := ws.rows[i].text("name"); ok {
			value = strings.ToUpper(name)
		} else if name, ok := ws.rows[i].text("student_name"); ok {
			value = strings.ToUpper(name)
		}
		ws.rows[i].Set("BIG_NAME", value)
	}
	return nil
}

// orderByScore inspects the text after the first "order by" up to any second one.
func orderByScore(ws *workingSet) error {
	parts := strings.Split(ws.query, "order by")
	clause := strings.TrimSpace(parts[1])
	switch {
	case strings.Contains(clause, "score desc"):
		sortByScore(ws.rows, true)
	case strings.Contains(clause, "score"):
		sortByScore(ws.rows, false)
	}
	return nil
}

func sortByScore(rows []Record, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			return rows[i].score() > rows[j].score()
		}
		return rows[i].score() < rows[j].score()
	})
}
