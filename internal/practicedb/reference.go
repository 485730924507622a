package practicedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
)

// ErrReadOnly is returned for statements other than SELECT or WITH queries.
var ErrReadOnly = errors.New("practicedb: only SELECT queries can be checked")

// Reference runs query on db inside a transaction that is always rolled
// back, and converts the rows to the evaluator's result shape.
func Reference(ctx context.Context, db *sql.DB, query string) (evaluator.QueryResult, error) {
	if db == nil {
		return evaluator.QueryResult{}, errors.New("practicedb: db is nil")
	}
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if !strings.HasPrefix(trimmed, "select") && !strings.HasPrefix(trimmed, "with") {
		return evaluator.QueryResult{}, ErrReadOnly
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return evaluator.QueryResult{}, fmt.Errorf("practicedb: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return evaluator.QueryResult{}, fmt.Errorf("practicedb: query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return evaluator.QueryResult{}, fmt.Errorf("practicedb: columns: %w", err)
	}
	result := evaluator.QueryResult{Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		cells := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range cells {
			targets[i] = &cells[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return evaluator.QueryResult{}, fmt.Errorf("practicedb: scan: %w", err)
		}
		for i, cell := range cells {
			cells[i] = normalizeCell(cell)
		}
		result.Rows = append(result.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return evaluator.QueryResult{}, fmt.Errorf("practicedb: rows: %w", err)
	}
	return result, nil
}

// normalizeCell maps driver values onto strings, ints, float64s and nil.
func normalizeCell(value any) any {
	switch v := value.(type) {
	case nil, string, bool, float64, int:
		return v
	case []byte:
		return string(v)
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return float64(v)
	case *big.Int:
		if v.IsInt64() {
			return int(v.Int64())
		}
		return v.String()
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	case interface{ Float64() float64 }:
		return v.Float64()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
