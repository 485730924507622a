package practicedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/snake14v/SQL-LEARNX/internal/dataset"
)

// Seed replaces the contents of both tables with data in one transaction.
func Seed(ctx context.Context, db *sql.DB, data dataset.Dataset) (err error) {
	if db == nil {
		return errors.New("practicedb: db is nil")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("practicedb: begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range []string{"DELETE FROM assignments", "DELETE FROM students"} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("practicedb: clear tables: %w", err)
		}
	}
	for _, student := range data.Students {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO students (id, name, grade, favorite_subject, score) VALUES (?, ?, ?, ?, ?)`,
			student.ID, student.Name, student.Grade, student.FavoriteSubject, student.Score,
		)
		if err != nil {
			return fmt.Errorf("practicedb: insert student %d: %w", student.ID, err)
		}
	}
	for _, assignment := range data.Assignments {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO assignments (id, student_id, title, score, submitted_date) VALUES (?, ?, ?, ?, CAST(? AS DATE))`,
			assignment.ID, assignment.StudentID, assignment.Title, assignment.Score, assignment.SubmittedDate,
		)
		if err != nil {
			return fmt.Errorf("practicedb: insert assignment %d: %w", assignment.ID, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("practicedb: commit seed: %w", err)
	}
	return nil
}

// Open returns an in-memory DuckDB database holding data.
func Open(ctx context.Context, data dataset.Dataset) (*sql.DB, error) {
	return open(ctx, "", data)
}

// Export writes data to a fresh DuckDB file at path, replacing any existing file.
func Export(ctx context.Context, path string, data dataset.Dataset) error {
	if path == "" {
		return errors.New("practicedb: export path is required")
	}
	for _, stale := range []string{path, path + ".wal"} {
		if err := os.Remove(stale); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("practicedb: remove %s: %w", stale, err)
		}
	}
	db, err := open(ctx, path, data)
	if err != nil {
		return err
	}
	return db.Close()
}

func open(ctx context.Context, dsn string, data dataset.Dataset) (*sql.DB, error) {
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("practicedb: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("practicedb: ping: %w", err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("practicedb: apply schema: %w", err)
	}
	if err := Seed(ctx, db, data); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
