package practicedb_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/snake14v/SQL-LEARNX/internal/dataset"
	"github.com/snake14v/SQL-LEARNX/internal/practicedb"
	"github.com/snake14v/SQL-LEARNX/internal/testutil"
)

const (
	testTimeout = 5 * time.Second
)

// openTestDB opens an in-memory practice database seeded with the fixture.
func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	db, err := practicedb.Open(ctx, dataset.Fixture())
	if err != nil {
		t.Fatalf("open practice db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, ctx
}

// queryInt returns a single integer value from the database.
func queryInt(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	var out int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&out); err != nil {
		t.Fatalf("query int failed: %v", err)
	}
	return out
}
