// Package practicedb mirrors the tutorial dataset into DuckDB so queries can
// be checked against a real SQL engine.
package practicedb

import (
	"database/sql"
	_ "embed"
	"errors"

	_ "github.com/duckdb/duckdb-go/v2"
)

// schemaDDL holds the practice database schema.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the schema DDL used for initializing practice databases.
func SchemaDDL() string {
	return schemaDDL
}

// EnsureSchema applies the schema DDL to the provided database connection.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("practicedb: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}
