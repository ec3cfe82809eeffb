package duckdb_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/duckdb/duckdb-go/v2"

	"qbank/internal/duckdb"
	"qbank/internal/testutil"
)

// openTestDB opens an in-memory DuckDB with the schema applied.
func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, 0)
	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("ping duckdb: %v", err)
	}
	if err := duckdb.EnsureSchema(db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db, ctx
}

// execSQL runs a statement and fails the test on error.
func execSQL(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...interface{}) {
	t.Helper()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

// queryInt runs a single-value query and returns the result as int.
func queryInt(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	var value int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return value
}
