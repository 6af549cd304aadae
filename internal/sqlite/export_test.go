package sqlite_test

import (
	"database/sql"
	"testing"

	"github.com/mkarvo/fitsoul/internal/sqlite"
	"github.com/mkarvo/fitsoul/internal/testhelpers"
)

func TestDatabase_ExportUserDB(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close database: %v", err)
		}
	}()

	for _, stmt := range []string{
		"INSERT INTO users (display_name, password_hash) VALUES ('maija', 'x')",
		"INSERT INTO users (display_name, password_hash) VALUES ('pekka', 'y')",
		"INSERT INTO documents (user_id, key, doc) VALUES (1, 'workoutPlan', '{\"a\":1}')",
		"INSERT INTO documents (user_id, key, doc) VALUES (1, 'dietPlan', '{\"b\":2}')",
		"INSERT INTO documents (user_id, key, doc) VALUES (2, 'workoutPlan', '{\"c\":3}')",
	} {
		if _, err := db.ReadWrite.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("Failed to insert fixture: %v", err)
		}
	}

	exportPath, err := db.ExportUserDB(ctx, 1, t.TempDir())
	if err != nil {
		t.Fatalf("ExportUserDB() error = %v", err)
	}

	exported, err := sql.Open("sqlite3", exportPath)
	if err != nil {
		t.Fatalf("Failed to open exported database: %v", err)
	}
	defer func() {
		if err := exported.Close(); err != nil {
			t.Errorf("Failed to close exported database: %v", err)
		}
	}()

	var userCount int
	if err := exported.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if userCount != 1 {
		t.Errorf("exported users = %d, want 1", userCount)
	}

	var docCount int
	if err := exported.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE user_id = 1").Scan(&docCount); err != nil {
		t.Fatalf("Failed to count documents: %v", err)
	}
	if docCount != 2 {
		t.Errorf("exported documents for user 1 = %d, want 2", docCount)
	}

	var strayCount int
	if err := exported.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE user_id != 1").Scan(&strayCount); err != nil {
		t.Fatalf("Failed to count stray documents: %v", err)
	}
	if strayCount != 0 {
		t.Errorf("exported %d documents belonging to other users", strayCount)
	}
}
