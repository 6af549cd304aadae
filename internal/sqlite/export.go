package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
)

// userTables lists the tables carrying user data and the column that scopes
// each to a user. Session rows are excluded, they hold no user content.
var userTables = []struct {
	name       string
	userColumn string
}{
	{name: "users", userColumn: "id"},
	{name: "documents", userColumn: "user_id"},
}

// ExportUserDB copies one user's rows into a standalone SQLite file under
// basePath and returns its path. The file contains the same table
// definitions as the live database, so the user gets their data in a form
// any SQLite tool can open.
func (db *Database) ExportUserDB(ctx context.Context, userID int, basePath string) (_ string, err error) {
	exportPath := filepath.Join(basePath, fmt.Sprintf("user-db-%d.sqlite3", userID))
	exportDSN := fmt.Sprintf("file:%s?mode=rwc", exportPath)

	conn, err := db.ReadOnly.Conn(ctx)
	if err != nil {
		return "", fmt.Errorf("get db connection: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close db connection: %w", closeErr)
		}
	}()

	// The read-only pool opens connections with query_only set, lift it for
	// the duration of the export so the attached database accepts writes.
	if _, err = conn.ExecContext(ctx, "PRAGMA query_only = FALSE"); err != nil {
		return "", fmt.Errorf("disable read-only mode: %w", err)
	}
	defer func() {
		if _, pragmaErr := conn.ExecContext(ctx, "PRAGMA query_only = TRUE"); pragmaErr != nil && err == nil {
			err = fmt.Errorf("restore read-only mode: %w", pragmaErr)
		}
	}()

	if _, err = conn.ExecContext(ctx, "ATTACH DATABASE ? AS export", exportDSN); err != nil {
		return "", fmt.Errorf("attach export database: %w", err)
	}
	defer func() {
		if _, detachErr := conn.ExecContext(ctx, "DETACH DATABASE export"); detachErr != nil && err == nil {
			err = fmt.Errorf("detach export database: %w", detachErr)
		}
	}()

	for _, table := range userTables {
		if err = copyUserTable(ctx, conn, table.name, table.userColumn, userID); err != nil {
			return "", fmt.Errorf("export table %s: %w", table.name, err)
		}
	}

	return exportPath, nil
}

func copyUserTable(ctx context.Context, conn *sql.Conn, table, userColumn string, userID int) error {
	var createSQL string
	err := conn.QueryRowContext(ctx,
		"SELECT sql FROM sqlite_schema WHERE type = 'table' AND name = ?", table).Scan(&createSQL)
	if err != nil {
		return fmt.Errorf("get table definition: %w", err)
	}

	exportSQL := fmt.Sprintf("CREATE TABLE export.%s%s", table, createSQL[len("CREATE TABLE "+table):])
	if _, err = conn.ExecContext(ctx, exportSQL); err != nil {
		return fmt.Errorf("create table in export db: %w", err)
	}

	copySQL := fmt.Sprintf("INSERT INTO export.%s SELECT * FROM main.%s WHERE %s = ?", //nolint:gosec // table names come from the fixed list above.
		table, table, userColumn)
	if _, err = conn.ExecContext(ctx, copySQL, userID); err != nil {
		return fmt.Errorf("copy rows: %w", err)
	}
	return nil
}
