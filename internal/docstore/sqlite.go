package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkarvo/fitsoul/internal/contexthelpers"
	"github.com/mkarvo/fitsoul/internal/sqlite"
)

// SQLiteStore is a Store backed by the documents table.
type SQLiteStore struct {
	db *sqlite.Database
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sqlite.Database) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string, dest any) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)
	if userID == 0 {
		return ErrUnauthenticated
	}
	var doc string
	err := s.db.ReadOnly.QueryRowContext(ctx,
		"SELECT doc FROM documents WHERE user_id = ? AND key = ?", userID, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("query document %s: %w", key, err)
	}
	if err = json.Unmarshal([]byte(doc), dest); err != nil {
		return fmt.Errorf("unmarshal document %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, doc any) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)
	if userID == 0 {
		return ErrUnauthenticated
	}
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", key, err)
	}
	if _, err = s.db.ReadWrite.ExecContext(ctx, `INSERT INTO documents (user_id, key, doc, updated_at)
VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
ON CONFLICT (user_id, key) DO UPDATE SET doc        = excluded.doc,
                                         updated_at = excluded.updated_at`,
		userID, key, string(encoded)); err != nil {
		return fmt.Errorf("upsert document %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)
	if userID == 0 {
		return ErrUnauthenticated
	}
	if _, err := s.db.ReadWrite.ExecContext(ctx,
		"DELETE FROM documents WHERE user_id = ? AND key = ?", userID, key); err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}
