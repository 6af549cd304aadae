package docstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mkarvo/fitsoul/internal/contexthelpers"
	"github.com/mkarvo/fitsoul/internal/docstore"
	"github.com/mkarvo/fitsoul/internal/sqlite"
	"github.com/mkarvo/fitsoul/internal/testhelpers"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// newStore opens an in-memory database with the given users created.
func newStore(t *testing.T, displayNames ...string) *docstore.SQLiteStore {
	t.Helper()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close database: %v", err)
		}
	})
	for _, name := range displayNames {
		if _, err := db.ReadWrite.ExecContext(ctx,
			"INSERT INTO users (display_name, password_hash) VALUES (?, 'x')", name); err != nil {
			t.Fatalf("Failed to insert user %s: %v", name, err)
		}
	}
	return docstore.NewSQLiteStore(db)
}

func TestSQLiteStore_roundtrip(t *testing.T) {
	t.Parallel()

	store := newStore(t, "maija")
	ctx := contexthelpers.AuthenticateTestContext(t.Context(), 1)

	want := testDoc{Name: "first", Count: 3}
	if err := store.Set(ctx, docstore.KeyWorkoutPlan, want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got testDoc
	if err := store.Get(ctx, docstore.KeyWorkoutPlan, &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	// Set replaces the whole document.
	want = testDoc{Name: "second", Count: 0}
	if err := store.Set(ctx, docstore.KeyWorkoutPlan, want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Get(ctx, docstore.KeyWorkoutPlan, &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch after overwrite (-want +got):\n%s", diff)
	}
}

func TestSQLiteStore_notFound(t *testing.T) {
	t.Parallel()

	store := newStore(t, "maija")
	ctx := contexthelpers.AuthenticateTestContext(t.Context(), 1)

	var got testDoc
	if err := store.Get(ctx, docstore.KeyDietPlan, &got); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_unauthenticated(t *testing.T) {
	t.Parallel()

	store := newStore(t, "maija")
	ctx := context.Background()

	var got testDoc
	if err := store.Get(ctx, docstore.KeyDietPlan, &got); !errors.Is(err, docstore.ErrUnauthenticated) {
		t.Errorf("Get() error = %v, want ErrUnauthenticated", err)
	}
	if err := store.Set(ctx, docstore.KeyDietPlan, testDoc{}); !errors.Is(err, docstore.ErrUnauthenticated) {
		t.Errorf("Set() error = %v, want ErrUnauthenticated", err)
	}
}

func TestSQLiteStore_usersAreIsolated(t *testing.T) {
	t.Parallel()

	store := newStore(t, "maija", "pekka")
	maijaCtx := contexthelpers.AuthenticateTestContext(t.Context(), 1)
	pekkaCtx := contexthelpers.AuthenticateTestContext(t.Context(), 2)

	if err := store.Set(maijaCtx, docstore.KeyUserProfile, testDoc{Name: "maija"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got testDoc
	if err := store.Get(pekkaCtx, docstore.KeyUserProfile, &got); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("Get() for other user error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_delete(t *testing.T) {
	t.Parallel()

	store := newStore(t, "maija")
	ctx := contexthelpers.AuthenticateTestContext(t.Context(), 1)

	if err := store.Set(ctx, docstore.KeyDietPlan, testDoc{Name: "doomed"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Delete(ctx, docstore.KeyDietPlan); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	var got testDoc
	if err := store.Get(ctx, docstore.KeyDietPlan, &got); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting again is a no-op.
	if err := store.Delete(ctx, docstore.KeyDietPlan); err != nil {
		t.Errorf("Delete() of missing document error = %v", err)
	}
}
