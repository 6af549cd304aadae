// Package docstore persists per-user JSON documents.
//
// Plans and profiles are stored as whole documents keyed by a well-known
// document name. Writes replace the document, there are no partial updates.
package docstore

import (
	"context"
	"errors"
)

// Well-known document keys.
const (
	KeyWorkoutPlan = "workoutPlan"
	KeyDietPlan    = "dietPlan"
	KeyUserProfile = "fitnessUserProfile"
)

var (
	// ErrNotFound is returned when the user has no document under the given key.
	ErrNotFound = errors.New("document not found")
	// ErrUnauthenticated is returned when the context has no authenticated user.
	ErrUnauthenticated = errors.New("no authenticated user in context")
)

// Store reads and writes the documents of the authenticated user.
//
// The user is resolved from the context, so a Store must only be called
// from request paths that have gone through authentication.
type Store interface {
	// Get unmarshals the document stored under key into dest.
	// Returns ErrNotFound when the user has no such document.
	Get(ctx context.Context, key string, dest any) error
	// Set marshals doc and stores it under key, replacing any previous document.
	Set(ctx context.Context, key string, doc any) error
	// Delete removes the document stored under key. Deleting a missing
	// document is not an error.
	Delete(ctx context.Context, key string) error
}
