// Package auth registers users and verifies their credentials.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkarvo/fitsoul/internal/sqlite"
)

var (
	// ErrUserExists is returned when the display name is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for an unknown user or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID          int
	DisplayName string
}

// Service stores password hashes with bcrypt.
type Service struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// Register creates a new user. Returns ErrUserExists when the display name
// is taken.
func (s *Service) Register(ctx context.Context, displayName, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	result, err := s.db.ReadWrite.ExecContext(ctx,
		"INSERT INTO users (display_name, password_hash) VALUES (?, ?)", displayName, string(hash))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return User{}, fmt.Errorf("last insert id: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "registered user", slog.Int64("userID", id))
	return User{ID: int(id), DisplayName: displayName}, nil
}

// Authenticate verifies the password and returns the user.
func (s *Service) Authenticate(ctx context.Context, displayName, password string) (User, error) {
	var (
		user User
		hash string
	)
	err := s.db.ReadOnly.QueryRowContext(ctx,
		"SELECT id, display_name, password_hash FROM users WHERE display_name = ?", displayName).
		Scan(&user.ID, &user.DisplayName, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("query user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}
