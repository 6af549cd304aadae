package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mkarvo/fitsoul/internal/docstore"
)

// ErrNotFound is returned when the user has not filled in a profile yet.
var ErrNotFound = errors.New("profile not found")

// Service reads and writes the profile document of the authenticated user.
type Service struct {
	store  docstore.Store
	logger *slog.Logger
}

func NewService(store docstore.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get returns the stored profile or ErrNotFound.
func (s *Service) Get(ctx context.Context) (Profile, error) {
	var p Profile
	err := s.store.Get(ctx, docstore.KeyUserProfile, &p)
	if errors.Is(err, docstore.ErrNotFound) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile document: %w", err)
	}
	return p, nil
}

// GetOrZero returns the stored profile, or the zero profile when the user
// has not created one. Plan generation works off partial profiles, so a
// missing document is not an error there.
func (s *Service) GetOrZero(ctx context.Context) (Profile, error) {
	p, err := s.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return Profile{}, nil
	}
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Set validates and stores the profile, replacing any previous one.
func (s *Service) Set(ctx context.Context, p Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validate profile: %w", err)
	}
	if err := s.store.Set(ctx, docstore.KeyUserProfile, p); err != nil {
		return fmt.Errorf("set profile document: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "profile saved", slog.String("name", p.Name))
	return nil
}
