package service

import (
	"context"
	"errors"

	"github.com/openbarbell/liftlog/internal/domain"
	"github.com/openbarbell/liftlog/internal/repository"
)

// DefaultUserID stamps workouts when no profile has been configured.
// The client works fully offline; identity is only authorship metadata.
const DefaultUserID = "local"

type profileService struct {
	profiles repository.ProfileRepo
}

// NewProfileService creates the identity collaborator backed by the
// single-row profile store.
func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) CurrentUserID(ctx context.Context) (string, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return DefaultUserID, nil
		}
		return "", err
	}
	return p.UserID, nil
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Set(ctx context.Context, userID, displayName string) error {
	return s.profiles.Upsert(ctx, &domain.UserProfile{
		UserID:      userID,
		DisplayName: displayName,
	})
}
