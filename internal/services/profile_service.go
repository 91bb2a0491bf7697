package services

import (
	"context"

	"github.com/codecompass/codecompass/internal/errors"
	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/repository"
)

// ProfileService handles the profile editor's load/save cycle
type ProfileService interface {
	// LoadOwn returns the caller's stored profile, or (nil, nil) when none
	// exists yet.
	LoadOwn(ctx context.Context, userID string) (*models.Profile, error)
	// Save replaces the caller's profile wholesale with the submitted form
	// state. Blank fields are stored as-is: profile creation stays
	// frictionless, nothing is mandatory.
	Save(ctx context.Context, userID string, form models.ProfileForm) (*models.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) LoadOwn(ctx context.Context, userID string) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading own profile: user_id=%s", userID)

	if userID == "" {
		return nil, errors.NewUnauthorizedError("sign in to edit your profile")
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return profile, nil
}

func (s *profileService) Save(ctx context.Context, userID string, form models.ProfileForm) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("saving profile: user_id=%s", userID)

	if userID == "" {
		return nil, errors.NewUnauthorizedError("sign in to save your profile")
	}

	profile, err := s.profileRepo.Upsert(ctx, form.ToProfile(userID))
	if err != nil {
		log.Error("failed to save profile: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("profile saved: user_id=%s", userID)
	return profile, nil
}
