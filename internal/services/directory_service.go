package services

import (
	"context"

	"github.com/codecompass/codecompass/internal/directory"
	"github.com/codecompass/codecompass/internal/errors"
	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/repository"
)

// DirectoryService handles the browse view's fetch-filter cycle
type DirectoryService interface {
	// Browse returns the full displayable set and the subset matching query.
	// With an empty query the two are identical.
	Browse(ctx context.Context, query string) (all, matches []models.Profile, err error)
}

type directoryService struct {
	profileRepo repository.ProfileRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(profileRepo repository.ProfileRepository) DirectoryService {
	return &directoryService{profileRepo: profileRepo}
}

func (s *directoryService) Browse(ctx context.Context, query string) ([]models.Profile, []models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("browsing directory: query=%q", query)

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		log.Error("failed to fetch profiles: %v", err)
		return nil, nil, errors.NewInternalError(err)
	}

	all := directory.FilterDisplayable(profiles)
	matches := directory.Search(all, query)

	log.Debug("directory: %d displayable, %d matching", len(all), len(matches))
	return all, matches, nil
}
