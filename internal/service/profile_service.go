package service

import (
	"context"
	"time"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

type ProfileService struct {
	Repo *repository.ProfileRepository
}

func NewProfileService(repo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{Repo: repo}
}

func (s *ProfileService) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	return s.Repo.Upsert(ctx, profile)
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.Repo.FindByUser(ctx, userID)
}
