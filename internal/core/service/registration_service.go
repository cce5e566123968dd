package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fairlink/careerfair-api/internal/core/ports"
)

type RegistrationService struct {
	repo   ports.RegistrationRepository
	logger zerolog.Logger
}

func NewRegistrationService(repo ports.RegistrationRepository, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{repo: repo, logger: logger}
}

// Register signs a user up for a career fair. Registering twice for the same
// fair surfaces domain.ErrAlreadyRegistered.
func (s *RegistrationService) Register(ctx context.Context, userID, fairID int64) (int64, error) {
	id, err := s.repo.Create(ctx, userID, fairID)
	if err != nil {
		return 0, fmt.Errorf("register for fair: %w", err)
	}
	s.logger.Info().
		Int64("registration_id", id).
		Int64("user_id", userID).
		Int64("career_fair_id", fairID).
		Msg("registered for career fair")
	return id, nil
}

func (s *RegistrationService) ListForUser(ctx context.Context, userID int64) ([]ports.UserRegistration, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *RegistrationService) ListForFair(ctx context.Context, fairID int64) ([]ports.FairRegistration, error) {
	return s.repo.ListByFair(ctx, fairID)
}
