package ports

import (
	"context"
	"time"

	"github.com/fairlink/careerfair-api/internal/core/domain"
)

// UserRegistration is a registration joined with its career fair.
type UserRegistration struct {
	domain.Registration
	Title     string            `json:"title"`
	StartDate time.Time         `json:"startDate"`
	EndDate   time.Time         `json:"endDate"`
	Status    domain.FairStatus `json:"status"`
}

// FairRegistration is a registration joined with the registrant's identity.
type FairRegistration struct {
	domain.Registration
	Email    string  `json:"email"`
	UserName *string `json:"userName"`
}

// RegistrationRepository defines persistence operations for fair registrations.
type RegistrationRepository interface {
	// Create inserts a registration and returns its id. A duplicate
	// (userId, careerFairId) pair returns domain.ErrAlreadyRegistered.
	Create(ctx context.Context, userID, fairID int64) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]UserRegistration, error)
	ListByFair(ctx context.Context, fairID int64) ([]FairRegistration, error)
}
