package ports

import "context"

// RegistrationService registers job seekers for career fairs.
type RegistrationService interface {
	Register(ctx context.Context, userID, fairID int64) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]UserRegistration, error)
	ListForFair(ctx context.Context, fairID int64) ([]FairRegistration, error)
}
