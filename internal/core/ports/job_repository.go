package ports

import (
	"context"

	"github.com/fairlink/careerfair-api/internal/core/domain"
)

// JobListing is an active posting joined with its optional company and fair.
type JobListing struct {
	domain.JobOpportunity
	CompanyName     *string `json:"companyName"`
	CompanyWebsite  *string `json:"companyWebsite"`
	Industry        *string `json:"industry"`
	CareerFairTitle *string `json:"careerFairTitle"`
	FairStatus      *string `json:"fairStatus"`
}

// JobRepository defines read operations over job opportunities.
type JobRepository interface {
	ListActive(ctx context.Context) ([]JobListing, error)
	// FindActive returns domain.ErrJobNotFound for unknown or inactive ids.
	FindActive(ctx context.Context, id int64) (*JobListing, error)
}

// JobService exposes the posting read views.
type JobService interface {
	List(ctx context.Context) ([]JobListing, error)
	Get(ctx context.Context, id int64) (*JobListing, error)
}
