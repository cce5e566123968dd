package ports

import (
	"context"

	"github.com/fairlink/careerfair-api/internal/core/domain"
)

// SubmittedResume is a resume row enriched for the job-seeker view. The join
// fields are null for whichever parent the resume does not have.
type SubmittedResume struct {
	domain.Resume
	BoothNumber *string `json:"boothNumber"`
	CompanyName *string `json:"companyName"`
	FairTitle   *string `json:"fairTitle"`
	JobTitle    *string `json:"jobTitle"`
}

// ReceivedResume is a resume row enriched with submitter identity for the
// employer views.
type ReceivedResume struct {
	domain.Resume
	Email    string  `json:"email"`
	UserName *string `json:"userName"`
}

// ResumeRepository defines persistence operations for resumes.
type ResumeRepository interface {
	// Create inserts a resume row and returns its id. When the row targets a
	// job opportunity and the store still runs a pre-migration schema, the
	// implementation falls back to the legacy column set and best-effort
	// updates the job fields afterwards.
	Create(ctx context.Context, r *domain.Resume) (int64, error)
	Find(ctx context.Context, id int64) (*domain.Resume, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ResumeStatus) error
	ListByUser(ctx context.Context, userID int64) ([]SubmittedResume, error)
	ListByBooth(ctx context.Context, boothID int64) ([]ReceivedResume, error)
	ListByJob(ctx context.Context, jobID int64) ([]ReceivedResume, error)
	// BoothOwner / JobOwner resolve the user owning the company behind a
	// target. They return 0 when the target does not exist or has no owning
	// company (seeded postings).
	BoothOwner(ctx context.Context, boothID int64) (int64, error)
	JobOwner(ctx context.Context, jobID int64) (int64, error)
}
