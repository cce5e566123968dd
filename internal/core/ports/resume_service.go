package ports

import "context"

// Requester is the authenticated caller as extracted from JWT claims.
// The zero value means "no identity" and fails every ownership check.
type Requester struct {
	UserID  int64
	Role    string
	IsAdmin bool
}

// SubmitResumeInput carries the raw multipart form of a submission. The id
// fields are kept as strings: presence and numeric validation is the
// service's job, and failures must not leave the upload on disk.
type SubmitResumeInput struct {
	UserID      string
	BoothID     string // booth-targeted path only
	JobID       string // job-targeted path only
	CoverLetter string // job-targeted path only, optional
	File        *FileUpload
}

// ResumeService is the submission and status-workflow boundary.
type ResumeService interface {
	// SubmitToBooth stores the file, inserts a booth-targeted row with a
	// null job parent, and returns the new row id.
	SubmitToBooth(ctx context.Context, in SubmitResumeInput) (int64, error)
	// SubmitToJob is the job-targeted counterpart; the booth parent is
	// explicitly null and the optional cover letter is persisted.
	SubmitToJob(ctx context.Context, in SubmitResumeInput) (int64, error)
	// SetStatus moves a resume to pending/accepted/rejected. The requester
	// must own the company behind the resume's target unless admin.
	SetStatus(ctx context.Context, resumeID int64, status string, by Requester) error
	ListForUser(ctx context.Context, userID int64) ([]SubmittedResume, error)
	ListForJob(ctx context.Context, jobID int64, by Requester) ([]ReceivedResume, error)
	ListForBooth(ctx context.Context, boothID int64, by Requester) ([]ReceivedResume, error)
}
