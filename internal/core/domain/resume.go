package domain

import (
	"errors"
	"time"
)

// ResumeStatus is the disposition of a submitted resume.
type ResumeStatus string

const (
	ResumePending  ResumeStatus = "pending"
	ResumeAccepted ResumeStatus = "accepted"
	ResumeRejected ResumeStatus = "rejected"
)

// ParseResumeStatus validates a raw status value. Transitions between the two
// terminal states are allowed; there is no terminal lock.
func ParseResumeStatus(s string) (ResumeStatus, error) {
	switch ResumeStatus(s) {
	case ResumePending, ResumeAccepted, ResumeRejected:
		return ResumeStatus(s), nil
	}
	return "", ErrInvalidStatus
}

var ErrResumeNotFound = errors.New("resume not found")
var ErrInvalidStatus = errors.New("invalid status: must be pending, accepted, or rejected")
var ErrInvalidInput = errors.New("invalid input")
var ErrForbidden = errors.New("access forbidden")

// File validation failures surfaced by the file store.
var ErrFileRequired = errors.New("resume file is required")
var ErrFileTooLarge = errors.New("file exceeds the 5 MiB limit")
var ErrFileType = errors.New("only PDF, DOC, and DOCX files are allowed")

// SubmissionTarget identifies the single parent a resume is submitted to:
// a company booth or a job opportunity, never both. The zero value is no
// target at all and is rejected by the service.
type SubmissionTarget struct {
	boothID int64
	jobID   int64
}

// BoothTarget returns a target pointing at a company booth.
func BoothTarget(boothID int64) SubmissionTarget {
	return SubmissionTarget{boothID: boothID}
}

// JobTarget returns a target pointing at a job opportunity.
func JobTarget(jobID int64) SubmissionTarget {
	return SubmissionTarget{jobID: jobID}
}

// Booth reports the booth id when the target is a booth.
func (t SubmissionTarget) Booth() (int64, bool) {
	return t.boothID, t.boothID != 0
}

// Job reports the job id when the target is a job opportunity.
func (t SubmissionTarget) Job() (int64, bool) {
	return t.jobID, t.jobID != 0
}

// IsZero reports whether no target was set.
func (t SubmissionTarget) IsZero() bool {
	return t.boothID == 0 && t.jobID == 0
}

// Resume is the core entity: one uploaded file plus metadata, attached to a
// booth or a job opportunity. Only Status changes after creation.
type Resume struct {
	ID               int64        `json:"id"`
	UserID           int64        `json:"userId"`
	CompanyBoothID   *int64       `json:"companyBoothId"`
	JobOpportunityID *int64       `json:"jobOpportunityId"`
	FileName         string       `json:"fileName"`
	FilePath         string       `json:"filePath"`
	FileSize         int64        `json:"fileSize"`
	CoverLetter      *string      `json:"coverLetter"`
	Status           ResumeStatus `json:"status"`
	SubmittedAt      time.Time    `json:"submittedAt"`
}
