package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/fairlink/careerfair-api/internal/core/domain"
	"github.com/fairlink/careerfair-api/internal/core/ports"
)

type ResumeService struct {
	repo   ports.ResumeRepository
	files  ports.FileStore
	logger zerolog.Logger
}

func NewResumeService(repo ports.ResumeRepository, files ports.FileStore, logger zerolog.Logger) *ResumeService {
	return &ResumeService{repo: repo, files: files, logger: logger}
}

// SubmitToBooth validates the submission and creates a booth-targeted resume.
// The job parent stays null; a booth and a job can never be set together.
func (s *ResumeService) SubmitToBooth(ctx context.Context, in ports.SubmitResumeInput) (int64, error) {
	if in.File == nil {
		return 0, domain.ErrFileRequired
	}
	if in.UserID == "" || in.BoothID == "" {
		return 0, fmt.Errorf("%w: user ID and company booth ID are required", domain.ErrInvalidInput)
	}
	userID, err := strconv.ParseInt(in.UserID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid user ID", domain.ErrInvalidInput)
	}
	boothID, err := strconv.ParseInt(in.BoothID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid company booth ID", domain.ErrInvalidInput)
	}
	return s.submit(ctx, userID, domain.BoothTarget(boothID), nil, in.File)
}

// SubmitToJob validates the submission and creates a job-targeted resume with
// an explicitly null booth parent and an optional cover letter.
func (s *ResumeService) SubmitToJob(ctx context.Context, in ports.SubmitResumeInput) (int64, error) {
	if in.File == nil {
		return 0, domain.ErrFileRequired
	}
	if in.UserID == "" || in.JobID == "" {
		return 0, fmt.Errorf("%w: user ID and job opportunity ID are required", domain.ErrInvalidInput)
	}
	userID, err := strconv.ParseInt(in.UserID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid user ID", domain.ErrInvalidInput)
	}
	jobID, err := strconv.ParseInt(in.JobID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid job opportunity ID", domain.ErrInvalidInput)
	}
	var cover *string
	if in.CoverLetter != "" {
		cover = &in.CoverLetter
	}
	return s.submit(ctx, userID, domain.JobTarget(jobID), cover, in.File)
}

// submit writes the file first, then the row. The pending handle guarantees
// the file is gone on every path that does not reach Commit, so a row and its
// file always appear together.
func (s *ResumeService) submit(ctx context.Context, userID int64, target domain.SubmissionTarget, cover *string, file *ports.FileUpload) (int64, error) {
	pending, err := s.files.Save(*file)
	if err != nil {
		return 0, err
	}
	defer func() {
		if discardErr := pending.Discard(); discardErr != nil {
			s.logger.Error().Err(discardErr).Str("path", pending.RelativePath()).Msg("failed to remove orphaned upload")
		}
	}()

	r := &domain.Resume{
		UserID:      userID,
		FileName:    file.Name,
		FilePath:    pending.RelativePath(),
		FileSize:    file.Size,
		CoverLetter: cover,
		Status:      domain.ResumePending,
		SubmittedAt: time.Now().UTC(),
	}
	if boothID, ok := target.Booth(); ok {
		r.CompanyBoothID = &boothID
	}
	if jobID, ok := target.Job(); ok {
		r.JobOpportunityID = &jobID
	}

	id, err := s.repo.Create(ctx, r)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to create resume row")
		return 0, fmt.Errorf("submit resume: %w", err)
	}
	pending.Commit()

	s.logger.Info().
		Int64("resume_id", id).
		Int64("user_id", userID).
		Str("file", file.Name).
		Msg("resume submitted")
	return id, nil
}

// SetStatus moves a resume between pending/accepted/rejected. Setting the
// current status again is a no-op in effect.
func (s *ResumeService) SetStatus(ctx context.Context, resumeID int64, status string, by ports.Requester) error {
	parsed, err := domain.ParseResumeStatus(status)
	if err != nil {
		return err
	}

	r, err := s.repo.Find(ctx, resumeID)
	if err != nil {
		return err
	}
	if err := s.authorizeTarget(ctx, r.CompanyBoothID, r.JobOpportunityID, by); err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, resumeID, parsed); err != nil {
		s.logger.Error().Err(err).Int64("resume_id", resumeID).Msg("failed to update resume status")
		return fmt.Errorf("set status: %w", err)
	}

	s.logger.Info().
		Int64("resume_id", resumeID).
		Str("status", string(parsed)).
		Int64("by", by.UserID).
		Msg("resume status updated")
	return nil
}

func (s *ResumeService) ListForUser(ctx context.Context, userID int64) ([]ports.SubmittedResume, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ResumeService) ListForJob(ctx context.Context, jobID int64, by ports.Requester) ([]ports.ReceivedResume, error) {
	jid := jobID
	if err := s.authorizeTarget(ctx, nil, &jid, by); err != nil {
		return nil, err
	}
	return s.repo.ListByJob(ctx, jobID)
}

func (s *ResumeService) ListForBooth(ctx context.Context, boothID int64, by ports.Requester) ([]ports.ReceivedResume, error) {
	bid := boothID
	if err := s.authorizeTarget(ctx, &bid, nil, by); err != nil {
		return nil, err
	}
	return s.repo.ListByBooth(ctx, boothID)
}

// authorizeTarget checks that the requester owns the company behind the booth
// or job. Admins bypass; targets without an owning company (seeded postings,
// degraded rows with both parents unset) are open to any employer.
func (s *ResumeService) authorizeTarget(ctx context.Context, boothID, jobID *int64, by ports.Requester) error {
	if by.IsAdmin {
		return nil
	}

	var owner int64
	var err error
	switch {
	case boothID != nil:
		owner, err = s.repo.BoothOwner(ctx, *boothID)
	case jobID != nil:
		owner, err = s.repo.JobOwner(ctx, *jobID)
	}
	if err != nil {
		return fmt.Errorf("resolve target owner: %w", err)
	}
	if owner != 0 && owner != by.UserID {
		return domain.ErrForbidden
	}
	return nil
}
