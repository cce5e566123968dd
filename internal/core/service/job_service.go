package service

import (
	"context"

	"github.com/fairlink/careerfair-api/internal/core/ports"
)

// JobService exposes the read views over active job postings, including the
// sample postings seeded on first startup.
type JobService struct {
	repo ports.JobRepository
}

func NewJobService(repo ports.JobRepository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) List(ctx context.Context) ([]ports.JobListing, error) {
	return s.repo.ListActive(ctx)
}

func (s *JobService) Get(ctx context.Context, id int64) (*ports.JobListing, error) {
	return s.repo.FindActive(ctx, id)
}
