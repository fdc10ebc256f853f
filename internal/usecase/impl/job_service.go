package impl

import (
	"context"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
)

type jobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new job service instance
func NewJobService(jobRepo repository.JobRepository) usecase.JobUsecase {
	return &jobService{
		jobRepo: jobRepo,
	}
}

// CreateJob upserts the record under its ID string. A zero ID means the
// client omitted it, so a fresh one is generated.
func (s *jobService) CreateJob(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to save job record")
	}

	return job, nil
}

// ListJobs returns all stored records.
func (s *jobService) ListJobs(ctx context.Context) ([]*entity.Job, error) {
	return s.jobRepo.FindAll(ctx)
}

// GetJob retrieves a record by ID string.
func (s *jobService) GetJob(ctx context.Context, id string) (*entity.Job, error) {
	return s.jobRepo.FindByID(ctx, id)
}

// ReplaceJob upserts the record under id. The path/payload mismatch check
// runs before any existence check, mirroring ReplaceAge.
func (s *jobService) ReplaceJob(ctx context.Context, id string, job *entity.Job) (*entity.Job, error) {
	if job.ID.String() != id {
		return nil, domainerrors.ErrJobIDMismatch
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to save job record")
	}

	return job, nil
}

// DeleteJob removes the record under the ID string.
func (s *jobService) DeleteJob(ctx context.Context, id string) error {
	return s.jobRepo.Delete(ctx, id)
}
