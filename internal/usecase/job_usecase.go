package usecase

import (
	"context"

	"directory/internal/domain/entity"
)

// JobUsecase defines the interface for job record management use cases
type JobUsecase interface {
	// CreateJob upserts the record under its ID string, generating a
	// fresh ID when the payload carries none.
	CreateJob(ctx context.Context, job *entity.Job) (*entity.Job, error)

	// ListJobs returns all stored records.
	ListJobs(ctx context.Context) ([]*entity.Job, error)

	// GetJob retrieves a record by ID string.
	GetJob(ctx context.Context, id string) (*entity.Job, error)

	// ReplaceJob upserts the record under id. Fails with ErrJobIDMismatch
	// when id differs from the string form of the payload's ID; the
	// mismatch check runs before any existence check.
	ReplaceJob(ctx context.Context, id string, job *entity.Job) (*entity.Job, error)

	// DeleteJob removes the record under the ID string.
	DeleteJob(ctx context.Context, id string) error
}
