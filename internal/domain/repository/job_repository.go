package repository

import (
	"context"

	"directory/internal/domain/entity"
)

// JobRepository stores job records keyed by the string form of the job ID.
// Writes are upserts, mirroring AgeRepository.
type JobRepository interface {
	// Save stores or overwrites the record under its ID string.
	Save(ctx context.Context, job *entity.Job) error

	// FindByID retrieves a record by ID string. Returns ErrJobNotFound
	// when absent.
	FindByID(ctx context.Context, id string) (*entity.Job, error)

	// FindAll returns every stored record in insertion order.
	FindAll(ctx context.Context) ([]*entity.Job, error)

	// Delete removes the record under the ID string. Returns
	// ErrJobNotFound when absent.
	Delete(ctx context.Context, id string) error
}
