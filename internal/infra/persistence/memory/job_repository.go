package memory

import (
	"context"
	"sync"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
)

// jobRepository implements the repository.JobRepository interface.
type jobRepository struct {
	mu      sync.RWMutex
	records map[string]entity.Job
	order   []string
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository() repository.JobRepository {
	return &jobRepository{
		records: make(map[string]entity.Job),
	}
}

// Save stores or overwrites the record under its ID string.
func (repo *jobRepository) Save(_ context.Context, job *entity.Job) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := job.ID.String()
	if _, exists := repo.records[key]; !exists {
		repo.order = append(repo.order, key)
	}
	repo.records[key] = *job

	return nil
}

// FindByID retrieves a record by ID string.
func (repo *jobRepository) FindByID(_ context.Context, id string) (*entity.Job, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	record, exists := repo.records[id]
	if !exists {
		return nil, domainerrors.ErrJobNotFound
	}

	return &record, nil
}

// FindAll returns every stored record in insertion order.
func (repo *jobRepository) FindAll(_ context.Context) ([]*entity.Job, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	jobs := make([]*entity.Job, 0, len(repo.order))
	for _, key := range repo.order {
		record := repo.records[key]
		jobs = append(jobs, &record)
	}

	return jobs, nil
}

// Delete removes the record under the ID string.
func (repo *jobRepository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.records[id]; !exists {
		return domainerrors.ErrJobNotFound
	}

	delete(repo.records, id)
	repo.order = removeKey(repo.order, id)

	return nil
}
