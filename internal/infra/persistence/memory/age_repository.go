package memory

import (
	"context"
	"sync"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
)

// ageRepository implements the repository.AgeRepository interface.
type ageRepository struct {
	mu      sync.RWMutex
	records map[string]entity.Age
	order   []string
}

// NewAgeRepository is the constructor for ageRepository.
func NewAgeRepository() repository.AgeRepository {
	return &ageRepository{
		records: make(map[string]entity.Age),
	}
}

// Save stores or overwrites the record under its person name.
func (repo *ageRepository) Save(_ context.Context, age *entity.Age) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.records[age.PersonName]; !exists {
		repo.order = append(repo.order, age.PersonName)
	}
	repo.records[age.PersonName] = *age

	return nil
}

// FindByName retrieves a record by person name.
func (repo *ageRepository) FindByName(_ context.Context, personName string) (*entity.Age, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	record, exists := repo.records[personName]
	if !exists {
		return nil, domainerrors.ErrAgeNotFound
	}

	return &record, nil
}

// FindAll returns every stored record in insertion order.
func (repo *ageRepository) FindAll(_ context.Context) ([]*entity.Age, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	ages := make([]*entity.Age, 0, len(repo.order))
	for _, name := range repo.order {
		record := repo.records[name]
		ages = append(ages, &record)
	}

	return ages, nil
}

// Delete removes the record under the person name.
func (repo *ageRepository) Delete(_ context.Context, personName string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.records[personName]; !exists {
		return domainerrors.ErrAgeNotFound
	}

	delete(repo.records, personName)
	repo.order = removeKey(repo.order, personName)

	return nil
}

// removeKey drops the first occurrence of key from order, preserving the
// relative order of the remaining keys.
func removeKey(order []string, key string) []string {
	for i, candidate := range order {
		if candidate == key {
			return append(order[:i], order[i+1:]...)
		}
	}

	return order
}
