package impl

import (
	"context"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/usecase"
)

type ageService struct {
	ageRepo repository.AgeRepository
}

// NewAgeService creates a new age service instance
func NewAgeService(ageRepo repository.AgeRepository) usecase.AgeUsecase {
	return &ageService{
		ageRepo: ageRepo,
	}
}

// CreateAge upserts the record under its person name. Unlike address
// creation there is no conflict check; an existing record is overwritten.
func (s *ageService) CreateAge(ctx context.Context, age *entity.Age) (*entity.Age, error) {
	if err := s.ageRepo.Save(ctx, age); err != nil {
		return nil, errors.Wrap(err, "failed to save age record")
	}

	return age, nil
}

// ListAges returns all stored records.
func (s *ageService) ListAges(ctx context.Context) ([]*entity.Age, error) {
	return s.ageRepo.FindAll(ctx)
}

// GetAge retrieves a record by person name.
func (s *ageService) GetAge(ctx context.Context, personName string) (*entity.Age, error) {
	return s.ageRepo.FindByName(ctx, personName)
}

// ReplaceAge upserts the record under personName. The path/payload
// mismatch check runs before any existence check, so a mismatch on an
// absent key is still a bad request, and a matching replace on an absent
// key acts as a create.
func (s *ageService) ReplaceAge(ctx context.Context, personName string, age *entity.Age) (*entity.Age, error) {
	if personName != age.PersonName {
		return nil, domainerrors.ErrAgeNameMismatch
	}

	if err := s.ageRepo.Save(ctx, age); err != nil {
		return nil, errors.Wrap(err, "failed to save age record")
	}

	return age, nil
}

// DeleteAge removes the record under the person name.
func (s *ageService) DeleteAge(ctx context.Context, personName string) error {
	return s.ageRepo.Delete(ctx, personName)
}
