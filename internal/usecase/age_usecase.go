package usecase

import (
	"context"

	"directory/internal/domain/entity"
)

// AgeUsecase defines the interface for age record management use cases
type AgeUsecase interface {
	// CreateAge upserts the record under its person name. Existing
	// records are overwritten silently.
	CreateAge(ctx context.Context, age *entity.Age) (*entity.Age, error)

	// ListAges returns all stored records.
	ListAges(ctx context.Context) ([]*entity.Age, error)

	// GetAge retrieves a record by person name.
	GetAge(ctx context.Context, personName string) (*entity.Age, error)

	// ReplaceAge upserts the record under personName. Fails with
	// ErrAgeNameMismatch when personName differs from the payload's
	// person name; the mismatch check runs before any existence check.
	ReplaceAge(ctx context.Context, personName string, age *entity.Age) (*entity.Age, error)

	// DeleteAge removes the record under the person name.
	DeleteAge(ctx context.Context, personName string) error
}
