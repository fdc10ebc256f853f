package repository

import (
	"context"

	"directory/internal/domain/entity"
)

// AgeRepository stores age records keyed by person name. Writes are
// upserts; only Get and Delete distinguish absent keys.
type AgeRepository interface {
	// Save stores or overwrites the record under its person name.
	Save(ctx context.Context, age *entity.Age) error

	// FindByName retrieves a record by person name. Returns
	// ErrAgeNotFound when absent.
	FindByName(ctx context.Context, personName string) (*entity.Age, error)

	// FindAll returns every stored record in insertion order.
	FindAll(ctx context.Context) ([]*entity.Age, error)

	// Delete removes the record under the person name. Returns
	// ErrAgeNotFound when absent.
	Delete(ctx context.Context, personName string) error
}
