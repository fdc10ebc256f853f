package repository

import (
	"context"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// PersonRepository stores persons keyed by their server-generated ID.
type PersonRepository interface {
	// Save stores or overwrites a person under its ID. IDs are generated
	// by the usecase layer, so collisions cannot occur on create.
	Save(ctx context.Context, person *entity.Person) error

	// FindByID retrieves a person by ID. Returns ErrPersonNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error)

	// FindAll returns every stored person in insertion order.
	FindAll(ctx context.Context) ([]*entity.Person, error)
}
