package usecase

import (
	"context"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// PersonFilter holds optional equality filters for listing persons.
// City and Country match when ANY embedded address has that value; all
// set fields combine with logical AND.
type PersonFilter struct {
	Uni       *string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *string
	City      *string
	Country   *string
}

// PersonPatch is the sparse update payload for a person. A nil field
// means "not provided, keep the stored value". Addresses, when set,
// replaces the whole embedded list.
type PersonPatch struct {
	Uni       *string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *string
	Addresses *[]entity.Address
}

// PersonUsecase defines the interface for person management use cases
type PersonUsecase interface {
	// CreatePerson stores a new person under a freshly generated ID.
	// Any ID already on the payload is discarded.
	CreatePerson(ctx context.Context, person *entity.Person) (*entity.Person, error)

	// ListPersons returns all persons matching every set filter field.
	ListPersons(ctx context.Context, filter PersonFilter) ([]*entity.Person, error)

	// GetPerson retrieves a person by ID.
	GetPerson(ctx context.Context, id uuid.UUID) (*entity.Person, error)

	// UpdatePerson merges the patch into the stored record and returns
	// the merged result.
	UpdatePerson(ctx context.Context, id uuid.UUID, patch PersonPatch) (*entity.Person, error)
}
