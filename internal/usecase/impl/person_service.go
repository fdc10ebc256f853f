package impl

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
)

type personService struct {
	personRepo repository.PersonRepository
}

// NewPersonService creates a new person service instance
func NewPersonService(personRepo repository.PersonRepository) usecase.PersonUsecase {
	return &personService{
		personRepo: personRepo,
	}
}

// CreatePerson stores a new person under a freshly generated ID. The
// server controls identity here: whatever ID came in on the payload is
// overwritten before the record is stored.
func (s *personService) CreatePerson(ctx context.Context, person *entity.Person) (*entity.Person, error) {
	person.ID = uuid.New()

	if err := s.personRepo.Save(ctx, person); err != nil {
		return nil, errors.Wrap(err, "failed to save person")
	}

	return person, nil
}

// ListPersons returns all persons matching every set filter field.
func (s *personService) ListPersons(ctx context.Context, filter usecase.PersonFilter) ([]*entity.Person, error) {
	persons, err := s.personRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list persons")
	}

	results := make([]*entity.Person, 0, len(persons))
	for _, person := range persons {
		if matchesPersonFilter(person, filter) {
			results = append(results, person)
		}
	}

	return results, nil
}

// GetPerson retrieves a person by ID.
func (s *personService) GetPerson(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	return s.personRepo.FindByID(ctx, id)
}

// UpdatePerson merges the patch into the stored record. Only fields
// present on the patch overwrite; nil fields keep the stored value.
func (s *personService) UpdatePerson(ctx context.Context, id uuid.UUID, patch usecase.PersonPatch) (*entity.Person, error) {
	stored, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Uni != nil {
		stored.Uni = *patch.Uni
	}
	if patch.FirstName != nil {
		stored.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		stored.LastName = *patch.LastName
	}
	if patch.Email != nil {
		stored.Email = *patch.Email
	}
	if patch.Phone != nil {
		stored.Phone = *patch.Phone
	}
	if patch.BirthDate != nil {
		stored.BirthDate = *patch.BirthDate
	}
	if patch.Addresses != nil {
		stored.Addresses = *patch.Addresses
	}

	if err := s.personRepo.Save(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to save merged person")
	}

	return stored, nil
}

// matchesPersonFilter applies the conjunctive equality filters. City and
// Country match when any embedded address carries the value.
func matchesPersonFilter(person *entity.Person, filter usecase.PersonFilter) bool {
	if filter.Uni != nil && person.Uni != *filter.Uni {
		return false
	}
	if filter.FirstName != nil && person.FirstName != *filter.FirstName {
		return false
	}
	if filter.LastName != nil && person.LastName != *filter.LastName {
		return false
	}
	if filter.Email != nil && person.Email != *filter.Email {
		return false
	}
	if filter.Phone != nil && person.Phone != *filter.Phone {
		return false
	}
	if filter.BirthDate != nil && person.BirthDate != *filter.BirthDate {
		return false
	}
	if filter.City != nil && !anyAddress(person.Addresses, func(a entity.Address) bool {
		return a.City == *filter.City
	}) {
		return false
	}
	if filter.Country != nil && !anyAddress(person.Addresses, func(a entity.Address) bool {
		return a.Country == *filter.Country
	}) {
		return false
	}

	return true
}

func anyAddress(addresses []entity.Address, match func(entity.Address) bool) bool {
	for _, address := range addresses {
		if match(address) {
			return true
		}
	}

	return false
}
