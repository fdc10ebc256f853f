package memory

import (
	"context"
	"sync"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"

	"github.com/google/uuid"
)

// personRepository implements the repository.PersonRepository interface.
type personRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]entity.Person
	order   []uuid.UUID
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository() repository.PersonRepository {
	return &personRepository{
		records: make(map[uuid.UUID]entity.Person),
	}
}

// Save stores or overwrites a person under its ID.
func (repo *personRepository) Save(_ context.Context, person *entity.Person) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.records[person.ID]; !exists {
		repo.order = append(repo.order, person.ID)
	}
	repo.records[person.ID] = clonePerson(person)

	return nil
}

// FindByID retrieves a person by ID.
func (repo *personRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Person, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	record, exists := repo.records[id]
	if !exists {
		return nil, domainerrors.ErrPersonNotFound
	}

	person := clonePerson(&record)

	return &person, nil
}

// FindAll returns every stored person in insertion order.
func (repo *personRepository) FindAll(_ context.Context) ([]*entity.Person, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	persons := make([]*entity.Person, 0, len(repo.order))
	for _, id := range repo.order {
		record := repo.records[id]
		person := clonePerson(&record)
		persons = append(persons, &person)
	}

	return persons, nil
}

// clonePerson copies a person including its embedded address slice, so
// stored records never share slice backing with caller-held values.
func clonePerson(person *entity.Person) entity.Person {
	clone := *person
	if person.Addresses != nil {
		clone.Addresses = make([]entity.Address, len(person.Addresses))
		copy(clone.Addresses, person.Addresses)
	}

	return clone
}
