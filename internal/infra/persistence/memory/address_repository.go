// Package memory contains the in-memory implementation of the persistence
// layer. Each repository guards its table with a sync.RWMutex so that
// create/list/get/update/delete stay atomic with respect to each other
// under concurrent request dispatch, and keeps an insertion-order slice so
// listings are stable within a snapshot. Records vanish on process restart.
package memory

import (
	"context"
	"sync"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"

	"github.com/google/uuid"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]entity.Address
	order   []uuid.UUID
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository() repository.AddressRepository {
	return &addressRepository{
		records: make(map[uuid.UUID]entity.Address),
	}
}

// Insert stores a new address, rejecting duplicate IDs.
func (repo *addressRepository) Insert(_ context.Context, address *entity.Address) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.records[address.ID]; exists {
		return domainerrors.ErrAddressAlreadyExists
	}

	repo.records[address.ID] = *address
	repo.order = append(repo.order, address.ID)

	return nil
}

// FindByID retrieves an address by ID.
func (repo *addressRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Address, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	record, exists := repo.records[id]
	if !exists {
		return nil, domainerrors.ErrAddressNotFound
	}

	return &record, nil
}

// FindAll returns every stored address in insertion order.
func (repo *addressRepository) FindAll(_ context.Context) ([]*entity.Address, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	addresses := make([]*entity.Address, 0, len(repo.order))
	for _, id := range repo.order {
		record := repo.records[id]
		addresses = append(addresses, &record)
	}

	return addresses, nil
}

// Save overwrites the stored record under its ID.
func (repo *addressRepository) Save(_ context.Context, address *entity.Address) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.records[address.ID]; !exists {
		return domainerrors.ErrAddressNotFound
	}

	repo.records[address.ID] = *address

	return nil
}
