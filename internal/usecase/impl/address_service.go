// Package impl contains the concrete use case implementations.
package impl

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
)

type addressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService creates a new address service instance
func NewAddressService(addressRepo repository.AddressRepository) usecase.AddressUsecase {
	return &addressService{
		addressRepo: addressRepo,
	}
}

// CreateAddress stores a new address under its client-chosen ID.
func (s *addressService) CreateAddress(ctx context.Context, address *entity.Address) (*entity.Address, error) {
	if err := s.addressRepo.Insert(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

// ListAddresses returns all addresses matching every set filter field.
func (s *addressService) ListAddresses(ctx context.Context, filter usecase.AddressFilter) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	results := make([]*entity.Address, 0, len(addresses))
	for _, address := range addresses {
		if matchesAddressFilter(address, filter) {
			results = append(results, address)
		}
	}

	return results, nil
}

// GetAddress retrieves an address by ID.
func (s *addressService) GetAddress(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	return s.addressRepo.FindByID(ctx, id)
}

// UpdateAddress merges the patch into the stored record. Only fields
// present on the patch overwrite; nil fields keep the stored value.
func (s *addressService) UpdateAddress(ctx context.Context, id uuid.UUID, patch usecase.AddressPatch) (*entity.Address, error) {
	stored, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Street != nil {
		stored.Street = *patch.Street
	}
	if patch.City != nil {
		stored.City = *patch.City
	}
	if patch.State != nil {
		stored.State = *patch.State
	}
	if patch.PostalCode != nil {
		stored.PostalCode = *patch.PostalCode
	}
	if patch.Country != nil {
		stored.Country = *patch.Country
	}

	if err := s.addressRepo.Save(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to save merged address")
	}

	return stored, nil
}

// matchesAddressFilter applies the conjunctive equality filters.
func matchesAddressFilter(address *entity.Address, filter usecase.AddressFilter) bool {
	if filter.Street != nil && address.Street != *filter.Street {
		return false
	}
	if filter.City != nil && address.City != *filter.City {
		return false
	}
	if filter.State != nil && address.State != *filter.State {
		return false
	}
	if filter.PostalCode != nil && address.PostalCode != *filter.PostalCode {
		return false
	}
	if filter.Country != nil && address.Country != *filter.Country {
		return false
	}

	return true
}
