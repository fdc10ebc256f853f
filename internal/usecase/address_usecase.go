// Package usecase defines the application use case interfaces together
// with their filter and patch input types.
package usecase

import (
	"context"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressFilter holds optional equality filters for listing addresses.
// Nil fields are ignored; set fields combine with logical AND.
type AddressFilter struct {
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// AddressPatch is the sparse update payload for an address. A nil field
// means "not provided, keep the stored value".
type AddressPatch struct {
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// AddressUsecase defines the interface for address management use cases
type AddressUsecase interface {
	// CreateAddress stores a new address under its client-chosen ID.
	// Fails with ErrAddressAlreadyExists when the ID is taken.
	CreateAddress(ctx context.Context, address *entity.Address) (*entity.Address, error)

	// ListAddresses returns all addresses matching every set filter field.
	ListAddresses(ctx context.Context, filter AddressFilter) ([]*entity.Address, error)

	// GetAddress retrieves an address by ID.
	GetAddress(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// UpdateAddress merges the patch into the stored record and returns
	// the merged result.
	UpdateAddress(ctx context.Context, id uuid.UUID, patch AddressPatch) (*entity.Address, error)
}
