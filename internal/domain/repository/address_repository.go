// Package repository defines the persistence interfaces for the domain.
// The tables are independent; no implementation performs cross-table checks.
package repository

import (
	"context"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressRepository is the strict-create table: inserting an existing ID
// is a conflict, unlike the upsert tables (Age, Job).
type AddressRepository interface {
	// Insert stores a new address. Returns ErrAddressAlreadyExists when
	// the ID is already taken.
	Insert(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by ID. Returns ErrAddressNotFound
	// when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAll returns every stored address in insertion order.
	FindAll(ctx context.Context) ([]*entity.Address, error)

	// Save overwrites the stored record under its ID. Used after a merge;
	// the ID must already exist.
	Save(ctx context.Context, address *entity.Address) error
}
