package entity

import (
	"github.com/google/uuid"
)

// Person is a directory entry. Its ID is always assigned server-side at
// creation time; any identifier in the create payload is ignored.
//
// Addresses are embedded value copies, not references into the address
// table. Editing a stored Address never changes a Person's copies.
type Person struct {
	ID        uuid.UUID `json:"id"`
	Uni       string    `json:"uni"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate string    `json:"birth_date"` // ISO-8601 calendar date (YYYY-MM-DD).
	Addresses []Address `json:"addresses"`
}
