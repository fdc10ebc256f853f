// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// Address is a standalone postal address record.
// Its ID is chosen by the client at creation time and never changes.
type Address struct {
	ID         uuid.UUID `json:"id"`          // Client-chosen unique identifier.
	Street     string    `json:"street"`      // Street line, free-form.
	City       string    `json:"city"`        // City name.
	State      string    `json:"state"`       // State or region.
	PostalCode string    `json:"postal_code"` // Postal or ZIP code.
	Country    string    `json:"country"`     // Country name.
}
