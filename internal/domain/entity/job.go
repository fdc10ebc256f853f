package entity

import (
	"github.com/google/uuid"
)

// Job is an employment record. It is stored under the string form of its
// ID; when the client omits the ID a fresh one is generated at creation.
type Job struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	StartDate string    `json:"start_date"`         // ISO-8601 calendar date (YYYY-MM-DD).
	EndDate   *string   `json:"end_date,omitempty"` // Unset while the job is ongoing.
	IsCurrent bool      `json:"is_current"`
}
