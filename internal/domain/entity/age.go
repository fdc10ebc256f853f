package entity

// Age records a person's birth date, keyed by the person's full name.
// The name doubles as the record identity, so create and replace both
// upsert under it.
type Age struct {
	PersonName string `json:"person_name"`
	BirthDate  string `json:"birth_date"`            // ISO-8601 calendar date (YYYY-MM-DD).
	CurrentAge *int   `json:"current_age,omitempty"` // Calculated age in years, optional.
}
