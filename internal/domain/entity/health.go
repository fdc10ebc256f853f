package entity

// Health is the status record returned by the health-check endpoint.
// Echo and PathEcho pass the caller's inputs through unchanged and are
// null when absent.
type Health struct {
	Status        int     `json:"status"`
	StatusMessage string  `json:"status_message"`
	Timestamp     string  `json:"timestamp"` // UTC, ISO-8601 with trailing "Z".
	IPAddress     string  `json:"ip_address"`
	Echo          *string `json:"echo"`
	PathEcho      *string `json:"path_echo"`
}
