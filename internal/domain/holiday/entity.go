package holiday

import "time"

// Holiday is read-only reference data for a period.
type Holiday struct {
	ID   string
	Date time.Time
	Name string
	Type string // e.g. "official"
}
