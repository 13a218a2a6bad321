package models

import "time"

// Availability is a date range during which the pilot is either available or
// unavailable for assignment. Entries are created only; there is no edit or
// delete path.
type Availability struct {
	ID          string
	PilotID     string
	StartDate   time.Time
	EndDate     time.Time
	IsAvailable bool
}
