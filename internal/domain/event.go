package domain

import "time"

const (
	EventListingCreated = "created"
	EventListingUpdated = "updated"
)

// Event notifies open views that the listing collection changed.
type Event struct {
	Type string    `json:"type"`
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
}
