package domain

import "time"

// UserProfile identifies the local lifter. A single row backs the
// identity collaborator; the orchestrator only ever reads UserID.
type UserProfile struct {
	ID          string
	UserID      string
	DisplayName string
	UpdatedAt   time.Time
}
