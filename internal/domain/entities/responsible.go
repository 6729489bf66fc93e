package entities

import "time"

// Responsible is the operator accountable for a refueling event.
//
// Lifecycle:
//   - created through the registration form, listed newest first
//   - never edited in place, only deleted
//   - deleting does not cascade: fuel records keep the dangling ResponsibleID

type Responsible struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
