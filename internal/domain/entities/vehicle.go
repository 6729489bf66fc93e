package entities

import "time"

// Vehicle is a refueled vehicle. Model is free text and not unique; the
// dashboard filters records by it.

type Vehicle struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// Label renders the vehicle as "PLATE - Model".
func (v Vehicle) Label() string {
	return v.Plate + " - " + v.Model
}
