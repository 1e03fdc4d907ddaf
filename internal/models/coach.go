package models

import "time"

// Coach is a curriculum adviser fetched from the advising API.
type Coach struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	MaxAdvisees int       `json:"max_advisees"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FullName is the derived display (and sort) key for a coach.
func (c Coach) FullName() string {
	return c.FirstName + " " + c.LastName
}
