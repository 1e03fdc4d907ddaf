package models

import "time"

// Curriculum is a program of study fetched from the advising API.
type Curriculum struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Major         string    `json:"major"`
	EffectiveYear int       `json:"effective_year"`
	TotalUnits    float64   `json:"total_units"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
