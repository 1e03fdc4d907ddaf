package models

import "time"

// Course is a curriculum course fetched from the advising API.
type Course struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Subject      string    `json:"subject"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Units        float64   `json:"units"`
	YearLevel    string    `json:"year_level"`
	Semester     string    `json:"semester"`
	CurriculumID string    `json:"curriculum_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
