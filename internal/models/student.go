package models

import "time"

// YearLevel values as the advising API reports them.
const (
	YearFirst  = "FIRST"
	YearSecond = "SECOND"
	YearThird  = "THIRD"
	YearFourth = "FOURTH"
)

// Student is an advisee record fetched from the advising API. The gateway
// treats it as an opaque payload apart from the fields its table screens
// search, filter and sort on.
type Student struct {
	ID             string    `json:"id"`
	StudentNumber  string    `json:"student_number"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	YearLevel      string    `json:"year_level"`
	CurriculumID   string    `json:"curriculum_id"`
	CurriculumName string    `json:"curriculum_name,omitempty"`
	CoachID        string    `json:"coach_id,omitempty"`
	CoachName      string    `json:"coach_name,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FullName is the derived display (and sort) key for a student.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
