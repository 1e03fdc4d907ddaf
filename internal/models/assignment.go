package models

import "time"

// Assignment links a coach to an advisee for a term.
type Assignment struct {
	ID          string    `json:"id"`
	CoachID     string    `json:"coach_id"`
	CoachName   string    `json:"coach_name"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	TermID      string    `json:"term_id"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
