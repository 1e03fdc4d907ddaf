package models

import "time"

// Enrollment statuses as the advising API reports them.
const (
	EnrollmentEnrolled  = "ENROLLED"
	EnrollmentDropped   = "DROPPED"
	EnrollmentCompleted = "COMPLETED"
)

// Enrollment ties a student to a course for a term. Course arrives embedded
// so screens can sort on nested keys like the course subject.
type Enrollment struct {
	ID            string     `json:"id"`
	StudentID     string     `json:"student_id"`
	StudentNumber string     `json:"student_number"`
	StudentName   string     `json:"student_name"`
	TermID        string     `json:"term_id"`
	TermName      string     `json:"term_name,omitempty"`
	Status        string     `json:"status"`
	Grade         *float64   `json:"grade,omitempty"`
	Course        Course     `json:"course"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// GradeValue returns the numeric grade, zero when not yet graded, so
// ungraded rows order before graded ones ascending.
func (e Enrollment) GradeValue() float64 {
	if e.Grade == nil {
		return 0
	}
	return *e.Grade
}
