package models

import "time"

// Remark outcomes as the advising API reports them.
const (
	RemarkPassed     = "PASSED"
	RemarkFailed     = "FAILED"
	RemarkIncomplete = "INCOMPLETE"
)

// Remark is a grade remark recorded against a student's course attempt.
type Remark struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	CourseID    string    `json:"course_id"`
	CourseCode  string    `json:"course_code"`
	TermID      string    `json:"term_id"`
	Score       float64   `json:"score"`
	Outcome     string    `json:"outcome"`
	Note        string    `json:"note,omitempty"`
	RecordedBy  string    `json:"recorded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
