// Package dto defines the request payloads the gateway validates before
// forwarding them to the advising API. Responses come back as the models
// the upstream returns; the gateway adds nothing to them.
package dto

// CreateStudentRequest defines the payload for registering an advisee.
type CreateStudentRequest struct {
	StudentNumber string `json:"student_number" validate:"required"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	YearLevel     string `json:"year_level" validate:"required,oneof=FIRST SECOND THIRD FOURTH"`
	CurriculumID  string `json:"curriculum_id" validate:"required"`
	CoachID       string `json:"coach_id,omitempty"`
}

// UpdateStudentRequest defines the mutable advisee fields.
type UpdateStudentRequest struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	YearLevel    *string `json:"year_level,omitempty" validate:"omitempty,oneof=FIRST SECOND THIRD FOURTH"`
	CurriculumID *string `json:"curriculum_id,omitempty"`
	CoachID      *string `json:"coach_id,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// CreateCoachRequest defines the payload for registering an adviser.
type CreateCoachRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Department  string `json:"department" validate:"required"`
	MaxAdvisees int    `json:"max_advisees" validate:"omitempty,min=1"`
}

// UpdateCoachRequest defines the mutable adviser fields.
type UpdateCoachRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Department  *string `json:"department,omitempty"`
	MaxAdvisees *int    `json:"max_advisees,omitempty" validate:"omitempty,min=1"`
	Active      *bool   `json:"active,omitempty"`
}

// CreateCurriculumRequest defines the payload for a program of study.
type CreateCurriculumRequest struct {
	Code          string  `json:"code" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Major         string  `json:"major" validate:"required"`
	EffectiveYear int     `json:"effective_year" validate:"required,min=2000"`
	TotalUnits    float64 `json:"total_units" validate:"omitempty,min=0"`
}

// UpdateCurriculumRequest defines the mutable curriculum fields.
type UpdateCurriculumRequest struct {
	Name       *string  `json:"name,omitempty"`
	Major      *string  `json:"major,omitempty"`
	TotalUnits *float64 `json:"total_units,omitempty" validate:"omitempty,min=0"`
	Active     *bool    `json:"active,omitempty"`
}

// CreateCourseRequest defines the payload for a curriculum course.
type CreateCourseRequest struct {
	Code         string  `json:"code" validate:"required"`
	Subject      string  `json:"subject" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description,omitempty"`
	Units        float64 `json:"units" validate:"required,min=0.5"`
	YearLevel    string  `json:"year_level" validate:"required,oneof=FIRST SECOND THIRD FOURTH"`
	Semester     string  `json:"semester" validate:"required"`
	CurriculumID string  `json:"curriculum_id" validate:"required"`
}

// UpdateCourseRequest defines the mutable course fields.
type UpdateCourseRequest struct {
	Subject     *string  `json:"subject,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Units       *float64 `json:"units,omitempty" validate:"omitempty,min=0.5"`
	YearLevel   *string  `json:"year_level,omitempty" validate:"omitempty,oneof=FIRST SECOND THIRD FOURTH"`
	Semester    *string  `json:"semester,omitempty"`
}

// CreateEnrollmentRequest defines the payload for enrolling a student.
type CreateEnrollmentRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	CourseID  string `json:"course_id" validate:"required"`
	TermID    string `json:"term_id" validate:"required"`
}

// UpdateEnrollmentRequest defines the mutable enrollment fields.
type UpdateEnrollmentRequest struct {
	Status *string  `json:"status,omitempty" validate:"omitempty,oneof=ENROLLED DROPPED COMPLETED"`
	Grade  *float64 `json:"grade,omitempty" validate:"omitempty,min=0,max=100"`
}

// CreateRemarkRequest defines the payload for recording a grade remark.
type CreateRemarkRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	CourseID  string  `json:"course_id" validate:"required"`
	TermID    string  `json:"term_id" validate:"required"`
	Score     float64 `json:"score" validate:"min=0,max=100"`
	Outcome   string  `json:"outcome" validate:"required,oneof=PASSED FAILED INCOMPLETE"`
	Note      string  `json:"note,omitempty"`
}

// UpdateRemarkRequest defines the mutable remark fields.
type UpdateRemarkRequest struct {
	Score   *float64 `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	Outcome *string  `json:"outcome,omitempty" validate:"omitempty,oneof=PASSED FAILED INCOMPLETE"`
	Note    *string  `json:"note,omitempty"`
}

// CreateAssignmentRequest defines the payload for assigning a coach.
type CreateAssignmentRequest struct {
	CoachID   string `json:"coach_id" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
	TermID    string `json:"term_id" validate:"required"`
	Note      string `json:"note,omitempty"`
}

// UpdateAssignmentRequest defines the mutable assignment fields.
type UpdateAssignmentRequest struct {
	CoachID *string `json:"coach_id,omitempty"`
	Note    *string `json:"note,omitempty"`
}
