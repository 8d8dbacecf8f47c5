package models

import "time"

type Assignment struct {
	ID                  int64      `json:"id"`
	CourseID            int64      `json:"course_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	AssignmentType      string     `json:"assignment_type"`
	MaxScore            float64    `json:"max_score"`
	DueDate             *time.Time `json:"due_date"`
	CreatedAt           time.Time  `json:"created_at"`
	IsActive            bool       `json:"is_active"`
	AllowLateSubmission bool       `json:"allow_late_submission"`
	AttachmentPath      string     `json:"attachment_path,omitempty"`
	SubmissionCount     int        `json:"submission_count"`
}

type AssignmentCreate struct {
	CourseID            int64      `json:"course_id" validate:"required"`
	Title               string     `json:"title" validate:"required"`
	Description         string     `json:"description,omitempty"`
	AssignmentType      string     `json:"assignment_type"`
	MaxScore            float64    `json:"max_score"`
	DueDate             *time.Time `json:"due_date,omitempty"`
	AllowLateSubmission bool       `json:"allow_late_submission"`
}

type Submission struct {
	ID             int64      `json:"id"`
	AssignmentID   int64      `json:"assignment_id"`
	StudentID      int64      `json:"student_id"`
	StudentName    string     `json:"student_name,omitempty"`
	SubmissionText string     `json:"submission_text,omitempty"`
	FilePath       string     `json:"file_path,omitempty"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	Score          *float64   `json:"score"`
	Feedback       string     `json:"feedback,omitempty"`
	GradedAt       *time.Time `json:"graded_at"`
	IsLate         bool       `json:"is_late"`
}

type SubmissionGrade struct {
	Score    *float64 `json:"score,omitempty"`
	Feedback string   `json:"feedback,omitempty"`
}
