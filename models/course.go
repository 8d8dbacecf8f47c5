package models

import "time"

type Course struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	TeacherID   *int64           `json:"teacher_id"`
	TeacherName string           `json:"teacher_name,omitempty"`
	Semester    *int             `json:"semester,omitempty"`
	DegreeTypes string           `json:"degree_types,omitempty"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	Materials   []CourseMaterial `json:"materials"`
}

type CourseMaterial struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	FileType   string    `json:"file_type"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type CourseCreate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	TeacherID   *int64 `json:"teacher_id,omitempty"`
	Semester    *int   `json:"semester,omitempty" validate:"omitempty,min=1,max=8"`
	DegreeTypes string `json:"degree_types,omitempty"`
}

type CourseUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	TeacherID   *int64  `json:"teacher_id,omitempty"`
	Semester    *int    `json:"semester,omitempty"`
	DegreeTypes *string `json:"degree_types,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type EnrollmentCreate struct {
	StudentID int64 `json:"student_id" validate:"required"`
	CourseID  int64 `json:"course_id" validate:"required"`
}

type Enrollment struct {
	ID         int64     `json:"id"`
	CourseID   int64     `json:"course_id"`
	StudentID  int64     `json:"student_id"`
	FullName   string    `json:"full_name,omitempty"`
	Email      string    `json:"email,omitempty"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Progress   int       `json:"progress"`
}
