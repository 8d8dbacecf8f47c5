package models

import (
	"time"

	"github.com/learnly/learnly-go/enums"
)

type User struct {
	ID              int64      `json:"id"`
	Email           string     `json:"email"`
	FullName        string     `json:"full_name"`
	Role            enums.Role `json:"role"`
	Avatar          string     `json:"avatar,omitempty"`
	Semester        *int       `json:"semester,omitempty"`
	DegreeType      string     `json:"degree_type,omitempty"`
	CompetencyScore *int       `json:"competency_score,omitempty"`
	IsActive        bool       `json:"is_active"`
	IsVerified      bool       `json:"is_verified"`
	CreatedAt       time.Time  `json:"created_at"`
}

// UserPatch carries a partial user update. Nil fields are left untouched
// when merged into an existing user.
type UserPatch struct {
	Email           *string     `json:"email,omitempty"`
	FullName        *string     `json:"full_name,omitempty"`
	Role            *enums.Role `json:"role,omitempty"`
	Avatar          *string     `json:"avatar,omitempty"`
	Semester        *int        `json:"semester,omitempty"`
	DegreeType      *string     `json:"degree_type,omitempty"`
	CompetencyScore *int        `json:"competency_score,omitempty"`
	IsActive        *bool       `json:"is_active,omitempty"`
	IsVerified      *bool       `json:"is_verified,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest mirrors the backend's signup contract, including the
// password policy enforced before the request leaves the client.
type SignupRequest struct {
	Email      string     `json:"email" validate:"required,email"`
	Password   string     `json:"password" validate:"required,password"`
	FullName   string     `json:"full_name" validate:"required"`
	Role       enums.Role `json:"role" validate:"required,role"`
	Semester   *int       `json:"semester,omitempty" validate:"omitempty,min=1,max=8"`
	DegreeType string     `json:"degree_type,omitempty"`
}

type UserStats struct {
	TotalUsers  int64 `json:"total_users"`
	Admins      int64 `json:"admins"`
	Teachers    int64 `json:"teachers"`
	Students    int64 `json:"students"`
	ActiveUsers int64 `json:"active_users"`
}
