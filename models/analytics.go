package models

import "time"

type UserAnalytics struct {
	ID                int64          `json:"id"`
	UserID            int64          `json:"user_id"`
	TotalQuizzesTaken int            `json:"total_quizzes_taken"`
	AverageScore      float64        `json:"average_score"`
	TotalTimeSpent    int            `json:"total_time_spent"`
	CoursesEnrolled   int            `json:"courses_enrolled"`
	LastActivity      time.Time      `json:"last_activity"`
	SkillMastery      map[string]any `json:"skill_mastery"`
	EngagementScore   float64        `json:"engagement_score"`
}

type CourseAnalytics struct {
	ID               int64     `json:"id"`
	CourseID         int64     `json:"course_id"`
	TotalEnrollments int       `json:"total_enrollments"`
	AverageProgress  float64   `json:"average_progress"`
	AverageQuizScore float64   `json:"average_quiz_score"`
	CompletionRate   float64   `json:"completion_rate"`
	AIInteractions   int       `json:"ai_interactions"`
	LastUpdated      time.Time `json:"last_updated"`
}

type SystemAnalytics struct {
	TotalUsers           int64          `json:"total_users"`
	TotalCourses         int64          `json:"total_courses"`
	TotalQuizzes         int64          `json:"total_quizzes"`
	AveragePlatformScore float64        `json:"average_platform_score"`
	UserGrowth           map[string]any `json:"user_growth"`
	CourseActivity       map[string]any `json:"course_activity"`
	ModerationStats      map[string]any `json:"moderation_stats"`
}
