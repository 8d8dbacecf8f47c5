package enums

const (
	AuthResource       = "auth"
	UserResource       = "user"
	CourseResource     = "course"
	QuizResource       = "quiz"
	RagResource        = "rag"
	AnalyticsResource  = "analytics"
	AssignmentResource = "assignment"
	ModerationResource = "moderation"
)
