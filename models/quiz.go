package models

import "time"

type Quiz struct {
	ID          int64          `json:"id"`
	CourseID    int64          `json:"course_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Difficulty  string         `json:"difficulty"`
	IsAdaptive  bool           `json:"is_adaptive"`
	CreatedAt   time.Time      `json:"created_at"`
	Questions   []QuizQuestion `json:"questions"`
}

// QuizQuestion is the student-facing view: the backend strips the correct
// answer and explanation before returning it.
type QuizQuestion struct {
	ID           int64    `json:"id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options,omitempty"`
	Points       int      `json:"points"`
	Difficulty   string   `json:"difficulty"`
}

type QuizQuestionCreate struct {
	QuestionText  string   `json:"question_text" validate:"required"`
	QuestionType  string   `json:"question_type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
	Explanation   string   `json:"explanation,omitempty"`
	Points        int      `json:"points"`
	Difficulty    string   `json:"difficulty"`
}

type QuizCreate struct {
	CourseID    int64                `json:"course_id" validate:"required"`
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description,omitempty"`
	Difficulty  string               `json:"difficulty"`
	IsAdaptive  bool                 `json:"is_adaptive"`
	Questions   []QuizQuestionCreate `json:"questions" validate:"required,min=1"`
}

type GenerateQuizRequest struct {
	CourseID     int64   `json:"course_id" validate:"required"`
	Topic        string  `json:"topic,omitempty"`
	Difficulty   string  `json:"difficulty"`
	NumQuestions int     `json:"num_questions"`
	MaterialIDs  []int64 `json:"material_ids"`
}

type QuizAnswer struct {
	QuestionID    int64  `json:"question_id"`
	StudentAnswer string `json:"student_answer"`
}

type QuizAttemptCreate struct {
	QuizID  int64        `json:"quiz_id" validate:"required"`
	Answers []QuizAnswer `json:"answers" validate:"required,min=1"`
}

type QuizAttempt struct {
	ID          int64      `json:"id"`
	QuizID      int64      `json:"quiz_id"`
	Score       float64    `json:"score"`
	MaxScore    float64    `json:"max_score"`
	Percentage  float64    `json:"percentage"`
	CompletedAt *time.Time `json:"completed_at"`
	TimeTaken   *int       `json:"time_taken"`
}
