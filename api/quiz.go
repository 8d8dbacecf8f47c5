package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

// QuizService covers /quiz. Generation and creation are teacher surfaces,
// attempts are student surfaces; the backend enforces both.
type QuizService struct {
	c *Client
}

// Generate asks the backend to draft questions from course materials.
// The draft is not persisted until Create is called with it.
func (s *QuizService) Generate(ctx context.Context, req models.GenerateQuizRequest) (*models.QuizCreate, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var draft models.QuizCreate
	err := s.c.send(ctx, enums.QuizResource, "Generate", http.MethodPost, "/quiz/generate",
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &draft)
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *QuizService) Create(ctx context.Context, req models.QuizCreate) (*models.Quiz, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var quiz models.Quiz
	err := s.c.send(ctx, enums.QuizResource, "Create", http.MethodPost, "/quiz/",
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &quiz)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) ByCourse(ctx context.Context, courseID int64) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.c.send(ctx, enums.QuizResource, "ByCourse", http.MethodGet,
		fmt.Sprintf("/quiz/course/%d", courseID), nil, &quizzes)
	return quizzes, err
}

func (s *QuizService) Get(ctx context.Context, id int64) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.c.send(ctx, enums.QuizResource, "Get", http.MethodGet,
		fmt.Sprintf("/quiz/%d", id), nil, &quiz)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// SubmitAttempt grades on the backend and returns the scored attempt.
func (s *QuizService) SubmitAttempt(ctx context.Context, req models.QuizAttemptCreate) (*models.QuizAttempt, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var attempt models.QuizAttempt
	err := s.c.send(ctx, enums.QuizResource, "SubmitAttempt", http.MethodPost, "/quiz/attempt",
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &attempt)
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (s *QuizService) MyAttempts(ctx context.Context) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	err := s.c.send(ctx, enums.QuizResource, "MyAttempts", http.MethodGet, "/quiz/attempts/my", nil, &attempts)
	return attempts, err
}

func (s *QuizService) StudentAttempts(ctx context.Context, studentID int64) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	err := s.c.send(ctx, enums.QuizResource, "StudentAttempts", http.MethodGet,
		fmt.Sprintf("/quiz/attempts/student/%d", studentID), nil, &attempts)
	return attempts, err
}
