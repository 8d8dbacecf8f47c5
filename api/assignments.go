package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

// AssignmentsService covers /assignments: teacher-side creation and
// grading, student-side submission.
type AssignmentsService struct {
	c *Client
}

func (s *AssignmentsService) Create(ctx context.Context, req models.AssignmentCreate) (*models.Assignment, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var assignment models.Assignment
	err := s.c.send(ctx, enums.AssignmentResource, "Create", http.MethodPost, "/assignments/",
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &assignment)
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *AssignmentsService) ByCourse(ctx context.Context, courseID int64) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.c.send(ctx, enums.AssignmentResource, "ByCourse", http.MethodGet,
		fmt.Sprintf("/assignments/course/%d", courseID), nil, &assignments)
	return assignments, err
}

// UploadAttachment adds a reference file to an assignment, multipart.
func (s *AssignmentsService) UploadAttachment(ctx context.Context, assignmentID int64, filename string, content []byte) error {
	return s.c.send(ctx, enums.AssignmentResource, "UploadAttachment", http.MethodPost,
		fmt.Sprintf("/assignments/%d/upload-attachment", assignmentID),
		func(r *resty.Request) *resty.Request {
			return r.SetFileReader("file", filename, bytes.NewReader(content))
		}, nil)
}

// Submit hands in a submission: text, an optional file, or both, as one
// multipart form.
func (s *AssignmentsService) Submit(ctx context.Context, assignmentID int64, text, filename string, content []byte) (*models.Submission, error) {
	var submission models.Submission
	err := s.c.send(ctx, enums.AssignmentResource, "Submit", http.MethodPost, "/assignments/submit",
		func(r *resty.Request) *resty.Request {
			fields := map[string]string{
				"assignment_id": strconv.FormatInt(assignmentID, 10),
			}
			if text != "" {
				fields["submission_text"] = text
			}
			r.SetMultipartFormData(fields)
			if filename != "" {
				r.SetFileReader("file", filename, bytes.NewReader(content))
			}
			return r
		}, &submission)
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (s *AssignmentsService) Submissions(ctx context.Context, assignmentID int64) ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.c.send(ctx, enums.AssignmentResource, "Submissions", http.MethodGet,
		fmt.Sprintf("/assignments/%d/submissions", assignmentID), nil, &submissions)
	return submissions, err
}

func (s *AssignmentsService) Grade(ctx context.Context, submissionID int64, grade models.SubmissionGrade) (*models.Submission, error) {
	var submission models.Submission
	err := s.c.send(ctx, enums.AssignmentResource, "Grade", http.MethodPatch,
		fmt.Sprintf("/assignments/submission/%d/grade", submissionID),
		func(r *resty.Request) *resty.Request { return r.SetBody(grade) }, &submission)
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (s *AssignmentsService) MySubmissions(ctx context.Context) ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.c.send(ctx, enums.AssignmentResource, "MySubmissions", http.MethodGet,
		"/assignments/my-submissions", nil, &submissions)
	return submissions, err
}
