package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

// CoursesService covers /courses, including material uploads and the
// enrollment endpoints.
type CoursesService struct {
	c *Client
}

func (s *CoursesService) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.c.send(ctx, enums.CourseResource, "List", http.MethodGet, "/courses/", nil, &courses)
	return courses, err
}

func (s *CoursesService) Get(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	err := s.c.send(ctx, enums.CourseResource, "Get", http.MethodGet,
		fmt.Sprintf("/courses/%d", id), nil, &course)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CoursesService) Create(ctx context.Context, req models.CourseCreate) (*models.Course, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var course models.Course
	err := s.c.send(ctx, enums.CourseResource, "Create", http.MethodPost, "/courses/",
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &course)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CoursesService) Update(ctx context.Context, id int64, req models.CourseUpdate) (*models.Course, error) {
	var course models.Course
	err := s.c.send(ctx, enums.CourseResource, "Update", http.MethodPatch,
		fmt.Sprintf("/courses/%d", id),
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &course)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CoursesService) Delete(ctx context.Context, id int64) error {
	return s.c.send(ctx, enums.CourseResource, "Delete", http.MethodDelete,
		fmt.Sprintf("/courses/%d", id), nil, nil)
}

// UploadMaterial attaches a course material as multipart form data. The
// transport computes the multipart boundary itself.
func (s *CoursesService) UploadMaterial(ctx context.Context, courseID int64, title, filename string, content []byte) (*models.CourseMaterial, error) {
	var material models.CourseMaterial
	err := s.c.send(ctx, enums.CourseResource, "UploadMaterial", http.MethodPost,
		fmt.Sprintf("/courses/%d/materials", courseID),
		func(r *resty.Request) *resty.Request {
			return r.
				SetMultipartFormData(map[string]string{"title": title}).
				SetFileReader("file", filename, bytes.NewReader(content))
		}, &material)
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (s *CoursesService) Enroll(ctx context.Context, req models.EnrollmentCreate) (*models.Enrollment, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var enrollment models.Enrollment
	err := s.c.send(ctx, enums.CourseResource, "Enroll", http.MethodPost, "/courses/enroll",
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &enrollment)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *CoursesService) Students(ctx context.Context, courseID int64) ([]models.Enrollment, error) {
	var students []models.Enrollment
	err := s.c.send(ctx, enums.CourseResource, "Students", http.MethodGet,
		fmt.Sprintf("/courses/%d/students", courseID), nil, &students)
	return students, err
}

// AvailableForEnrollment lists courses an admin can enroll students into.
func (s *CoursesService) AvailableForEnrollment(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.c.send(ctx, enums.CourseResource, "AvailableForEnrollment", http.MethodGet,
		"/courses/available/for-enrollment", nil, &courses)
	return courses, err
}

// AvailableForStudent lists courses matching the student's semester and
// degree type that they are not yet enrolled in.
func (s *CoursesService) AvailableForStudent(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.c.send(ctx, enums.CourseResource, "AvailableForStudent", http.MethodGet,
		"/courses/available/for-student", nil, &courses)
	return courses, err
}
