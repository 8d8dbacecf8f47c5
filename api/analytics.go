package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

// AnalyticsService covers /analytics. The update endpoints trigger a
// recomputation on the backend; reads return the latest aggregate.
type AnalyticsService struct {
	c *Client
}

func (s *AnalyticsService) User(ctx context.Context, userID int64) (*models.UserAnalytics, error) {
	var analytics models.UserAnalytics
	err := s.c.send(ctx, enums.AnalyticsResource, "User", http.MethodGet,
		fmt.Sprintf("/analytics/user/%d", userID), nil, &analytics)
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (s *AnalyticsService) Course(ctx context.Context, courseID int64) (*models.CourseAnalytics, error) {
	var analytics models.CourseAnalytics
	err := s.c.send(ctx, enums.AnalyticsResource, "Course", http.MethodGet,
		fmt.Sprintf("/analytics/course/%d", courseID), nil, &analytics)
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (s *AnalyticsService) System(ctx context.Context) (*models.SystemAnalytics, error) {
	var analytics models.SystemAnalytics
	err := s.c.send(ctx, enums.AnalyticsResource, "System", http.MethodGet, "/analytics/system", nil, &analytics)
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (s *AnalyticsService) UpdateUser(ctx context.Context, userID int64) error {
	return s.c.send(ctx, enums.AnalyticsResource, "UpdateUser", http.MethodPost,
		fmt.Sprintf("/analytics/update/user/%d", userID), nil, nil)
}

func (s *AnalyticsService) UpdateCourse(ctx context.Context, courseID int64) error {
	return s.c.send(ctx, enums.AnalyticsResource, "UpdateCourse", http.MethodPost,
		fmt.Sprintf("/analytics/update/course/%d", courseID), nil, nil)
}
