package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

// RagService covers /rag, the AI course assistant.
type RagService struct {
	c *Client
}

// Query asks a question against the course materials. The conversation
// history rides along so follow-up questions stay in context.
func (s *RagService) Query(ctx context.Context, req models.RagQueryRequest) (*models.RagQueryResponse, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var resp models.RagQueryResponse
	err := s.c.send(ctx, enums.RagResource, "Query", http.MethodPost, "/rag/query",
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *RagService) Health(ctx context.Context) (*models.RagHealth, error) {
	var health models.RagHealth
	err := s.c.send(ctx, enums.RagResource, "Health", http.MethodGet, "/rag/health", nil, &health)
	if err != nil {
		return nil, err
	}
	return &health, nil
}
