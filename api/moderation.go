package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

// ModerationService covers /moderation, the admin panel for AI content
// moderation thresholds and audit logs.
type ModerationService struct {
	c *Client
}

func (s *ModerationService) Settings(ctx context.Context) ([]models.ModerationSettings, error) {
	var settings []models.ModerationSettings
	err := s.c.send(ctx, enums.ModerationResource, "Settings", http.MethodGet, "/moderation/settings", nil, &settings)
	return settings, err
}

func (s *ModerationService) CreateSettings(ctx context.Context, req models.ModerationSettingsCreate) (*models.ModerationSettings, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var settings models.ModerationSettings
	err := s.c.send(ctx, enums.ModerationResource, "CreateSettings", http.MethodPost, "/moderation/settings",
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *ModerationService) UpdateSettings(ctx context.Context, category string, req models.ModerationSettingsUpdate) (*models.ModerationSettings, error) {
	var settings models.ModerationSettings
	err := s.c.send(ctx, enums.ModerationResource, "UpdateSettings", http.MethodPatch,
		"/moderation/settings/"+category,
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

type ListLogsParams struct {
	Skip    int
	Limit   int
	Flagged *bool
}

func (s *ModerationService) Logs(ctx context.Context, params ListLogsParams) ([]models.ModerationLog, error) {
	var logs []models.ModerationLog
	err := s.c.send(ctx, enums.ModerationResource, "Logs", http.MethodGet, "/moderation/logs",
		func(r *resty.Request) *resty.Request {
			if params.Skip > 0 {
				r.SetQueryParam("skip", strconv.Itoa(params.Skip))
			}
			if params.Limit > 0 {
				r.SetQueryParam("limit", strconv.Itoa(params.Limit))
			}
			if params.Flagged != nil {
				r.SetQueryParam("flagged", strconv.FormatBool(*params.Flagged))
			}
			return r
		}, &logs)
	return logs, err
}

func (s *ModerationService) Log(ctx context.Context, id int64) (*models.ModerationLog, error) {
	var log models.ModerationLog
	err := s.c.send(ctx, enums.ModerationResource, "Log", http.MethodGet,
		fmt.Sprintf("/moderation/logs/%d", id), nil, &log)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *ModerationService) Stats(ctx context.Context) (*models.ModerationStats, error) {
	var stats models.ModerationStats
	err := s.c.send(ctx, enums.ModerationResource, "Stats", http.MethodGet, "/moderation/stats", nil, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
