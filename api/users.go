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

// UsersService covers /users. List, stats and the activation toggles are
// admin-only on the backend.
type UsersService struct {
	c *Client
}

type ListUsersParams struct {
	Skip  int
	Limit int
	Role  enums.Role
}

func (s *UsersService) List(ctx context.Context, params ListUsersParams) ([]models.User, error) {
	var users []models.User
	err := s.c.send(ctx, enums.UserResource, "List", http.MethodGet, "/users/",
		func(r *resty.Request) *resty.Request {
			if params.Skip > 0 {
				r.SetQueryParam("skip", strconv.Itoa(params.Skip))
			}
			if params.Limit > 0 {
				r.SetQueryParam("limit", strconv.Itoa(params.Limit))
			}
			if params.Role != "" {
				r.SetQueryParam("role", string(params.Role))
			}
			return r
		}, &users)
	return users, err
}

func (s *UsersService) Get(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.c.send(ctx, enums.UserResource, "Get", http.MethodGet,
		fmt.Sprintf("/users/%d", id), nil, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UsersService) Activate(ctx context.Context, id int64) error {
	return s.c.send(ctx, enums.UserResource, "Activate", http.MethodPatch,
		fmt.Sprintf("/users/%d/activate", id), nil, nil)
}

func (s *UsersService) Deactivate(ctx context.Context, id int64) error {
	return s.c.send(ctx, enums.UserResource, "Deactivate", http.MethodPatch,
		fmt.Sprintf("/users/%d/deactivate", id), nil, nil)
}

func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.c.send(ctx, enums.UserResource, "Delete", http.MethodDelete,
		fmt.Sprintf("/users/%d", id), nil, nil)
}

func (s *UsersService) Stats(ctx context.Context) (*models.UserStats, error) {
	var stats models.UserStats
	err := s.c.send(ctx, enums.UserResource, "Stats", http.MethodGet, "/users/stats/count", nil, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// UploadAvatar sends the image as multipart form data. The content-type
// header with its boundary is computed by the transport; the new avatar
// URL is merged into the stored user.
func (s *UsersService) UploadAvatar(ctx context.Context, filename string, content []byte) (string, error) {
	var result struct {
		Message   string `json:"message"`
		AvatarURL string `json:"avatar_url"`
	}
	err := s.c.send(ctx, enums.UserResource, "UploadAvatar", http.MethodPost, "/users/upload-avatar",
		func(r *resty.Request) *resty.Request {
			return r.SetFileReader("file", filename, bytes.NewReader(content))
		}, &result)
	if err != nil {
		return "", err
	}

	s.c.store.UpdateUser(models.UserPatch{Avatar: &result.AvatarURL})
	return result.AvatarURL, nil
}

func (s *UsersService) DeleteAvatar(ctx context.Context) error {
	err := s.c.send(ctx, enums.UserResource, "DeleteAvatar", http.MethodDelete, "/users/delete-avatar", nil, nil)
	if err != nil {
		return err
	}

	empty := ""
	s.c.store.UpdateUser(models.UserPatch{Avatar: &empty})
	return nil
}
