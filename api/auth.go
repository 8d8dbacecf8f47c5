package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

// AuthService covers /auth. Successful login, signup and google exchange
// all replace the whole session atomically.
type AuthService struct {
	c *Client
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var tr models.TokenResponse
	err := s.c.send(ctx, enums.AuthResource, "Login", http.MethodPost, "/auth/login",
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &tr)
	if err != nil {
		return nil, err
	}

	s.c.store.SetAuth(tr)
	return &tr, nil
}

func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.TokenResponse, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var tr models.TokenResponse
	err := s.c.send(ctx, enums.AuthResource, "Signup", http.MethodPost, "/auth/signup",
		func(r *resty.Request) *resty.Request { return r.SetBody(req) }, &tr)
	if err != nil {
		return nil, err
	}

	s.c.store.SetAuth(tr)
	return &tr, nil
}

// GoogleAuth exchanges a Google authorization code for a session.
func (s *AuthService) GoogleAuth(ctx context.Context, code string) (*models.TokenResponse, error) {
	var tr models.TokenResponse
	err := s.c.send(ctx, enums.AuthResource, "GoogleAuth", http.MethodPost, "/auth/google",
		func(r *resty.Request) *resty.Request {
			return r.SetBody(models.GoogleAuthRequest{Code: code})
		}, &tr)
	if err != nil {
		return nil, err
	}

	s.c.store.SetAuth(tr)
	return &tr, nil
}

// Logout tells the backend, then clears the local session regardless of
// the outcome. A dead backend must not keep the client logged in.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.c.send(ctx, enums.AuthResource, "Logout", http.MethodPost, "/auth/logout", nil, nil)
	s.c.store.Logout()
	return err
}

// Me fetches the current user and merges the fresher record into the
// session, keeping derived fields like competency score up to date.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	err := s.c.send(ctx, enums.AuthResource, "Me", http.MethodGet, "/auth/me", nil, &user)
	if err != nil {
		return nil, err
	}

	s.c.store.UpdateUser(models.UserPatch{
		Email:           &user.Email,
		FullName:        &user.FullName,
		Role:            &user.Role,
		Avatar:          &user.Avatar,
		Semester:        user.Semester,
		DegreeType:      &user.DegreeType,
		CompetencyScore: user.CompetencyScore,
		IsActive:        &user.IsActive,
		IsVerified:      &user.IsVerified,
	})
	return &user, nil
}
