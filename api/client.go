// Package api is the HTTP client for the LEARNLY backend. All requests go
// through one pre-configured pipeline that attaches the bearer token from
// the session store and transparently retries exactly once after a 401 by
// refreshing the session. Concurrent 401s share a single refresh call.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/learnly/learnly-go/models"
	"github.com/learnly/learnly-go/otel"
	"github.com/learnly/learnly-go/session"
	"github.com/learnly/learnly-go/utils/logger"
)

const (
	headerAuthorization = "Authorization"
	defaultTimeout      = 30 * time.Second
	defaultServiceName  = "learnly-go"
)

type Config struct {
	// BaseURL of the LEARNLY backend, e.g. "http://localhost:8000".
	BaseURL string

	// Store is the session store the pipeline reads tokens from and
	// writes refreshed sessions to.
	Store *session.Store

	// OnSessionExpired fires once after an irrecoverable refresh failure,
	// after the session has been cleared. It is the client analog of the
	// SPA's forced navigation to the login screen.
	OnSessionExpired func()

	// Timeout bounds each individual HTTP call. Zero means 30s.
	Timeout time.Duration

	// ServiceName names the tracer for outgoing call spans.
	ServiceName string
}

type Client struct {
	rest      *resty.Client
	refresher *resty.Client
	store     *session.Store
	onExpired func()
	service   string
	sf        singleflight.Group

	Auth        *AuthService
	Users       *UsersService
	Courses     *CoursesService
	Quiz        *QuizService
	Rag         *RagService
	Analytics   *AnalyticsService
	Assignments *AssignmentsService
	Moderation  *ModerationService
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	service := cfg.ServiceName
	if service == "" {
		service = defaultServiceName
	}

	c := &Client{
		store:     cfg.Store,
		onExpired: cfg.OnSessionExpired,
		service:   service,
	}

	c.rest = newRestyClient(cfg.BaseURL, timeout)
	c.rest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if token := c.store.AccessToken(); token != "" {
			r.SetHeader(headerAuthorization, "Bearer "+token)
		}
		for k, v := range otel.InjectTraceHeaders(r.Context(), nil) {
			r.SetHeader(k, v)
		}
		return nil
	})

	// The refresh call runs on a bare pipeline: no bearer header, and no
	// 401 handling of its own, so a failing refresh can never recurse.
	c.refresher = newRestyClient(cfg.BaseURL, timeout)

	c.Auth = &AuthService{c: c}
	c.Users = &UsersService{c: c}
	c.Courses = &CoursesService{c: c}
	c.Quiz = &QuizService{c: c}
	c.Rag = &RagService{c: c}
	c.Analytics = &AnalyticsService{c: c}
	c.Assignments = &AssignmentsService{c: c}
	c.Moderation = &ModerationService{c: c}
	return c
}

func newRestyClient(baseURL string, timeout time.Duration) *resty.Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal
	return client
}

// send dispatches one logical request. build configures the outgoing
// request (body, query, multipart) and is re-invoked for the retry so
// multipart readers are rebuilt instead of resent half-drained.
func (c *Client) send(ctx context.Context, resource, operation, method, url string, build func(r *resty.Request) *resty.Request, out any) error {
	ctx, finish := otel.StartHTTPSpan(ctx, c.service, resource, operation, method, c.rest.BaseURL, url)

	tokenUsed := c.store.AccessToken()
	resp, err := c.attempt(ctx, method, url, build, out)
	if err != nil {
		finish(statusOf(resp), err)
		return err
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		original := newAPIError(resp, method, url)

		if rerr := c.refreshSession(ctx, tokenUsed); rerr != nil {
			finish(resp.StatusCode(), original)
			return original
		}

		// One retry with the refreshed bearer token. A second 401 is
		// final: it propagates without another refresh attempt.
		resp, err = c.attempt(ctx, method, url, build, out)
		if err != nil {
			finish(statusOf(resp), err)
			return err
		}
	}

	if resp.IsError() {
		apiErr := newAPIError(resp, method, url)
		finish(resp.StatusCode(), apiErr)
		return apiErr
	}

	finish(resp.StatusCode(), nil)
	return nil
}

func (c *Client) attempt(ctx context.Context, method, url string, build func(r *resty.Request) *resty.Request, out any) (*resty.Response, error) {
	r := c.rest.R().SetContext(ctx)
	if build != nil {
		r = build(r)
	}
	if out != nil {
		r.SetResult(out)
	}

	resp, err := r.Execute(method, url)
	if err != nil {
		return resp, fmt.Errorf("%s %s: %w", method, url, err)
	}
	return resp, nil
}

// refreshSession exchanges the stored refresh token for a new session.
// Concurrent callers share one in-flight refresh; every waiter observes
// the same outcome. A handler whose 401 raced an already-completed
// refresh finds a rotated token and skips the exchange entirely. On
// failure the session is cleared exactly once and OnSessionExpired fires
// exactly once.
func (c *Client) refreshSession(ctx context.Context, staleToken string) error {
	_, err, _ := c.sf.Do("refresh", func() (any, error) {
		if current := c.store.AccessToken(); current != "" && current != staleToken {
			return nil, nil
		}

		// No refresh token means nothing to attempt: the original 401
		// propagates untouched. Unauthenticated calls such as a failed
		// login land here and must not look like an expired session.
		refreshToken := c.store.RefreshToken()
		if refreshToken == "" {
			return nil, ErrNoRefreshToken
		}

		var tr models.TokenResponse
		resp, err := c.refresher.R().
			SetContext(ctx).
			SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
			SetResult(&tr).
			Post("/auth/refresh")
		if err != nil {
			return nil, c.expireSession(fmt.Errorf("refreshing session: %w", err))
		}
		if resp.IsError() {
			return nil, c.expireSession(newAPIError(resp, http.MethodPost, "/auth/refresh"))
		}

		c.store.SetAuth(tr)
		logger.LogDebug("session refreshed")
		return nil, nil
	})
	return err
}

func (c *Client) expireSession(cause error) error {
	logger.LogWarn("session expired", zap.Error(cause))
	c.store.Logout()
	if c.onExpired != nil {
		c.onExpired()
	}
	return cause
}

func statusOf(resp *resty.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode()
}
