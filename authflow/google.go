// Package authflow runs the Google sign-in flow for a native client: build
// the authorization URL, catch the redirect on a short-lived localhost
// callback server, and hand the authorization code back for exchange at
// the backend's /auth/google endpoint.
package authflow

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const (
	googleAuthorizeURL = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultScope       = "openid email profile"
)

// ErrNoClientID means the Google client id is missing from configuration,
// so the flow cannot start.
var ErrNoClientID = errors.New("google client id is not configured")

type GoogleFlow struct {
	clientID string

	// OpenURL presents the authorization URL to the user, typically by
	// launching a browser. When nil the URL is only returned through
	// Started.
	OpenURL func(url string) error

	// Started receives the authorization URL once the callback server is
	// listening, so a CLI can print it as a fallback.
	Started func(url string)
}

func NewGoogleFlow(clientID string) *GoogleFlow {
	return &GoogleFlow{clientID: clientID}
}

// AuthorizationURL builds the Google consent URL for the given redirect
// target and state nonce.
func (f *GoogleFlow) AuthorizationURL(redirectURI, state string) string {
	params := url.Values{
		"client_id":     {f.clientID},
		"redirect_uri":  {redirectURI},
		"response_type": {"code"},
		"scope":         {defaultScope},
		"state":         {state},
		"access_type":   {"offline"},
	}
	return fmt.Sprintf("%s?%s", googleAuthorizeURL, params.Encode())
}

// Authorize runs the whole flow and returns the authorization code. It
// blocks until the redirect arrives or ctx is done. The callback server
// binds an ephemeral localhost port and is torn down before returning.
func (f *GoogleFlow) Authorize(ctx context.Context) (string, error) {
	if f.clientID == "" {
		return "", ErrNoClientID
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("binding callback listener: %w", err)
	}

	state := uuid.NewString()
	redirectURI := fmt.Sprintf("http://%s/callback", listener.Addr().String())

	codeCh := make(chan string, 1)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Listener = listener
	e.GET("/callback", func(c echo.Context) error {
		if got := c.QueryParam("state"); got != state {
			log.Errorf("oauth callback with unexpected state: %q", got)
			return c.String(http.StatusBadRequest, "state mismatch, please retry the sign-in")
		}
		code := c.QueryParam("code")
		if code == "" {
			return c.String(http.StatusBadRequest, "missing authorization code")
		}

		select {
		case codeCh <- code:
		default:
		}
		return c.HTML(http.StatusOK, "<html><body>Signed in. You can close this window and return to the terminal.</body></html>")
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	defer func() { _ = e.Shutdown(context.Background()) }()

	authURL := f.AuthorizationURL(redirectURI, state)
	if f.Started != nil {
		f.Started(authURL)
	}
	if f.OpenURL != nil {
		if err := f.OpenURL(authURL); err != nil {
			log.Warnf("could not open browser: %v", err)
		}
	}

	select {
	case code := <-codeCh:
		return code, nil
	case err := <-serverErr:
		return "", fmt.Errorf("callback server: %w", err)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// RedirectHost reports whether the redirect URI points at this machine.
// Guards against configuration mistakenly pointing the flow elsewhere.
func RedirectHost(redirectURI string) (string, bool) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return "", false
	}
	host := u.Hostname()
	return host, host == "127.0.0.1" || strings.EqualFold(host, "localhost")
}
