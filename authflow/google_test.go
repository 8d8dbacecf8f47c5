package authflow

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationURL(t *testing.T) {
	flow := NewGoogleFlow("client-123")

	raw := flow.AuthorizationURL("http://127.0.0.1:9999/callback", "state-abc")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "client-123", q.Get("client_id"))
	assert.Equal(t, "http://127.0.0.1:9999/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "state-abc", q.Get("state"))
	assert.Contains(t, q.Get("scope"), "email")
}

func TestAuthorizeRequiresClientID(t *testing.T) {
	flow := NewGoogleFlow("")

	_, err := flow.Authorize(context.Background())
	assert.ErrorIs(t, err, ErrNoClientID)
}

func TestAuthorizeRoundTrip(t *testing.T) {
	flow := NewGoogleFlow("client-123")

	started := make(chan string, 1)
	flow.Started = func(authURL string) { started <- authURL }

	type result struct {
		code string
		err  error
	}
	done := make(chan result, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		code, err := flow.Authorize(ctx)
		done <- result{code, err}
	}()

	var authURL string
	select {
	case authURL = <-started:
	case <-ctx.Done():
		t.Fatal("flow never started")
	}

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	redirectURI := u.Query().Get("redirect_uri")
	state := u.Query().Get("state")
	require.NotEmpty(t, redirectURI)
	require.NotEmpty(t, state)

	host, local := RedirectHost(redirectURI)
	assert.True(t, local, "callback must bind localhost, got %s", host)

	// A redirect with the wrong state is turned away.
	resp, err := http.Get(redirectURI + "?code=evil&state=wrong")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The genuine redirect completes the flow.
	resp, err = http.Get(redirectURI + "?code=auth-code-42&state=" + state)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "auth-code-42", res.code)
}

func TestAuthorizeContextCancelled(t *testing.T) {
	flow := NewGoogleFlow("client-123")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flow.Authorize(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
