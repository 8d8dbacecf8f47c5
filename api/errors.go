package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// ErrNoRefreshToken means a 401 arrived with no refresh token on hand, so
// no refresh could even be attempted.
var ErrNoRefreshToken = errors.New("no refresh token available")

// APIError is any non-2xx reply from the backend. Detail carries the
// backend-provided message when one exists.
type APIError struct {
	StatusCode int
	Detail     string
	Method     string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Detail)
}

func newAPIError(resp *resty.Response, method, url string) *APIError {
	detail := gjson.GetBytes(resp.Body(), "detail").String()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}
	return &APIError{
		StatusCode: resp.StatusCode(),
		Detail:     detail,
		Method:     method,
		URL:        url,
	}
}

// AsAPIError unwraps err into an *APIError when it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a backend 401 that survived the
// refresh protocol.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}
