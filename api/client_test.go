package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
	"github.com/learnly/learnly-go/session"
)

// fakeBackend is an httptest server that validates bearer tokens the way
// the real backend does and lets tests script the refresh endpoint.
type fakeBackend struct {
	server *httptest.Server

	mu              sync.Mutex
	validToken      string
	refreshFails    bool
	rejectRefreshed bool

	refreshCalls atomic.Int64
	courseCalls  atomic.Int64
}

func newFakeBackend(validToken string) *fakeBackend {
	b := &fakeBackend{validToken: validToken}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", b.handleRefresh)
	mux.HandleFunc("GET /courses/", b.handleCourses)
	mux.HandleFunc("POST /courses/{id}/materials", b.handleMaterialUpload)
	mux.HandleFunc("POST /auth/login", b.handleLogin)
	mux.HandleFunc("GET /missing", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "course not found"}`))
	})

	b.server = httptest.NewServer(mux)
	return b
}

func (b *fakeBackend) close() { b.server.Close() }

func (b *fakeBackend) setRefreshFails(fails bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshFails = fails
}

func (b *fakeBackend) authorized(r *http.Request) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return r.Header.Get("Authorization") == "Bearer "+b.validToken
}

func (b *fakeBackend) handleRefresh(w http.ResponseWriter, r *http.Request) {
	b.refreshCalls.Add(1)

	// Refresh is deliberately slow so overlapping 401 handlers are all
	// in flight together when deduplication is under test.
	time.Sleep(50 * time.Millisecond)

	b.mu.Lock()
	fails := b.refreshFails
	b.mu.Unlock()

	if fails {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "invalid refresh token"}`))
		return
	}

	var req models.RefreshRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	b.mu.Lock()
	if b.rejectRefreshed {
		// Simulates a token the backend will still turn away, so the
		// single retry 401s as well.
		b.validToken = "rotated-elsewhere"
	} else {
		b.validToken = "refreshed-access"
	}
	b.mu.Unlock()

	writeJSON(w, models.TokenResponse{
		AccessToken:  "refreshed-access",
		RefreshToken: "refreshed-refresh",
		TokenType:    "bearer",
		User:         &models.User{ID: 1, Role: enums.RoleStudent, FullName: "Ada Student"},
	})
}

func (b *fakeBackend) handleCourses(w http.ResponseWriter, r *http.Request) {
	b.courseCalls.Add(1)
	if !b.authorized(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "could not validate credentials"}`))
		return
	}
	writeJSON(w, []models.Course{{ID: 7, Title: "Distributed Systems", IsActive: true}})
}

func (b *fakeBackend) handleMaterialUpload(w http.ResponseWriter, r *http.Request) {
	if !b.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data; boundary=") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "expected multipart body"}`))
		return
	}

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	writeJSON(w, models.CourseMaterial{ID: 3, Title: r.FormValue("title"), FileType: header.Filename})
}

func (b *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Password != "Sup3r$ecret" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "incorrect email or password"}`))
		return
	}

	writeJSON(w, models.TokenResponse{
		AccessToken:  "valid-access",
		RefreshToken: "valid-refresh",
		TokenType:    "bearer",
		User:         &models.User{ID: 1, Email: req.Email, Role: enums.RoleStudent},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type ClientTestSuite struct {
	suite.Suite
	backend *fakeBackend
	store   *session.Store
	expired atomic.Int64
	client  *Client
}

func (suite *ClientTestSuite) SetupTest() {
	suite.backend = newFakeBackend("valid-access")
	suite.store = session.NewStore(nil)
	suite.expired.Store(0)
	suite.client = NewClient(Config{
		BaseURL: suite.backend.server.URL,
		Store:   suite.store,
		OnSessionExpired: func() {
			suite.expired.Add(1)
		},
	})
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.backend.close()
}

func (suite *ClientTestSuite) loginAs(access, refresh string) {
	suite.store.SetAuth(models.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         &models.User{ID: 1, Role: enums.RoleStudent},
	})
}

func (suite *ClientTestSuite) TestBearerTokenAttached() {
	suite.loginAs("valid-access", "valid-refresh")

	courses, err := suite.client.Courses.List(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(courses, 1)
	assert.Equal(suite.T(), "Distributed Systems", courses[0].Title)
}

func (suite *ClientTestSuite) TestExpiredTokenRefreshedTransparently() {
	suite.loginAs("stale-access", "valid-refresh")

	courses, err := suite.client.Courses.List(context.Background())

	// The caller never sees the 401.
	suite.Require().NoError(err)
	suite.Require().Len(courses, 1)

	sess := suite.store.Session()
	assert.Equal(suite.T(), "refreshed-access", sess.AccessToken)
	assert.Equal(suite.T(), "refreshed-refresh", sess.RefreshToken)
	assert.Equal(suite.T(), "Ada Student", sess.User.FullName)
	assert.Equal(suite.T(), int64(1), suite.backend.refreshCalls.Load())
	assert.Equal(suite.T(), int64(2), suite.backend.courseCalls.Load())
	assert.Equal(suite.T(), int64(0), suite.expired.Load())
}

func (suite *ClientTestSuite) TestFailedRefreshClearsSession() {
	suite.loginAs("stale-access", "stale-refresh")
	suite.backend.setRefreshFails(true)

	_, err := suite.client.Courses.List(context.Background())

	suite.Require().Error(err)
	// The caller receives the original 401, not the refresh error.
	suite.Require().True(IsUnauthorized(err))
	apiErr, ok := AsAPIError(err)
	suite.Require().True(ok)
	assert.Equal(suite.T(), "/courses/", apiErr.URL)

	assert.False(suite.T(), suite.store.Session().LoggedIn())
	assert.Equal(suite.T(), int64(1), suite.expired.Load())
	// Only the original request went out; no retry without a session.
	assert.Equal(suite.T(), int64(1), suite.backend.courseCalls.Load())
}

func (suite *ClientTestSuite) TestSecondUnauthorizedIsFinal() {
	suite.loginAs("stale-access", "valid-refresh")

	// The refresh succeeds but hands back a token the backend will still
	// reject, so the retry 401s as well. That second 401 must propagate
	// without another refresh attempt.
	suite.backend.mu.Lock()
	suite.backend.rejectRefreshed = true
	suite.backend.mu.Unlock()

	_, err := suite.client.Courses.List(context.Background())

	suite.Require().Error(err)
	assert.True(suite.T(), IsUnauthorized(err))
	assert.Equal(suite.T(), int64(1), suite.backend.refreshCalls.Load())
	assert.Equal(suite.T(), int64(2), suite.backend.courseCalls.Load())
}

func (suite *ClientTestSuite) TestMissingRefreshTokenPropagatesOriginalError() {
	suite.store.SetAuth(models.TokenResponse{
		AccessToken: "stale-access",
		User:        &models.User{ID: 1, Role: enums.RoleStudent},
	})

	_, err := suite.client.Courses.List(context.Background())

	suite.Require().Error(err)
	assert.True(suite.T(), IsUnauthorized(err))
	// Nothing to refresh with, so no refresh attempt and no forced
	// session expiry: the 401 just propagates.
	assert.Equal(suite.T(), int64(0), suite.backend.refreshCalls.Load())
	assert.Equal(suite.T(), int64(0), suite.expired.Load())
}

func (suite *ClientTestSuite) TestConcurrentUnauthorizedShareOneRefresh() {
	suite.loginAs("stale-access", "valid-refresh")

	const workers = 5
	var wg sync.WaitGroup
	start := make(chan struct{})
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = suite.client.Courses.List(context.Background())
		}(i)
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		assert.NoError(suite.T(), err, "worker %d", i)
	}
	assert.Equal(suite.T(), int64(1), suite.backend.refreshCalls.Load(),
		"overlapping 401 handlers must share a single refresh call")
}

func (suite *ClientTestSuite) TestNonAuthErrorsPassThrough() {
	suite.loginAs("valid-access", "valid-refresh")

	err := suite.client.send(context.Background(), "course", "Get", http.MethodGet, "/missing", nil, nil)

	suite.Require().Error(err)
	apiErr, ok := AsAPIError(err)
	suite.Require().True(ok)
	assert.Equal(suite.T(), http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(suite.T(), "course not found", apiErr.Detail)
	assert.True(suite.T(), IsNotFound(err))
	assert.Equal(suite.T(), int64(0), suite.backend.refreshCalls.Load())
	// The session survives non-auth failures.
	assert.True(suite.T(), suite.store.Session().LoggedIn())
}

func (suite *ClientTestSuite) TestMultipartUploadGetsTransportBoundary() {
	suite.loginAs("valid-access", "valid-refresh")

	material, err := suite.client.Courses.UploadMaterial(context.Background(),
		7, "Lecture 1", "lecture1.pdf", []byte("%PDF-1.4 fake"))

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Lecture 1", material.Title)
	assert.Equal(suite.T(), "lecture1.pdf", material.FileType)
}

func (suite *ClientTestSuite) TestMultipartRetryAfterRefresh() {
	// The multipart body must be rebuilt for the retry, not resent from a
	// half-drained reader.
	suite.loginAs("stale-access", "valid-refresh")

	material, err := suite.client.Courses.UploadMaterial(context.Background(),
		7, "Lecture 2", "lecture2.pdf", []byte("%PDF-1.4 fake"))

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Lecture 2", material.Title)
	assert.Equal(suite.T(), int64(1), suite.backend.refreshCalls.Load())
}

func (suite *ClientTestSuite) TestLoginPopulatesStore() {
	tr, err := suite.client.Auth.Login(context.Background(), models.LoginRequest{
		Email:    "ada@learnly.example",
		Password: "Sup3r$ecret",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "valid-access", tr.AccessToken)

	sess := suite.store.Session()
	suite.Require().True(sess.LoggedIn())
	assert.Equal(suite.T(), "ada@learnly.example", sess.User.Email)
}

func (suite *ClientTestSuite) TestLoginRejectedLeavesSessionEmpty() {
	_, err := suite.client.Auth.Login(context.Background(), models.LoginRequest{
		Email:    "ada@learnly.example",
		Password: "WrongPassw0rd!",
	})

	suite.Require().Error(err)
	assert.False(suite.T(), suite.store.Session().LoggedIn())
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestSignupValidationNeverHitsNetwork(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Store: session.NewStore(nil)})

	testCases := []struct {
		name string
		req  models.SignupRequest
	}{
		{"short password", models.SignupRequest{
			Email: "a@b.co", Password: "Ab1!", FullName: "A", Role: enums.RoleStudent}},
		{"no uppercase", models.SignupRequest{
			Email: "a@b.co", Password: "weakpass1!", FullName: "A", Role: enums.RoleStudent}},
		{"no special character", models.SignupRequest{
			Email: "a@b.co", Password: "Weakpass11", FullName: "A", Role: enums.RoleStudent}},
		{"bad email", models.SignupRequest{
			Email: "not-an-email", Password: "Str0ng!pass", FullName: "A", Role: enums.RoleStudent}},
		{"bad role", models.SignupRequest{
			Email: "a@b.co", Password: "Str0ng!pass", FullName: "A", Role: enums.Role("principal")}},
		{"semester out of range", models.SignupRequest{
			Email: "a@b.co", Password: "Str0ng!pass", FullName: "A", Role: enums.RoleStudent,
			Semester: func() *int { v := 9; return &v }()}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.Auth.Signup(context.Background(), tc.req)
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}

	assert.Equal(t, int64(0), hits.Load(), "validation failures must never reach the backend")
}
