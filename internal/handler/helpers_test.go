package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/auth"
	"github.com/snnyvrz/shelfshare/internal/config"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/testutil"
	"github.com/snnyvrz/shelfshare/internal/validation"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	issuer *auth.TokenIssuer
}

func testConfig() *config.Config {
	return &config.Config{
		GinMode:          gin.TestMode,
		JWTAccessSecret:  "test-access",
		JWTRefreshSecret: "test-refresh",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  time.Hour,
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	database := testutil.NewTestDB(t)
	e := gin.New()

	cfg := testConfig()
	if err := (Router{Config: cfg, DB: database, StartTime: time.Now(), Version: "test"}).Mount(e); err != nil {
		t.Fatalf("failed to mount router: %v", err)
	}

	return &testServer{router: e, db: database, issuer: newIssuer(cfg)}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) cookieFor(t *testing.T, id auth.Identity) *http.Cookie {
	t.Helper()

	token, err := s.issuer.IssueAccess(id)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return &http.Cookie{Name: auth.AccessCookie, Value: token}
}

func (s *testServer) userCookie(t *testing.T, u model.User) *http.Cookie {
	t.Helper()
	return s.cookieFor(t, userIdentity(u))
}

func (s *testServer) libraryCookie(t *testing.T, l model.Library) *http.Cookie {
	t.Helper()
	return s.cookieFor(t, libraryIdentity(l))
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	if !resp.Success {
		t.Fatalf("expected success=true, body=%s", w.Body.String())
	}
	return resp.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) validation.ErrorResponse {
	t.Helper()

	var resp validation.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error: %v, body=%s", err, w.Body.String())
	}
	return resp
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d, body=%s", status, w.Code, w.Body.String())
	}
}
