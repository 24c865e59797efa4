package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snnyvrz/shelfshare/internal/validation"
)

func setupGuardedRouter(issuer *TokenIssuer, role Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/guarded", RequireRole(issuer, role), func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})

	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) validation.ErrorResponse {
	t.Helper()

	var resp validation.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRequireRole_CookieToken(t *testing.T) {
	issuer := newTestIssuer()
	r := setupGuardedRouter(issuer, RoleUser)

	token, err := issuer.IssueAccess(testIdentity(RoleUser))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
}

func TestRequireRole_BearerFallback(t *testing.T) {
	issuer := newTestIssuer()
	r := setupGuardedRouter(issuer, RoleLibrary)

	token, err := issuer.IssueAccess(testIdentity(RoleLibrary))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Rejections(t *testing.T) {
	issuer := newTestIssuer()
	r := setupGuardedRouter(issuer, RoleUser)

	libraryToken, err := issuer.IssueAccess(testIdentity(RoleLibrary))
	require.NoError(t, err)

	pair, err := issuer.IssuePair(testIdentity(RoleUser))
	require.NoError(t, err)

	expiring := newTestIssuer()
	expiring.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, err := expiring.IssueAccess(testIdentity(RoleUser))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status int
		code   string
	}{
		{"missing", "", http.StatusUnauthorized, CodeUnauthorized},
		{"garbage", "abc.def.ghi", http.StatusUnauthorized, CodeUnauthorized},
		{"refresh token used as access", pair.RefreshToken, http.StatusUnauthorized, CodeUnauthorized},
		{"expired", expiredToken, http.StatusUnauthorized, CodeTokenExpired},
		{"wrong role", libraryToken, http.StatusForbidden, CodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: AccessCookie, Value: tt.token})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestCookieWriter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		production bool
		sameSite   http.SameSite
	}{
		{"development", false, http.SameSiteLaxMode},
		{"production", true, http.SameSiteNoneMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			cw := CookieWriter{Production: tt.production, AccessTTL: 15 * time.Minute, RefreshTTL: time.Hour}
			cw.SetSession(c, Pair{AccessToken: "a", RefreshToken: "r"})

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 2)

			byName := map[string]*http.Cookie{}
			for _, ck := range cookies {
				byName[ck.Name] = ck
			}

			access := byName[AccessCookie]
			require.NotNil(t, access)
			assert.Equal(t, "a", access.Value)
			assert.True(t, access.HttpOnly)
			assert.Equal(t, tt.production, access.Secure)
			assert.Equal(t, tt.sameSite, access.SameSite)
			assert.Equal(t, 900, access.MaxAge)

			refresh := byName[RefreshCookie]
			require.NotNil(t, refresh)
			assert.Equal(t, 3600, refresh.MaxAge)
		})
	}
}

func TestCookieWriter_Clear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	CookieWriter{}.Clear(c)

	for _, ck := range w.Result().Cookies() {
		assert.Empty(t, ck.Value)
		assert.Equal(t, -1, ck.MaxAge)
	}
}
