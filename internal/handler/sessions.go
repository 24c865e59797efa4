package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/auth"
	"github.com/snnyvrz/shelfshare/internal/repository"
)

const (
	CodeRefreshTokenInvalid = "REFRESH_TOKEN_INVALID"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
)

// sessions issues cookies for one principal role.
type sessions struct {
	role    auth.Role
	issuer  *auth.TokenIssuer
	cookies auth.CookieWriter
}

func (s sessions) start(c *gin.Context, id auth.Identity) bool {
	pair, err := s.issuer.IssuePair(id)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"SESSION_CREATE_FAILED",
			"failed to create session",
		)
		return false
	}

	s.cookies.SetSession(c, pair)
	return true
}

// refresh validates the refresh cookie and writes a new access token. The
// lookup re-reads the principal so deleted accounts cannot refresh.
func (s sessions) refresh(c *gin.Context, lookup func(ctx context.Context, id uuid.UUID) (auth.Identity, error)) {
	raw, err := c.Cookie(auth.RefreshCookie)
	if err != nil || raw == "" {
		writeError(c, http.StatusUnauthorized, CodeRefreshTokenInvalid, "refresh token missing")
		return
	}

	claims, err := s.issuer.ParseRefresh(raw)
	if err != nil || claims.Role != s.role {
		writeError(c, http.StatusUnauthorized, CodeRefreshTokenInvalid, "refresh token invalid or expired")
		return
	}

	id, err := lookup(c.Request.Context(), claims.Identity.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusUnauthorized, CodeRefreshTokenInvalid, "account no longer exists")
			return
		}
		writeError(c, http.StatusInternalServerError, "SESSION_REFRESH_FAILED", "failed to refresh session")
		return
	}

	access, err := s.issuer.IssueAccess(id)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "SESSION_REFRESH_FAILED", "failed to refresh session")
		return
	}

	s.cookies.SetAccess(c, access)
	writeSuccess(c, http.StatusOK, RefreshData{AccessToken: access})
}

// logout only clears cookies; issued tokens stay valid until they expire.
func (s sessions) logout(c *gin.Context) {
	s.cookies.Clear(c)
	writeSuccess(c, http.StatusOK, nil)
}
