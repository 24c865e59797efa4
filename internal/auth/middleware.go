package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/shelfshare/internal/validation"
)

const (
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"

	claimsKey = "auth.claims"
)

// RequireRole rejects requests without a valid access token for role.
// The token is read from the accessToken cookie, then from a bearer header.
func RequireRole(issuer *TokenIssuer, role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFrom(c)
		if raw == "" {
			abort(c, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
			return
		}

		claims, err := issuer.ParseAccess(raw)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				abort(c, http.StatusUnauthorized, CodeTokenExpired, "access token expired")
				return
			}
			abort(c, http.StatusUnauthorized, CodeUnauthorized, "invalid access token")
			return
		}

		if claims.Role != role {
			abort(c, http.StatusForbidden, CodeForbidden, "insufficient role")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by RequireRole.
func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

func tokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessCookie); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}

	return ""
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
