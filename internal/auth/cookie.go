package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

// CookieWriter writes session cookies with attributes that depend on
// whether the server runs in production.
type CookieWriter struct {
	Production bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (w CookieWriter) SetSession(c *gin.Context, pair Pair) {
	w.set(c, AccessCookie, pair.AccessToken, w.AccessTTL)
	w.set(c, RefreshCookie, pair.RefreshToken, w.RefreshTTL)
}

func (w CookieWriter) SetAccess(c *gin.Context, token string) {
	w.set(c, AccessCookie, token, w.AccessTTL)
}

func (w CookieWriter) Clear(c *gin.Context) {
	w.set(c, AccessCookie, "", -1)
	w.set(c, RefreshCookie, "", -1)
}

func (w CookieWriter) set(c *gin.Context, name, value string, ttl time.Duration) {
	maxAge := int(ttl / time.Second)
	if ttl < 0 {
		maxAge = -1
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   w.Production,
		SameSite: w.sameSite(),
	})
}

func (w CookieWriter) sameSite() http.SameSite {
	if w.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
