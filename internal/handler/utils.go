package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/auth"
)

// splitList flattens repeated and comma-separated query values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseIDParam(c *gin.Context, name, code, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		writeError(c, http.StatusBadRequest, code, message)
		return uuid.Nil, false
	}
	return id, true
}

// principal returns the claims set by auth.RequireRole.
func principal(c *gin.Context) (*auth.Claims, bool) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, auth.CodeUnauthorized, "authentication required")
		return nil, false
	}
	return claims, true
}
