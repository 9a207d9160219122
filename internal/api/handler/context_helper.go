package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"uni-portal/backend/pkg/response"
)

// MustGetUserID safely extracts user_id from the Gin context. When the
// JWT middleware did not inject it, a 401 is written and ok is false;
// the caller should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole safely extracts role from the Gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetTokenInfo extracts the token id and expiry injected by the JWT
// middleware; logout needs both to blacklist the token.
func MustGetTokenInfo(c *gin.Context) (jti string, expiresAt time.Time, ok bool) {
	v, exists := c.Get("jti")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	jti, okJti := v.(string)
	e, exists := c.Get("token_exp")
	expiresAt, okExp := e.(time.Time)
	if !okJti || jti == "" || !exists || !okExp {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	return jti, expiresAt, true
}
