package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmkcontents/jmkcontents/internal/common"
)

// Admin 세션 쿠키. 값은 고정 센티널 문자열이다.
const (
	SessionCookieName = "admin_session"
	SessionCookieVal  = "authenticated"
	SessionMaxAge     = 604800 // 7일 (초)
)

// IsAdminSession reports whether the request carries a valid admin
// session cookie. Any value other than the sentinel counts as absent.
func IsAdminSession(c *gin.Context) bool {
	value, err := c.Cookie(SessionCookieName)
	return err == nil && value == SessionCookieVal
}

// RequireAdminSession rejects requests without an admin session cookie
func RequireAdminSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdminSession(c) {
			common.ErrorResponse(c, http.StatusUnauthorized, "관리자 로그인이 필요합니다.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetAdminSession issues the session cookie with the documented
// attributes: HTTP-only, SameSite=Lax, 7-day expiry.
func SetAdminSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, SessionCookieVal, SessionMaxAge, "/", "", false, true)
}

// ClearAdminSession deletes the session cookie unconditionally.
func ClearAdminSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
