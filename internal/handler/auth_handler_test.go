package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmkcontents/jmkcontents/internal/common"
	"github.com/jmkcontents/jmkcontents/internal/middleware"
	"github.com/jmkcontents/jmkcontents/internal/service"
)

func newAuthTestRouter(adminPassword string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(service.NewAuthService(adminPassword))

	r := gin.New()
	r.POST("/api/admin/login", h.Login)
	r.POST("/api/admin/logout", h.Logout)
	r.GET("/api/admin/session", h.Session)
	return r
}

func postLogin(t *testing.T, r *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"password": password})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_Success(t *testing.T) {
	r := newAuthTestRouter("secret123")

	w := postLogin(t, r, "secret123")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "성공")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.SessionCookieName, cookie.Name)
	assert.Equal(t, middleware.SessionCookieVal, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, middleware.SessionMaxAge, cookie.MaxAge)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r := newAuthTestRouter("secret123")

	w := postLogin(t, r, "wrong")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "비밀번호")
}

func TestLoginHandler_PasswordNotConfigured(t *testing.T) {
	r := newAuthTestRouter("")

	w := postLogin(t, r, "anything")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "설정")
}

func TestLoginHandler_MissingPassword(t *testing.T) {
	r := newAuthTestRouter("secret123")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionHandler_Authenticated(t *testing.T) {
	r := newAuthTestRouter("secret123")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/session", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: middleware.SessionCookieVal})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}

func TestSessionHandler_Anonymous(t *testing.T) {
	r := newAuthTestRouter("secret123")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/session", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	r := newAuthTestRouter("secret123")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: middleware.SessionCookieVal})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
