package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSessionTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", RequireAdminSession(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAdminSession_Allowed(t *testing.T) {
	r := newSessionTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: SessionCookieVal})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRequireAdminSession_NoCookie(t *testing.T) {
	r := newSessionTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/guarded", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "관리자 로그인이 필요합니다") {
		t.Errorf("expected login-required message, got %s", w.Body.String())
	}
}

func TestRequireAdminSession_WrongValue(t *testing.T) {
	r := newSessionTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestSetAdminSession_CookieAttributes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", func(c *gin.Context) {
		SetAdminSession(c)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", nil)
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	cookie := cookies[0]

	if cookie.Name != SessionCookieName {
		t.Errorf("expected name %s, got %s", SessionCookieName, cookie.Name)
	}
	if cookie.Value != SessionCookieVal {
		t.Errorf("expected value %s, got %s", SessionCookieVal, cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.MaxAge != SessionMaxAge {
		t.Errorf("expected MaxAge %d, got %d", SessionMaxAge, cookie.MaxAge)
	}
	if cookie.Path != "/" {
		t.Errorf("expected Path /, got %s", cookie.Path)
	}
}

func TestClearAdminSession_Expires(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/logout", func(c *gin.Context) {
		ClearAdminSession(c)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/logout", nil)
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("expected negative MaxAge, got %d", cookies[0].MaxAge)
	}
}
