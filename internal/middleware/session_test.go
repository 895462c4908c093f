package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"backend/internal/session"
)

func sessionTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session("flower_shop_session"))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, SessionID(c))
	})
	return r
}

func TestSessionMintsTokenForNewVisitor(t *testing.T) {
	r := sessionTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	token := w.Body.String()
	if !session.Valid(token) {
		t.Fatalf("expected a valid minted token, got %q", token)
	}

	cookies := w.Result().Cookies()
	found := false
	for _, cookie := range cookies {
		if cookie.Name == "flower_shop_session" && cookie.Value == token {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the minted token to be written back as a cookie")
	}
}

func TestSessionReusesExistingCookie(t *testing.T) {
	r := sessionTestRouter()
	existing := session.New()

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "flower_shop_session", Value: existing})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Body.String(); got != existing {
		t.Fatalf("expected existing token %q to be reused, got %q", existing, got)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatal("expected no Set-Cookie when the token is already valid")
	}
}

func TestSessionReplacesMalformedCookie(t *testing.T) {
	r := sessionTestRouter()

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "flower_shop_session", Value: "garbage"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	token := w.Body.String()
	if token == "garbage" || !session.Valid(token) {
		t.Fatalf("expected a fresh token instead of the malformed cookie, got %q", token)
	}
}
