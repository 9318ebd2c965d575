package middlewares

import (
	"CareSync/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *utils.TokenMaker) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	maker, err := utils.NewTokenMaker("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("NewTokenMaker: %v", err)
	}

	router := gin.New()
	router.Use(IdentityMiddleware(maker))
	router.GET("/open", func(c *gin.Context) {
		_, ok := ClaimsFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"identified": ok})
	})
	router.GET("/protected", RequireAuthMiddleware(), func(c *gin.Context) {
		claims, _ := ClaimsFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return router, maker
}

func TestIdentityMiddlewareNoHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 without header on open route, got %d", w.Code)
	}
}

func TestIdentityMiddlewareMalformedHeader(t *testing.T) {
	router, maker := newTestRouter(t)
	token, _ := maker.Issue("u1", "a@x.com", "patient")

	headers := []string{
		"Bearer  " + token,
		"bearer " + token,
		token,
		"Basic abc",
	}
	for _, header := range headers {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	router, maker := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", w.Code)
	}

	token, err := maker.Issue("u1", "a@x.com", "patient")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", w.Code)
	}
}
