package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"profolio/internal/auth"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	service, err := auth.NewService("test-secret", "user@profolio.ai", "password123")
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return NewAuthHandler(service)
}

func postLogin(t *testing.T, handler *AuthHandler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	handler.Login(c)
	return w
}

func TestLoginEndpointAdmin(t *testing.T) {
	handler := newAuthHandler(t)

	w := postLogin(t, handler, `{"email":"user@profolio.ai","password":"password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Login successful") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestLoginEndpointRejectsUnknownAccount(t *testing.T) {
	handler := newAuthHandler(t)

	w := postLogin(t, handler, `{"email":"ada@example.com","password":"secret1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Gmail or GitHub") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestLoginEndpointRequiresPayload(t *testing.T) {
	handler := newAuthHandler(t)

	w := postLogin(t, handler, `{"email":"ada@gmail.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
