package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/raghhhava7/Devclimate-BE/internal/service"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func setupAuthRouter(t *testing.T, tokens service.TokenService) (*gin.Engine, *Identity) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resolved := &Identity{}
	router := gin.New()
	router.GET("/protected", RequireAuth(NewBearerAuthenticator(tokens)), func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			t.Error("identity missing from context after RequireAuth")
		} else {
			*resolved = *identity
		}
		c.Status(http.StatusOK)
	})
	return router, resolved
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	router, resolved := setupAuthRouter(t, tokens)

	userID := uuid.New()
	token, err := tokens.GenerateToken(userID, "alice", "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if resolved.UserID != userID {
		t.Errorf("resolved UserID = %s, want %s", resolved.UserID, userID)
	}
	if resolved.Username != "alice" || resolved.Email != "a@x.com" {
		t.Errorf("resolved identity = %+v", resolved)
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	router, _ := setupAuthRouter(t, tokens)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"no scheme", "sometoken"},
		{"empty token", "Bearer "},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	router, _ := setupAuthRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expiredTokens := service.NewTokenService(testSecret, -1*time.Second)
	router, _ := setupAuthRouter(t, service.NewTokenService(testSecret, time.Hour))

	token, err := expiredTokens.GenerateToken(uuid.New(), "alice", "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
