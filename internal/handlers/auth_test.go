package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/raghhhava7/Devclimate-BE/internal/middleware"
	"github.com/raghhhava7/Devclimate-BE/internal/models"
	"github.com/raghhhava7/Devclimate-BE/internal/service"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	registerFunc func(ctx context.Context, username, email, password string) (*service.AuthResponse, error)
	loginFunc    func(ctx context.Context, email, password string) (*service.AuthResponse, error)
	profileFunc  func(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (*service.AuthResponse, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, username, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if m.profileFunc != nil {
		return m.profileFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

// stubAuthenticator resolves every request to a fixed identity.
type stubAuthenticator struct {
	identity *middleware.Identity
	err      error
}

func (s *stubAuthenticator) ResolveIdentity(c *gin.Context) (*middleware.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.identity, nil
}

// =============================================================================
// Test Helpers
// =============================================================================

func setupAuthRouter(t *testing.T, svc service.AuthService, authn middleware.Authenticator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(svc)
	router := gin.New()
	auth := router.Group("/api/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/profile", middleware.RequireAuth(authn), h.Profile)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body %q: %v", w.Body.String(), err)
	}
	return body
}

// =============================================================================
// Register
// =============================================================================

func TestRegisterHandler_Success(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	svc := &mockAuthService{
		registerFunc: func(ctx context.Context, username, email, password string) (*service.AuthResponse, error) {
			return &service.AuthResponse{Token: "tok-123", User: user}, nil
		},
	}
	router := setupAuthRouter(t, svc, &stubAuthenticator{})

	w := postJSON(router, "/api/auth/register", gin.H{
		"username": "alice", "email": "a@x.com", "password": "secret1",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["token"] != "tok-123" {
		t.Errorf("token = %v, want tok-123", body["token"])
	}
	userBody, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("user missing from body: %v", body)
	}
	if userBody["username"] != "alice" {
		t.Errorf("user.username = %v, want alice", userBody["username"])
	}
	if _, present := userBody["password_hash"]; present {
		t.Error("password hash leaked in response")
	}
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	router := setupAuthRouter(t, &mockAuthService{}, &stubAuthenticator{})

	cases := []gin.H{
		{},
		{"username": "alice"},
		{"username": "alice", "email": "a@x.com"},
		{"username": "alice", "email": "not-an-email", "password": "secret1"},
	}
	for _, body := range cases {
		w := postJSON(router, "/api/auth/register", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %v: status = %d, want 400", body, w.Code)
		}
	}
}

func TestRegisterHandler_WeakPassword(t *testing.T) {
	svc := &mockAuthService{
		registerFunc: func(ctx context.Context, username, email, password string) (*service.AuthResponse, error) {
			return nil, service.ErrWeakPassword
		},
	}
	router := setupAuthRouter(t, svc, &stubAuthenticator{})

	w := postJSON(router, "/api/auth/register", gin.H{
		"username": "alice", "email": "a@x.com", "password": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if decodeBody(t, w)["error"] == nil {
		t.Error("expected an error message in body")
	}
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	svc := &mockAuthService{
		registerFunc: func(ctx context.Context, username, email, password string) (*service.AuthResponse, error) {
			return nil, service.ErrDuplicateUser
		},
	}
	router := setupAuthRouter(t, svc, &stubAuthenticator{})

	w := postJSON(router, "/api/auth/register", gin.H{
		"username": "alice", "email": "a@x.com", "password": "secret1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRegisterHandler_InternalError(t *testing.T) {
	svc := &mockAuthService{
		registerFunc: func(ctx context.Context, username, email, password string) (*service.AuthResponse, error) {
			return nil, errors.New("db offline")
		},
	}
	router := setupAuthRouter(t, svc, &stubAuthenticator{})

	w := postJSON(router, "/api/auth/register", gin.H{
		"username": "alice", "email": "a@x.com", "password": "secret1",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

// =============================================================================
// Login
// =============================================================================

func TestLoginHandler_Success(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "alice", Email: "a@x.com"}
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.AuthResponse, error) {
			if email != "a@x.com" || password != "secret1" {
				t.Errorf("login called with %q/%q", email, password)
			}
			return &service.AuthResponse{Token: "tok-456", User: user}, nil
		},
	}
	router := setupAuthRouter(t, svc, &stubAuthenticator{})

	w := postJSON(router, "/api/auth/login", gin.H{"email": "a@x.com", "password": "secret1"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["token"] != "tok-456" {
		t.Error("expected token in body")
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.AuthResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}
	router := setupAuthRouter(t, svc, &stubAuthenticator{})

	w := postJSON(router, "/api/auth/login", gin.H{"email": "a@x.com", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	router := setupAuthRouter(t, &mockAuthService{}, &stubAuthenticator{})

	w := postJSON(router, "/api/auth/login", gin.H{"email": "a@x.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

// =============================================================================
// Profile
// =============================================================================

func TestProfileHandler_Success(t *testing.T) {
	userID := uuid.New()
	svc := &mockAuthService{
		profileFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			if id != userID {
				t.Errorf("profile looked up id %s, want %s", id, userID)
			}
			return &models.User{ID: userID, Username: "alice", Email: "a@x.com", PasswordHash: "hash"}, nil
		},
	}
	authn := &stubAuthenticator{identity: &middleware.Identity{UserID: userID, Username: "alice", Email: "a@x.com"}}
	router := setupAuthRouter(t, svc, authn)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	userBody, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("user missing from body: %v", body)
	}
	if userBody["email"] != "a@x.com" {
		t.Errorf("user.email = %v, want a@x.com", userBody["email"])
	}
	if _, present := userBody["password_hash"]; present {
		t.Error("password hash leaked in response")
	}
}

func TestProfileHandler_NotFound(t *testing.T) {
	svc := &mockAuthService{
		profileFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return nil, service.ErrUserNotFound
		},
	}
	authn := &stubAuthenticator{identity: &middleware.Identity{UserID: uuid.New()}}
	router := setupAuthRouter(t, svc, authn)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestProfileHandler_Unauthenticated(t *testing.T) {
	authn := &stubAuthenticator{err: middleware.ErrMissingCredential}
	router := setupAuthRouter(t, &mockAuthService{}, authn)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
