package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/starwars-api/backend/internal/config"
	"github.com/starwars-api/backend/internal/model"
	"github.com/starwars-api/backend/internal/service"
	"golang.org/x/crypto/bcrypt"
)

type memoryCredentialStore struct {
	users map[string]*model.User
}

func (f *memoryCredentialStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, service.ErrNotFound
	}
	return user, nil
}

func (f *memoryCredentialStore) Create(ctx context.Context, email, account, passwordHash string) (*model.User, error) {
	if _, exists := f.users[email]; exists {
		return nil, service.ErrConflict
	}
	user := &model.User{ID: int64(len(f.users) + 1), Email: email, Account: account, PasswordHash: passwordHash, Role: "user"}
	f.users[email] = user
	return user, nil
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *memoryCredentialStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	store := &memoryCredentialStore{users: map[string]*model.User{
		"test@example.com": {ID: 7, Email: "test@example.com", Account: "tester", PasswordHash: string(hash), Role: "user"},
	}}

	authSvc, err := service.NewAuthService(store, config.AuthConfig{JWTSecret: "handler-test-secret", JWTExpiresIn: "1h"})
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}

	h := NewAuthHandler(authSvc)
	router := gin.New()
	router.POST("/auth/login", h.Login)
	router.POST("/auth/register", h.Register)
	return router, store
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "success", body: `{"email":"test@example.com","password":"password123"}`, want: http.StatusOK},
		{name: "wrong-password", body: `{"email":"test@example.com","password":"nope12345"}`, want: http.StatusUnauthorized},
		{name: "unknown-email", body: `{"email":"ghost@example.com","password":"password123"}`, want: http.StatusUnauthorized},
		{name: "malformed-body", body: `{`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(router, "/auth/login", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}

			if tt.want == http.StatusOK {
				var res model.LoginResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil || res.AccessToken == "" {
					t.Fatalf("expected access_token in response, got %s", rec.Body.String())
				}
			}
		})
	}

	// 실패 사유와 무관하게 동일한 메시지
	wrongPass := postJSON(router, "/auth/login", `{"email":"test@example.com","password":"nope12345"}`)
	unknown := postJSON(router, "/auth/login", `{"email":"ghost@example.com","password":"password123"}`)
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Fatalf("login failure bodies differ: %s vs %s", wrongPass.Body.String(), unknown.Body.String())
	}
}

func TestRegisterEndpoint(t *testing.T) {
	router, store := newAuthTestRouter(t)

	rec := postJSON(router, "/auth/register", `{"email":"new@example.com","account":"newbie","password":"strongPassword123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var res model.UserEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Data.Email != "new@example.com" || res.Data.Role != "user" {
		t.Fatalf("unexpected user data: %+v", res.Data)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("register response leaks password material: %s", rec.Body.String())
	}

	if store.users["new@example.com"].PasswordHash == "strongPassword123" {
		t.Fatal("password stored in plaintext")
	}

	// 중복 email은 409
	rec = postJSON(router, "/auth/register", `{"email":"new@example.com","account":"again","password":"strongPassword123"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}
