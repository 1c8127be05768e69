package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/starwars-api/backend/internal/config"
	"github.com/starwars-api/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key"

type fakeCredentialStore struct {
	users   map[string]*model.User
	lookups []string

	createdEmail   string
	createdAccount string
	createdHash    string
}

func (f *fakeCredentialStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.lookups = append(f.lookups, email)
	user, ok := f.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func (f *fakeCredentialStore) Create(ctx context.Context, email, account, passwordHash string) (*model.User, error) {
	if _, exists := f.users[email]; exists {
		return nil, ErrConflict
	}
	f.createdEmail = email
	f.createdAccount = account
	f.createdHash = passwordHash
	return &model.User{ID: 1, Email: email, Account: account, PasswordHash: passwordHash, Role: "user"}, nil
}

func newTestAuthService(t *testing.T, store *fakeCredentialStore) *AuthService {
	t.Helper()
	svc, err := NewAuthService(store, config.AuthConfig{JWTSecret: testSecret, JWTExpiresIn: "1h"})
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}
	return svc
}

func storeWithUser(t *testing.T, id int64, email, password, role string) *fakeCredentialStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &fakeCredentialStore{users: map[string]*model.User{
		email: {ID: id, Email: email, Account: "tester", PasswordHash: string(hash), Role: role},
	}}
}

func TestLoginIssueParseRoundTrip(t *testing.T) {
	store := storeWithUser(t, 7, "test@example.com", "password123", "user")
	svc := newTestAuthService(t, store)

	user, err := svc.ValidateUser(context.Background(), "test@example.com", "password123")
	if err != nil {
		t.Fatalf("ValidateUser() error = %v", err)
	}

	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	parsed, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken() error = %v", err)
	}

	if parsed.UserID != 7 || parsed.Email != "test@example.com" || parsed.Role != "user" {
		t.Fatalf("ParseAccessToken() = %+v, want {7 test@example.com user}", parsed)
	}
}

func TestValidateUserUniformFailure(t *testing.T) {
	store := storeWithUser(t, 1, "known@example.com", "correct-password", "user")
	svc := newTestAuthService(t, store)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown-email", email: "nobody@example.com", password: "correct-password"},
		{name: "wrong-password", email: "known@example.com", password: "wrong-password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateUser(context.Background(), tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("ValidateUser() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}

	// 요청된 email 외의 계정 해시와는 비교한 적이 없어야 한다
	for _, email := range store.lookups {
		if email != "nobody@example.com" && email != "known@example.com" {
			t.Fatalf("unexpected lookup for %q", email)
		}
	}
}

func TestParseExpiredToken(t *testing.T) {
	svc := newTestAuthService(t, &fakeCredentialStore{})

	// 서명은 유효하지만 만료된 토큰을 직접 생성
	now := time.Now()
	claims := authClaims{
		Username: "test@example.com",
		Role:     "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("ParseAccessToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestParseTamperedSignature(t *testing.T) {
	store := storeWithUser(t, 7, "test@example.com", "password123", "user")
	svc := newTestAuthService(t, store)

	token, err := svc.IssueToken(&model.AuthUser{UserID: 7, Email: "test@example.com", Role: "user"})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}

	// 서명 세그먼트 한 글자 변조
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.ParseAccessToken(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ParseAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestParsePayloadShapeInvariant(t *testing.T) {
	svc := newTestAuthService(t, &fakeCredentialStore{})
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{name: "missing-sub", claims: jwt.MapClaims{"username": "a@b.com", "role": "user", "exp": exp.Unix()}},
		{name: "missing-username", claims: jwt.MapClaims{"sub": "7", "role": "user", "exp": exp.Unix()}},
		{name: "missing-role", claims: jwt.MapClaims{"sub": "7", "username": "a@b.com", "exp": exp.Unix()}},
		{name: "non-numeric-sub", claims: jwt.MapClaims{"sub": "abc", "username": "a@b.com", "role": "user", "exp": exp.Unix()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(testSecret))
			if err != nil {
				t.Fatalf("sign: %v", err)
			}

			// 서명이 유효해도 페이로드 형태가 틀리면 거부
			if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrTokenInvalid) {
				t.Fatalf("ParseAccessToken() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}

func TestParseWrongSecret(t *testing.T) {
	svc := newTestAuthService(t, &fakeCredentialStore{})

	other, err := NewAuthService(&fakeCredentialStore{}, config.AuthConfig{JWTSecret: "another-secret", JWTExpiresIn: "1h"})
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}

	token, err := other.IssueToken(&model.AuthUser{UserID: 1, Email: "a@b.com", Role: "user"})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ParseAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	store := &fakeCredentialStore{users: map[string]*model.User{}}
	svc := newTestAuthService(t, store)

	user, err := svc.Register(context.Background(), "new@example.com", "newbie", "strongPassword123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.Role != "user" {
		t.Fatalf("Register() role = %q, want user", user.Role)
	}
	if store.createdHash == "strongPassword123" {
		t.Fatal("Register() stored the plaintext password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(store.createdHash), []byte("strongPassword123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(store.createdHash))
	if err != nil || cost != registerHashCost {
		t.Fatalf("hash cost = %d (err=%v), want %d", cost, err, registerHashCost)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := storeWithUser(t, 1, "taken@example.com", "whatever1", "user")
	svc := newTestAuthService(t, store)

	if _, err := svc.Register(context.Background(), "taken@example.com", "dupe", "strongPassword123"); !errors.Is(err, ErrConflict) {
		t.Fatalf("Register() error = %v, want ErrConflict", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newTestAuthService(t, &fakeCredentialStore{users: map[string]*model.User{}})

	if _, err := svc.Register(context.Background(), "a@b.com", "acc", "short"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Register() error = %v, want ErrInvalidInput", err)
	}
}

func TestNewAuthServiceConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.AuthConfig
	}{
		{name: "missing-secret", cfg: config.AuthConfig{JWTExpiresIn: "1h"}},
		{name: "bad-ttl", cfg: config.AuthConfig{JWTSecret: "s", JWTExpiresIn: "soon"}},
		{name: "negative-ttl", cfg: config.AuthConfig{JWTSecret: "s", JWTExpiresIn: "-1h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAuthService(&fakeCredentialStore{}, tt.cfg); !errors.Is(err, ErrMisconfigured) {
				t.Fatalf("NewAuthService() error = %v, want ErrMisconfigured", err)
			}
		})
	}
}
