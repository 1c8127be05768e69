package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/starwars-api/backend/internal/config"
	"github.com/starwars-api/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// 회원가입 시 비밀번호 해싱에 쓰는 bcrypt work factor
const registerHashCost = 10

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenIssuance      = errors.New("token issuance failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrMisconfigured      = errors.New("auth config invalid")
)

// credentialStore - 사용자 저장소 인터페이스 (UsersService가 구현)
type credentialStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, email, account, passwordHash string) (*model.User, error)
}

type AuthService struct {
	store     credentialStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

// authClaims - 액세스 토큰 페이로드.
// sub/username/role 세 필드가 모두 있어야 유효한 토큰으로 취급한다.
type authClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(store credentialStore, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	tokenTTL, err := time.ParseDuration(cfg.JWTExpiresIn)
	if err != nil || tokenTTL <= 0 {
		return nil, fmt.Errorf("%w: invalid JWT_EXPIRES_IN", ErrMisconfigured)
	}

	return &AuthService{
		store:     store,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  tokenTTL,
	}, nil
}

// ValidateUser - email/password 검증 후 인증 주체 반환.
// 존재하지 않는 email과 틀린 password는 호출자가 구분할 수 없어야 한다.
func (s *AuthService) ValidateUser(ctx context.Context, email, password string) (*model.AuthUser, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &model.AuthUser{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

// Register - 비밀번호 해싱 후 사용자 생성은 UsersService에 위임
func (s *AuthService) Register(ctx context.Context, email, account, password string) (*model.User, error) {
	if email == "" || account == "" || len(password) < 6 {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), registerHashCost)
	if err != nil {
		return nil, err
	}

	return s.store.Create(ctx, email, account, string(hash))
}

// IssueToken - 인증 주체를 1시간 만료 HS256 토큰으로 서명
func (s *AuthService) IssueToken(user *model.AuthUser) (string, error) {
	now := time.Now()
	claims := authClaims{
		Username: user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenIssuance, err)
	}

	return signed, nil
}

// ParseAccessToken - 서명/만료/페이로드 형태를 검증하고 인증 주체를 복원.
// 만료와 그 외 실패는 내부적으로만 구분한다 (외부 응답은 동일한 401).
func (s *AuthService) ParseAccessToken(tokenStr string) (*model.AuthUser, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	// 페이로드 불변식: sub, username, role 모두 있어야 한다
	if claims.Subject == "" || claims.Username == "" || claims.Role == "" {
		return nil, ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	return &model.AuthUser{
		UserID: userID,
		Email:  claims.Username,
		Role:   claims.Role,
	}, nil
}

// TokenTTL - 토큰 만료 기간 (정보용)
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}
