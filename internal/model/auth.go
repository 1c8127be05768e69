package model

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Account  string `json:"account"`
	Password string `json:"password"`
}

// AuthUser - 토큰 검증 후 요청 컨텍스트에 붙는 인증 주체.
// 요청 단위로 생성되고 응답 후 버려진다 (서버 측 세션 없음).
type AuthUser struct {
	UserID int64
	Email  string
	Role   string
}

type User struct {
	ID           int64
	Email        string
	Account      string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserResponse - password_hash를 제외한 응답용 구조체
type UserResponse struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Account string `json:"account"`
	Role    string `json:"role"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:      u.ID,
		Email:   u.Email,
		Account: u.Account,
		Role:    u.Role,
	}
}

type UserEnvelope struct {
	Data UserResponse `json:"data"`
}

type UpdateUserRequest struct {
	Email   string `json:"email"`
	Account string `json:"account"`
}
