package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/starwars-api/backend/internal/db"
	"github.com/starwars-api/backend/internal/model"
)

const defaultUserRole = "user"

// userRepository - users 테이블 접근 인터페이스 (*db.Postgres가 구현)
type userRepository interface {
	CreateUser(ctx context.Context, email, account, passwordHash, role string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, userID int64, email, account string) (*model.User, error)
}

type UsersService struct {
	repo userRepository
}

func NewUsersService(repo userRepository) *UsersService {
	return &UsersService{repo: repo}
}

func (s *UsersService) FindAll(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UsersService) FindOne(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UsersService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create - 신규 사용자 생성. 해싱은 호출자(AuthService) 책임이고
// 여기서는 저장만 담당한다. role은 'user' 고정.
func (s *UsersService) Create(ctx context.Context, email, account, passwordHash string) (*model.User, error) {
	user, err := s.repo.CreateUser(ctx, email, account, passwordHash, defaultUserRole)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// Update - email/account만 수정 가능
func (s *UsersService) Update(ctx context.Context, userID int64, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.UpdateUser(ctx, userID, req.Email, req.Account)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
