package service

import (
	"context"

	"github.com/starwars-api/backend/internal/db"
	"github.com/starwars-api/backend/internal/model"
)

// movieRepository - movies 테이블 접근 인터페이스 (*db.Postgres가 구현)
type movieRepository interface {
	CreateMovie(ctx context.Context, req model.CreateMovieRequest) (*model.Movie, error)
	GetMovieByID(ctx context.Context, movieID int64) (*model.Movie, error)
	ListMovies(ctx context.Context) ([]model.Movie, error)
	UpdateMovie(ctx context.Context, movieID int64, req model.UpdateMovieRequest) (*model.Movie, error)
	DeleteMovie(ctx context.Context, movieID int64) (bool, error)
}

type MoviesService struct {
	repo movieRepository
}

func NewMoviesService(repo movieRepository) *MoviesService {
	return &MoviesService{repo: repo}
}

// AddMovie - 영화 등록. 동일 title이 이미 있으면 ErrConflict.
func (s *MoviesService) AddMovie(ctx context.Context, req model.CreateMovieRequest) (*model.Movie, error) {
	if req.Title == "" {
		return nil, ErrInvalidInput
	}

	movie, err := s.repo.CreateMovie(ctx, req)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return movie, nil
}

func (s *MoviesService) FindAll(ctx context.Context) ([]model.Movie, error) {
	return s.repo.ListMovies(ctx)
}

func (s *MoviesService) FindOne(ctx context.Context, movieID int64) (*model.Movie, error) {
	movie, err := s.repo.GetMovieByID(ctx, movieID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *MoviesService) Update(ctx context.Context, movieID int64, req model.UpdateMovieRequest) (*model.Movie, error) {
	movie, err := s.repo.UpdateMovie(ctx, movieID, req)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return movie, nil
}

func (s *MoviesService) Remove(ctx context.Context, movieID int64) error {
	deleted, err := s.repo.DeleteMovie(ctx, movieID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
