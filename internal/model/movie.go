package model

import "time"

// Movie - movies 테이블 행 구조체
type Movie struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Director    *string           `json:"director"`
	ReleaseDate *string           `json:"release_date"`
	Description *string           `json:"description"`
	Properties  map[string]string `json:"properties" swaggertype:"object"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type CreateMovieRequest struct {
	Title       string            `json:"title" binding:"required"`
	Director    *string           `json:"director"`
	ReleaseDate *string           `json:"release_date"`
	Description *string           `json:"description"`
	Properties  map[string]string `json:"properties" swaggertype:"object"`
}

// UpdateMovieRequest - 부분 수정 요청. nil 필드는 변경하지 않는다.
type UpdateMovieRequest struct {
	Title       *string           `json:"title"`
	Director    *string           `json:"director"`
	ReleaseDate *string           `json:"release_date"`
	Description *string           `json:"description"`
	Properties  map[string]string `json:"properties" swaggertype:"object"`
}
