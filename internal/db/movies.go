package db

import (
	"context"
	"encoding/json"

	"github.com/starwars-api/backend/internal/model"
)

func (db *Postgres) EnsureMovieSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS movies (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL UNIQUE,
			director TEXT,
			release_date TEXT,
			description TEXT,
			properties JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS movies_title_idx ON movies(title)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (db *Postgres) CreateMovie(ctx context.Context, req model.CreateMovieRequest) (*model.Movie, error) {
	query := `
		INSERT INTO movies (title, director, release_date, description, properties, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, title, director, release_date, description, properties, created_at, updated_at
	`
	props, err := propertiesParam(req.Properties)
	if err != nil {
		return nil, err
	}

	var movie model.Movie
	err = db.Pool.QueryRow(ctx, query,
		req.Title,
		req.Director,
		req.ReleaseDate,
		req.Description,
		props,
	).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.ReleaseDate,
		&movie.Description,
		&movie.Properties,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (db *Postgres) GetMovieByID(ctx context.Context, movieID int64) (*model.Movie, error) {
	query := `
		SELECT id, title, director, release_date, description, properties, created_at, updated_at
		FROM movies
		WHERE id = $1
	`
	var movie model.Movie
	err := db.Pool.QueryRow(ctx, query, movieID).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.ReleaseDate,
		&movie.Description,
		&movie.Properties,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (db *Postgres) ListMovies(ctx context.Context) ([]model.Movie, error) {
	query := `
		SELECT id, title, director, release_date, description, properties, created_at, updated_at
		FROM movies
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Movie
	for rows.Next() {
		var movie model.Movie
		if err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Director,
			&movie.ReleaseDate,
			&movie.Description,
			&movie.Properties,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, movie)
	}

	if list == nil {
		list = []model.Movie{}
	}
	return list, rows.Err()
}

// UpdateMovie - 부분 수정. nil 필드는 기존 값 유지.
func (db *Postgres) UpdateMovie(ctx context.Context, movieID int64, req model.UpdateMovieRequest) (*model.Movie, error) {
	query := `
		UPDATE movies
		SET
			title = COALESCE($2, title),
			director = COALESCE($3, director),
			release_date = COALESCE($4, release_date),
			description = COALESCE($5, description),
			properties = COALESCE($6, properties),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, director, release_date, description, properties, created_at, updated_at
	`
	props, err := propertiesParam(req.Properties)
	if err != nil {
		return nil, err
	}

	var movie model.Movie
	err = db.Pool.QueryRow(ctx, query,
		movieID,
		req.Title,
		req.Director,
		req.ReleaseDate,
		req.Description,
		props,
	).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.ReleaseDate,
		&movie.Description,
		&movie.Properties,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// propertiesParam - nil map은 SQL NULL로 보내야 COALESCE가 기존 값을 유지한다
func propertiesParam(props map[string]string) ([]byte, error) {
	if props == nil {
		return nil, nil
	}
	return json.Marshal(props)
}

func (db *Postgres) DeleteMovie(ctx context.Context, movieID int64) (bool, error) {
	commandTag, err := db.Pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, movieID)
	if err != nil {
		return false, err
	}
	return commandTag.RowsAffected() > 0, nil
}
