package service

import (
	"context"
	"errors"
	"testing"

	"github.com/starwars-api/backend/internal/model"
)

type fakeMovieCreator struct {
	existing map[string]bool
	added    []string
	failOn   string
}

func (f *fakeMovieCreator) AddMovie(ctx context.Context, req model.CreateMovieRequest) (*model.Movie, error) {
	if f.existing[req.Title] {
		return nil, ErrConflict
	}
	if req.Title == f.failOn {
		return nil, errors.New("db down")
	}
	f.added = append(f.added, req.Title)
	return &model.Movie{ID: int64(len(f.added)), Title: req.Title}, nil
}

type fakeFilmFetcher struct {
	films []model.FilmRecord
	err   error
}

func (f *fakeFilmFetcher) FetchFilms(ctx context.Context) ([]model.FilmRecord, error) {
	return f.films, f.err
}

func TestImportFilms(t *testing.T) {
	fetcher := &fakeFilmFetcher{films: []model.FilmRecord{
		{
			Description: "The first film",
			Properties:  model.FilmProperties{Title: "A New Hope", Director: "George Lucas", ReleaseDate: "1977-05-25", Producer: "Gary Kurtz"},
		},
		{
			// 제목 없는 레코드는 건너뛴다
			Description: "broken record",
		},
		{
			Description: "already imported",
			Properties:  model.FilmProperties{Title: "The Empire Strikes Back"},
		},
	}}
	creator := &fakeMovieCreator{existing: map[string]bool{"The Empire Strikes Back": true}}

	svc := NewStarwarsService(creator, fetcher, 0)
	inserted, skipped := svc.ImportFilms(context.Background())

	if inserted != 1 || skipped != 2 {
		t.Fatalf("ImportFilms() = (%d, %d), want (1, 2)", inserted, skipped)
	}
	if len(creator.added) != 1 || creator.added[0] != "A New Hope" {
		t.Fatalf("added = %v, want [A New Hope]", creator.added)
	}
}

func TestImportFilmsFetchFailure(t *testing.T) {
	creator := &fakeMovieCreator{}
	svc := NewStarwarsService(creator, &fakeFilmFetcher{err: errors.New("connection refused")}, 0)

	inserted, skipped := svc.ImportFilms(context.Background())
	if inserted != 0 || skipped != 0 {
		t.Fatalf("ImportFilms() = (%d, %d), want (0, 0)", inserted, skipped)
	}
	if len(creator.added) != 0 {
		t.Fatalf("added = %v, want none", creator.added)
	}
}

func TestImportFilmsInsertErrorDoesNotAbortRun(t *testing.T) {
	fetcher := &fakeFilmFetcher{films: []model.FilmRecord{
		{Properties: model.FilmProperties{Title: "Bad One"}},
		{Properties: model.FilmProperties{Title: "Good One"}},
	}}
	creator := &fakeMovieCreator{failOn: "Bad One"}

	svc := NewStarwarsService(creator, fetcher, 0)
	inserted, skipped := svc.ImportFilms(context.Background())

	if inserted != 1 || skipped != 1 {
		t.Fatalf("ImportFilms() = (%d, %d), want (1, 1)", inserted, skipped)
	}
}

func TestFilmPropertiesMap(t *testing.T) {
	props := model.FilmProperties{Producer: "Gary Kurtz", OpeningCrawl: "It is a period of civil war."}
	m := filmPropertiesMap(props)

	if m["producer"] != "Gary Kurtz" || m["opening_crawl"] != "It is a period of civil war." {
		t.Fatalf("filmPropertiesMap() = %v", m)
	}
	if filmPropertiesMap(model.FilmProperties{}) != nil {
		t.Fatal("empty properties should map to nil")
	}
}
