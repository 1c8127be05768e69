package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/starwars-api/backend/internal/model"
)

// movieCreator - 영화 저장 인터페이스 (MoviesService가 구현)
type movieCreator interface {
	AddMovie(ctx context.Context, req model.CreateMovieRequest) (*model.Movie, error)
}

// filmFetcher - 외부 Star Wars API 클라이언트 인터페이스
type filmFetcher interface {
	FetchFilms(ctx context.Context) ([]model.FilmRecord, error)
}

// StarwarsService - 외부 API의 영화 데이터를 주기적으로 가져와
// movies 테이블에 넣는 임포터. 서버 기동 시 1회 + interval마다 실행.
type StarwarsService struct {
	movies   movieCreator
	client   filmFetcher
	interval time.Duration
}

func NewStarwarsService(movies movieCreator, client filmFetcher, interval time.Duration) *StarwarsService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &StarwarsService{
		movies:   movies,
		client:   client,
		interval: interval,
	}
}

// Run - ctx 취소까지 주기 실행. 개별 run 실패는 로그만 남기고 다음 주기로 넘어간다.
func (s *StarwarsService) Run(ctx context.Context) {
	s.ImportFilms(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ImportFilms(ctx)
		}
	}
}

// ImportFilms - 1회 임포트 실행. (inserted, skipped) 건수 반환.
// 제목 없는 영화는 건너뛰고, 이미 존재하는 영화(409)는 skip으로 처리.
func (s *StarwarsService) ImportFilms(ctx context.Context) (int, int) {
	runID := uuid.NewString()

	films, err := s.client.FetchFilms(ctx)
	if err != nil {
		log.Printf("[Starwars] run=%s failed to fetch films: %v", runID, err)
		return 0, 0
	}
	if len(films) == 0 {
		log.Printf("[Starwars] run=%s no films found in response", runID)
		return 0, 0
	}

	log.Printf("[Starwars] run=%s fetched %d Star Wars films", runID, len(films))

	inserted, skipped := 0, 0
	for _, film := range films {
		props := film.Properties
		if props.Title == "" {
			log.Printf("[Starwars] run=%s skipping untitled movie", runID)
			skipped++
			continue
		}

		req := model.CreateMovieRequest{
			Title:       props.Title,
			Director:    optional(props.Director),
			ReleaseDate: optional(props.ReleaseDate),
			Description: optional(film.Description),
			Properties:  filmPropertiesMap(props),
		}

		if _, err := s.movies.AddMovie(ctx, req); err != nil {
			if errors.Is(err, ErrConflict) {
				log.Printf("[Starwars] run=%s movie already exists: %s", runID, props.Title)
				skipped++
				continue
			}
			log.Printf("[Starwars] run=%s error inserting movie %s: %v", runID, props.Title, err)
			skipped++
			continue
		}

		log.Printf("[Starwars] run=%s inserted movie: %s", runID, props.Title)
		inserted++
	}

	return inserted, skipped
}

func filmPropertiesMap(props model.FilmProperties) map[string]string {
	m := map[string]string{}
	if props.Producer != "" {
		m["producer"] = props.Producer
	}
	if props.OpeningCrawl != "" {
		m["opening_crawl"] = props.OpeningCrawl
	}
	if props.URL != "" {
		m["url"] = props.URL
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
