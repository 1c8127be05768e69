// Star Wars API (swapi.tech 호환)와 HTTP 통신하는 클라이언트 정의
//
// 환경변수:
//   - STARWARS_API: API base URL (예: https://www.swapi.tech/api)

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/starwars-api/backend/internal/config"
	"github.com/starwars-api/backend/internal/model"
)

type StarwarsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewStarwarsClient(cfg config.StarwarsConfig) *StarwarsClient {
	return &StarwarsClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// 임포터 활성화 여부 체크
func (c *StarwarsClient) IsConfigured() bool {
	return c.baseURL != ""
}

// GET /films - 전체 영화 목록 조회
func (c *StarwarsClient) FetchFilms(ctx context.Context) ([]model.FilmRecord, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/films", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to starwars api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("starwars api returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var filmsResp model.FilmsResponse
	if err := json.Unmarshal(body, &filmsResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return filmsResp.Result, nil
}
