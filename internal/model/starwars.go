package model

// ============================================================================
// Star Wars API (swapi.tech) 응답 모델
// ============================================================================

// FilmsResponse - GET {STARWARS_API}/films 응답 구조체
type FilmsResponse struct {
	Message string       `json:"message"`
	Result  []FilmRecord `json:"result"`
}

// FilmRecord - 개별 영화 레코드
type FilmRecord struct {
	UID         string         `json:"uid"`
	Description string         `json:"description"`
	Properties  FilmProperties `json:"properties"`
}

// FilmProperties - 영화 상세 속성
type FilmProperties struct {
	Title        string `json:"title"`
	EpisodeID    int    `json:"episode_id"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"`
	OpeningCrawl string `json:"opening_crawl"`
	URL          string `json:"url"`
}
