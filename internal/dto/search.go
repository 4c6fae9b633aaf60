package dto

import "heektime/backend/internal/schedule"

// SearchRequest 카탈로그 검색 요청. TimetableID 는 경로 파라미터에서 채워진다.
type SearchRequest struct {
	TimetableID string             `json:"-"`
	Keyword     string             `json:"keyword"`
	EmptyOnly   bool               `json:"emptyOnly"`
	Weekdays    []schedule.Weekday `json:"weekdays"`
}

// SearchResult 검색 결과 항목
type SearchResult struct {
	Lecture  schedule.BaseLecture `json:"lecture"`
	TimeText string               `json:"timeText"`
	AddMode  schedule.AddMode     `json:"addMode"`
}

// SearchResponse 검색 응답
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	// Skipped 카탈로그 해석 과정에서 건너뛴 항목 수
	Skipped int `json:"skipped"`
}
