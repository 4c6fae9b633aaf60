package dto

import "heektime/backend/internal/schedule"

// CreateTimetableRequest 시간표 생성 요청
type CreateTimetableRequest struct {
	SemesterID string `json:"semesterId" binding:"required,uuid"`
	Title      string `json:"title" binding:"required,max=100"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=public private"`
}

// UpdateTimetableRequest 시간표 수정 요청. nil 필드는 유지.
type UpdateTimetableRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=100"`
	Visibility *string `json:"visibility" binding:"omitempty,oneof=public private"`
}

// AddLectureRequest 강의 추가 요청.
// Identifier 가 있으면 카탈로그 강의를, Lecture 가 있으면 직접 입력한
// 강의를 추가한다. 둘 중 하나는 필수.
type AddLectureRequest struct {
	Identifier *string               `json:"identifier"`
	Lecture    *schedule.BaseLecture `json:"lecture"`
}

// GridRequest 그리드 배치 요청 파라미터
type GridRequest struct {
	BeginHour         int     `form:"beginHour"`
	EndHour           int     `form:"endHour"`
	PreviewIdentifier *string `form:"preview"`
}

// LectureResponse 시간표에 추가된 강의 응답
type LectureResponse struct {
	LectureID string               `json:"lectureId"`
	Lecture   schedule.BaseLecture `json:"lecture"`
	TimeText  string               `json:"timeText"`
}
