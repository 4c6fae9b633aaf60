package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"heektime/backend/internal/dto"
	"heektime/backend/internal/schedule"
	"heektime/backend/internal/service"
	"heektime/backend/pkg/response"
)

// TimetableHandler 시간표 모듈 HTTP 처리기
type TimetableHandler struct {
	timetableSvc service.TimetableService
}

// NewTimetableHandler TimetableHandler 를 만든다
func NewTimetableHandler(timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// Create 시간표 생성
// POST /api/v1/timetables
func (h *TimetableHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	timetable, err := h.timetableSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, timetable)
}

// List 내 시간표 목록
// GET /api/v1/timetables
func (h *TimetableHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	timetables, err := h.timetableSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, timetables)
}

// Get 시간표 상세 (강의 포함)
// GET /api/v1/timetables/:id
func (h *TimetableHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	timetable, err := h.timetableSvc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, timetable)
}

// Update 시간표 수정
// PUT /api/v1/timetables/:id
func (h *TimetableHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	timetable, err := h.timetableSvc.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, timetable)
}

// Delete 시간표 삭제 (강의 포함)
// DELETE /api/v1/timetables/:id
func (h *TimetableHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.timetableSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// AddLecture 강의 추가 (카탈로그 식별자 또는 직접 입력)
// POST /api/v1/timetables/:id/lectures
func (h *TimetableHandler) AddLecture(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AddLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}
	if req.Identifier == nil && req.Lecture == nil {
		response.BadRequest(c, 10001, "identifier 또는 lecture 중 하나는 필수입니다")
		return
	}

	lecture, err := h.timetableSvc.AddLecture(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, lecture)
}

// RemoveLecture 강의 제거
// DELETE /api/v1/timetables/:id/lectures/:lectureId
func (h *TimetableHandler) RemoveLecture(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	err := h.timetableSvc.RemoveLecture(c.Request.Context(), userID, c.Param("id"), c.Param("lectureId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// Grid 요일 × 시간 그리드 배치
// GET /api/v1/timetables/:id/grid?beginHour=9&endHour=19&preview=CS101
func (h *TimetableHandler) Grid(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.GridRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	grid, err := h.timetableSvc.Grid(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, grid)
}

// Search 카탈로그 검색 + 추가 가능 상태 판정
// POST /api/v1/timetables/:id/search
func (h *TimetableHandler) Search(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}
	req.TimetableID = c.Param("id")

	result, err := h.timetableSvc.Search(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *TimetableHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimetableNotFound):
		response.NotFound(c, 13001, "시간표를 찾을 수 없습니다")
	case errors.Is(err, service.ErrTimetableForbidden):
		response.Forbidden(c, 13002, "이 시간표에 접근할 권한이 없습니다")
	case errors.Is(err, service.ErrLectureNotFound):
		response.NotFound(c, 13003, "강의를 찾을 수 없습니다")
	case errors.Is(err, service.ErrLectureAlreadyAdded):
		response.Conflict(c, 13004, "이미 추가된 강의입니다")
	case errors.Is(err, service.ErrLectureOverlap):
		response.Conflict(c, 13005, "기존 강의와 시간이 겹칩니다")
	case errors.Is(err, service.ErrLectureInvalid):
		response.BadRequest(c, 13006, "강의 정보가 올바르지 않습니다")
	case errors.Is(err, service.ErrCatalogLectureNotFound):
		response.NotFound(c, 13007, "카탈로그에서 강의를 찾을 수 없습니다")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 12002, "학기를 찾을 수 없습니다")
	case errors.Is(err, service.ErrCatalogUnavailable):
		response.Error(c, http.StatusServiceUnavailable, 14001, "강의 카탈로그를 불러올 수 없습니다")
	case errors.Is(err, schedule.ErrFilterSuperseded):
		// 같은 시간표에 더 새로운 검색이 제출됨. 클라이언트는 이 응답을 버리면 된다.
		response.Conflict(c, 14002, "검색이 더 새로운 요청으로 대체되었습니다")
	case errors.Is(err, schedule.ErrFilterClosed):
		response.Error(c, http.StatusServiceUnavailable, 14003, "검색 세션이 종료되었습니다")
	default:
		response.InternalError(c)
	}
}
