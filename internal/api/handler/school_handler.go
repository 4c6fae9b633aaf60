package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"heektime/backend/internal/service"
	"heektime/backend/pkg/response"
)

// SchoolHandler 학교/학기 모듈 HTTP 처리기
type SchoolHandler struct {
	schoolSvc service.SchoolService
}

// NewSchoolHandler SchoolHandler 를 만든다
func NewSchoolHandler(schoolSvc service.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolSvc: schoolSvc}
}

// ListSchools 학교 목록
// GET /api/v1/schools
func (h *SchoolHandler) ListSchools(c *gin.Context) {
	schools, err := h.schoolSvc.ListSchools(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, schools)
}

// GetSchool 학교 상세
// GET /api/v1/schools/:id
func (h *SchoolHandler) GetSchool(c *gin.Context) {
	school, err := h.schoolSvc.GetSchool(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			response.NotFound(c, 12001, "학교를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, school)
}

// ListSemesters 학교의 학기 목록
// GET /api/v1/schools/:id/semesters
func (h *SchoolHandler) ListSemesters(c *gin.Context) {
	schoolID := c.Param("id")

	semesters, err := h.schoolSvc.ListSemesters(c.Request.Context(), schoolID)
	if err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			response.NotFound(c, 12001, "학교를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, semesters)
}

// GetSemester 학기 상세 (교시 정의와 카탈로그 경로 포함)
// GET /api/v1/semesters/:id
func (h *SchoolHandler) GetSemester(c *gin.Context) {
	semester, err := h.schoolSvc.GetSemester(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSemesterNotFound) {
			response.NotFound(c, 12002, "학기를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, semester)
}
