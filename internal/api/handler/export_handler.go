package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"heektime/backend/internal/service"
	"heektime/backend/pkg/response"
)

const (
	contentTypeICS  = "text/calendar; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler 내보내기 모듈 HTTP 처리기
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 를 만든다
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportICS iCalendar 내보내기
// GET /api/v1/timetables/:id/export.ics
func (h *ExportHandler) ExportICS(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportICS(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, buf.Bytes(), filename, contentTypeICS)
}

// ExportXLSX Excel 내보내기
// GET /api/v1/timetables/:id/export.xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportXLSX(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.sendFile(c, buf.Bytes(), filename, contentTypeXLSX)
}

func (h *ExportHandler) sendFile(c *gin.Context, data []byte, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}

func (h *ExportHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimetableNotFound):
		response.NotFound(c, 13001, "시간표를 찾을 수 없습니다")
	case errors.Is(err, service.ErrTimetableForbidden):
		response.Forbidden(c, 13002, "이 시간표에 접근할 권한이 없습니다")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 12002, "학기를 찾을 수 없습니다")
	case errors.Is(err, service.ErrExportNoLectures):
		response.BadRequest(c, 15001, "시간표에 내보낼 강의가 없습니다")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
