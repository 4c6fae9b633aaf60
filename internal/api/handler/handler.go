package handler

import "heektime/backend/internal/service"

// Handler 모든 Handler 의 집계 진입점
type Handler struct {
	Auth      *AuthHandler
	School    *SchoolHandler
	Timetable *TimetableHandler
	Export    *ExportHandler
}

// NewHandler Handler 집계를 만든다
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		School:    NewSchoolHandler(svc.School),
		Timetable: NewTimetableHandler(svc.Timetable),
		Export:    NewExportHandler(svc.Export),
	}
}
