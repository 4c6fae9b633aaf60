package service

import (
	"go.uber.org/zap"

	"heektime/backend/config"
	"heektime/backend/internal/repository"
	"heektime/backend/pkg/jwt"
)

// Service 전체 Service 묶음
type Service struct {
	Auth      AuthService
	School    SchoolService
	Catalog   CatalogService
	Timetable TimetableService
	Export    ExportService
}

// NewService Service 묶음을 만든다
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	store ObjectStore,
	logger *zap.Logger,
) *Service {
	catalog := NewCatalogService(&cfg.Catalog, store, logger)
	return &Service{
		Auth:      NewAuthService(cfg, repo, jwtMgr, blacklist, logger),
		School:    NewSchoolService(repo, logger),
		Catalog:   catalog,
		Timetable: NewTimetableService(repo, catalog, logger),
		Export:    NewExportService(repo, logger),
	}
}
