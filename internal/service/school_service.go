package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"heektime/backend/internal/model"
	"heektime/backend/internal/repository"
)

var (
	ErrSchoolNotFound   = errors.New("학교를 찾을 수 없습니다")
	ErrSemesterNotFound = errors.New("학기를 찾을 수 없습니다")
)

// SchoolService 학교/학기 조회 업무 인터페이스
type SchoolService interface {
	// ListSchools 상태가 normal 인 학교 목록
	ListSchools(ctx context.Context) ([]model.School, error)
	GetSchool(ctx context.Context, schoolID string) (*model.School, error)
	// ListSemesters 학교의 normal 학기 목록
	ListSemesters(ctx context.Context, schoolID string) ([]model.Semester, error)
	GetSemester(ctx context.Context, semesterID string) (*model.Semester, error)
}

type schoolService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSchoolService SchoolService 인스턴스를 만든다
func NewSchoolService(repo *repository.Repository, logger *zap.Logger) SchoolService {
	return &schoolService{repo: repo, logger: logger}
}

func (s *schoolService) ListSchools(ctx context.Context) ([]model.School, error) {
	schools, err := s.repo.School.ListNormal(ctx)
	if err != nil {
		s.logger.Error("학교 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	return schools, nil
}

func (s *schoolService) GetSchool(ctx context.Context, schoolID string) (*model.School, error) {
	school, err := s.repo.School.GetByID(ctx, schoolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		s.logger.Error("학교 조회 실패", zap.Error(err))
		return nil, err
	}
	if school.Status != model.StatusNormal {
		return nil, ErrSchoolNotFound
	}
	return school, nil
}

func (s *schoolService) ListSemesters(ctx context.Context, schoolID string) ([]model.Semester, error) {
	if _, err := s.repo.School.GetByID(ctx, schoolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		s.logger.Error("학교 조회 실패", zap.Error(err))
		return nil, err
	}

	semesters, err := s.repo.Semester.ListBySchool(ctx, schoolID)
	if err != nil {
		s.logger.Error("학기 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	return semesters, nil
}

func (s *schoolService) GetSemester(ctx context.Context, semesterID string) (*model.Semester, error) {
	semester, err := s.repo.Semester.GetByID(ctx, semesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("학기 조회 실패", zap.Error(err))
		return nil, err
	}
	return semester, nil
}
