package repository

import (
	"context"

	"gorm.io/gorm"

	"heektime/backend/internal/model"
)

// SemesterRepository 학기 데이터 접근 인터페이스
type SemesterRepository interface {
	Create(ctx context.Context, semester *model.Semester) error
	GetByID(ctx context.Context, id string) (*model.Semester, error)
	// ListBySchool 상태가 normal 인 학기만 연도/구분 내림차순으로 돌려준다
	ListBySchool(ctx context.Context, schoolID string) ([]model.Semester, error)
	Update(ctx context.Context, semester *model.Semester) error
}

type semesterRepo struct {
	db *gorm.DB
}

// NewSemesterRepo SemesterRepository 인스턴스를 만든다
func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) Create(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Create(semester).Error
}

func (r *semesterRepo) GetByID(ctx context.Context, id string) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("semester_id = ?", id).
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) ListBySchool(ctx context.Context, schoolID string) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).
		Where("school_id = ? AND status = ?", schoolID, model.StatusNormal).
		Order("year DESC, term DESC").
		Find(&semesters).Error
	return semesters, err
}

func (r *semesterRepo) Update(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Save(semester).Error
}
