package repository

import (
	"context"

	"gorm.io/gorm"

	"heektime/backend/internal/model"
)

// SchoolRepository 학교 데이터 접근 인터페이스
type SchoolRepository interface {
	Create(ctx context.Context, school *model.School) error
	GetByID(ctx context.Context, id string) (*model.School, error)
	// ListNormal 상태가 normal 인 학교만 이름순으로 돌려준다
	ListNormal(ctx context.Context) ([]model.School, error)
	Update(ctx context.Context, school *model.School) error
}

type schoolRepo struct {
	db *gorm.DB
}

// NewSchoolRepo SchoolRepository 인스턴스를 만든다
func NewSchoolRepo(db *gorm.DB) SchoolRepository {
	return &schoolRepo{db: db}
}

func (r *schoolRepo) Create(ctx context.Context, school *model.School) error {
	return r.db.WithContext(ctx).Create(school).Error
}

func (r *schoolRepo) GetByID(ctx context.Context, id string) (*model.School, error) {
	var school model.School
	err := r.db.WithContext(ctx).
		Where("school_id = ?", id).
		First(&school).Error
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *schoolRepo) ListNormal(ctx context.Context) ([]model.School, error) {
	var schools []model.School
	err := r.db.WithContext(ctx).
		Where("status = ?", model.StatusNormal).
		Order("name ASC").
		Find(&schools).Error
	return schools, err
}

func (r *schoolRepo) Update(ctx context.Context, school *model.School) error {
	return r.db.WithContext(ctx).Save(school).Error
}
