package repository

import (
	"context"

	"gorm.io/gorm"

	"heektime/backend/internal/model"
)

// UserLectureRepository 시간표에 추가된 강의 데이터 접근 인터페이스
type UserLectureRepository interface {
	Create(ctx context.Context, lecture *model.UserLecture) error
	GetByID(ctx context.Context, id string) (*model.UserLecture, error)
	ListByTimetable(ctx context.Context, timetableID string) ([]model.UserLecture, error)
	Delete(ctx context.Context, id string) error
}

type userLectureRepo struct {
	db *gorm.DB
}

// NewUserLectureRepo UserLectureRepository 인스턴스를 만든다
func NewUserLectureRepo(db *gorm.DB) UserLectureRepository {
	return &userLectureRepo{db: db}
}

func (r *userLectureRepo) Create(ctx context.Context, lecture *model.UserLecture) error {
	return r.db.WithContext(ctx).Create(lecture).Error
}

func (r *userLectureRepo) GetByID(ctx context.Context, id string) (*model.UserLecture, error) {
	var lecture model.UserLecture
	err := r.db.WithContext(ctx).
		Where("lecture_id = ?", id).
		First(&lecture).Error
	if err != nil {
		return nil, err
	}
	return &lecture, nil
}

func (r *userLectureRepo) ListByTimetable(ctx context.Context, timetableID string) ([]model.UserLecture, error) {
	var lectures []model.UserLecture
	err := r.db.WithContext(ctx).
		Where("timetable_id = ?", timetableID).
		Order("created_at ASC").
		Find(&lectures).Error
	return lectures, err
}

func (r *userLectureRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("lecture_id = ?", id).
		Delete(&model.UserLecture{}).Error
}
