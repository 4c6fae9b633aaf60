package repository

import (
	"context"

	"gorm.io/gorm"

	"heektime/backend/internal/model"
)

// TimetableRepository 시간표 데이터 접근 인터페이스
type TimetableRepository interface {
	Create(ctx context.Context, timetable *model.Timetable) error
	GetByID(ctx context.Context, id string) (*model.Timetable, error)
	// GetWithLectures 시간표와 추가된 강의를 함께 읽는다
	GetWithLectures(ctx context.Context, id string) (*model.Timetable, error)
	ListByUser(ctx context.Context, userID string) ([]model.Timetable, error)
	Update(ctx context.Context, timetable *model.Timetable) error
	Delete(ctx context.Context, id string) error
}

type timetableRepo struct {
	db *gorm.DB
}

// NewTimetableRepo TimetableRepository 인스턴스를 만든다
func NewTimetableRepo(db *gorm.DB) TimetableRepository {
	return &timetableRepo{db: db}
}

func (r *timetableRepo) Create(ctx context.Context, timetable *model.Timetable) error {
	return r.db.WithContext(ctx).Create(timetable).Error
}

func (r *timetableRepo) GetByID(ctx context.Context, id string) (*model.Timetable, error) {
	var timetable model.Timetable
	err := r.db.WithContext(ctx).
		Where("timetable_id = ?", id).
		First(&timetable).Error
	if err != nil {
		return nil, err
	}
	return &timetable, nil
}

func (r *timetableRepo) GetWithLectures(ctx context.Context, id string) (*model.Timetable, error) {
	var timetable model.Timetable
	err := r.db.WithContext(ctx).
		Preload("Lectures").
		Preload("Semester").
		Where("timetable_id = ?", id).
		First(&timetable).Error
	if err != nil {
		return nil, err
	}
	return &timetable, nil
}

func (r *timetableRepo) ListByUser(ctx context.Context, userID string) ([]model.Timetable, error) {
	var timetables []model.Timetable
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&timetables).Error
	return timetables, err
}

func (r *timetableRepo) Update(ctx context.Context, timetable *model.Timetable) error {
	return r.db.WithContext(ctx).Save(timetable).Error
}

func (r *timetableRepo) Delete(ctx context.Context, id string) error {
	// 추가된 강의도 함께 지운다
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("timetable_id = ?", id).
			Delete(&model.UserLecture{}).Error; err != nil {
			return err
		}
		return tx.Where("timetable_id = ?", id).
			Delete(&model.Timetable{}).Error
	})
}
