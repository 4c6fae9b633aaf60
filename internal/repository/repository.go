package repository

import "gorm.io/gorm"

// Repository 전체 Repository 묶음
type Repository struct {
	User        UserRepository
	School      SchoolRepository
	Semester    SemesterRepository
	Timetable   TimetableRepository
	UserLecture UserLectureRepository
}

// NewRepository Repository 묶음을 만든다
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		School:      NewSchoolRepo(db),
		Semester:    NewSemesterRepo(db),
		Timetable:   NewTimetableRepo(db),
		UserLecture: NewUserLectureRepo(db),
	}
}
