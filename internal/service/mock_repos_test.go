package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"heektime/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── Mock SchoolRepository ──

type mockSchoolRepo struct {
	schools map[string]*model.School
}

func newMockSchoolRepo() *mockSchoolRepo {
	return &mockSchoolRepo{schools: make(map[string]*model.School)}
}

func (m *mockSchoolRepo) Create(_ context.Context, school *model.School) error {
	if school.SchoolID == "" {
		school.SchoolID = "school-" + school.Name
	}
	m.schools[school.SchoolID] = school
	return nil
}

func (m *mockSchoolRepo) GetByID(_ context.Context, id string) (*model.School, error) {
	if s, ok := m.schools[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSchoolRepo) ListNormal(_ context.Context) ([]model.School, error) {
	var result []model.School
	for _, s := range m.schools {
		if s.Status == model.StatusNormal {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSchoolRepo) Update(_ context.Context, school *model.School) error {
	m.schools[school.SchoolID] = school
	return nil
}

// ── Mock SemesterRepository ──

type mockSemesterRepo struct {
	semesters map[string]*model.Semester
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{semesters: make(map[string]*model.Semester)}
}

func (m *mockSemesterRepo) Create(_ context.Context, semester *model.Semester) error {
	if semester.SemesterID == "" {
		semester.SemesterID = fmt.Sprintf("sem-%d", len(m.semesters)+1)
	}
	m.semesters[semester.SemesterID] = semester
	return nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, id string) (*model.Semester, error) {
	if s, ok := m.semesters[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) ListBySchool(_ context.Context, schoolID string) ([]model.Semester, error) {
	var result []model.Semester
	for _, s := range m.semesters {
		if s.SchoolID == schoolID && s.Status == model.StatusNormal {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSemesterRepo) Update(_ context.Context, semester *model.Semester) error {
	m.semesters[semester.SemesterID] = semester
	return nil
}

// ── Mock TimetableRepository ──

type mockTimetableRepo struct {
	timetables map[string]*model.Timetable
	lectures   *mockUserLectureRepo
	semesters  *mockSemesterRepo
	idCounter  int
}

func newMockTimetableRepo(lectures *mockUserLectureRepo, semesters *mockSemesterRepo) *mockTimetableRepo {
	return &mockTimetableRepo{
		timetables: make(map[string]*model.Timetable),
		lectures:   lectures,
		semesters:  semesters,
	}
}

func (m *mockTimetableRepo) Create(_ context.Context, timetable *model.Timetable) error {
	if timetable.TimetableID == "" {
		m.idCounter++
		timetable.TimetableID = fmt.Sprintf("tt-%d", m.idCounter)
	}
	timetable.CreatedAt = time.Now()
	timetable.UpdatedAt = time.Now()
	m.timetables[timetable.TimetableID] = timetable
	return nil
}

func (m *mockTimetableRepo) GetByID(_ context.Context, id string) (*model.Timetable, error) {
	if t, ok := m.timetables[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimetableRepo) GetWithLectures(ctx context.Context, id string) (*model.Timetable, error) {
	t, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *t
	cp.Lectures, _ = m.lectures.ListByTimetable(ctx, id)
	if sem, err := m.semesters.GetByID(ctx, t.SemesterID); err == nil {
		cp.Semester = sem
	}
	return &cp, nil
}

func (m *mockTimetableRepo) ListByUser(_ context.Context, userID string) ([]model.Timetable, error) {
	var result []model.Timetable
	for _, t := range m.timetables {
		if t.UserID == userID {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (m *mockTimetableRepo) Update(_ context.Context, timetable *model.Timetable) error {
	timetable.UpdatedAt = time.Now()
	m.timetables[timetable.TimetableID] = timetable
	return nil
}

func (m *mockTimetableRepo) Delete(ctx context.Context, id string) error {
	lectures, _ := m.lectures.ListByTimetable(ctx, id)
	for _, l := range lectures {
		_ = m.lectures.Delete(ctx, l.LectureID)
	}
	delete(m.timetables, id)
	return nil
}

// ── Mock UserLectureRepository ──

type mockUserLectureRepo struct {
	lectures  map[string]*model.UserLecture
	idCounter int
}

func newMockUserLectureRepo() *mockUserLectureRepo {
	return &mockUserLectureRepo{lectures: make(map[string]*model.UserLecture)}
}

func (m *mockUserLectureRepo) Create(_ context.Context, lecture *model.UserLecture) error {
	if lecture.LectureID == "" {
		m.idCounter++
		lecture.LectureID = fmt.Sprintf("lec-%d", m.idCounter)
	}
	lecture.CreatedAt = time.Now()
	lecture.UpdatedAt = time.Now()
	m.lectures[lecture.LectureID] = lecture
	return nil
}

func (m *mockUserLectureRepo) GetByID(_ context.Context, id string) (*model.UserLecture, error) {
	if l, ok := m.lectures[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserLectureRepo) ListByTimetable(_ context.Context, timetableID string) ([]model.UserLecture, error) {
	var result []model.UserLecture
	for i := 1; i <= m.idCounter; i++ {
		if l, ok := m.lectures[fmt.Sprintf("lec-%d", i)]; ok && l.TimetableID == timetableID {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockUserLectureRepo) Delete(_ context.Context, id string) error {
	delete(m.lectures, id)
	return nil
}

// ── Mock ObjectStore ──

type mockObjectStore struct {
	objects   map[string][]byte
	errs      map[string]error
	downloads int
}

func newMockObjectStore() *mockObjectStore {
	return &mockObjectStore{
		objects: make(map[string][]byte),
		errs:    make(map[string]error),
	}
}

func (m *mockObjectStore) Download(_ context.Context, objectPath string) ([]byte, error) {
	m.downloads++
	if err, ok := m.errs[objectPath]; ok {
		return nil, err
	}
	if data, ok := m.objects[objectPath]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("객체 없음: %s", objectPath)
}

// ── Mock TokenBlacklist ──

type mockBlacklist struct {
	entries map[string]bool
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{entries: make(map[string]bool)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, _ time.Duration) error {
	m.entries[jti] = true
	return nil
}

func (m *mockBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	return m.entries[jti], nil
}
