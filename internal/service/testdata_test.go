package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"heektime/backend/config"
	"heektime/backend/internal/model"
	"heektime/backend/internal/repository"
	"heektime/backend/internal/schedule"
)

// ── 공통 테스트 픽스처 ──

const testCatalogURL = "catalogs/2024-1.json"

var testCatalogJSON = []byte(`[
	{"identifier":"CS101","title":"자료구조","professor":"김교수",
	 "times":[{"weekday":0,"timeBegin":540,"timeEnd":630,"room":"101"},
	          {"weekday":2,"timeBegin":540,"timeEnd":630,"room":"101"}]},
	{"identifier":"CS202","title":"알고리즘","professor":"이교수",
	 "times":[{"weekday":0,"timeBegin":600,"timeEnd":690,"room":"202"}]},
	{"identifier":"MA101","title":"선형대수","professor":"박교수",
	 "times":[{"weekday":4,"timeBegin":660,"timeEnd":750,"room":"303"}]}
]`)

type testEnv struct {
	repo      *repository.Repository
	store     *mockObjectStore
	blacklist *mockBlacklist
	semesters *mockSemesterRepo
	lectures  *mockUserLectureRepo
	catalog   CatalogService
	timetable TimetableService
	export    ExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	lectures := newMockUserLectureRepo()
	semesters := newMockSemesterRepo()
	repo := &repository.Repository{
		User:        newMockUserRepo(),
		School:      newMockSchoolRepo(),
		Semester:    semesters,
		Timetable:   newMockTimetableRepo(lectures, semesters),
		UserLecture: lectures,
	}

	store := newMockObjectStore()
	store.objects[testCatalogURL] = testCatalogJSON

	logger := zap.NewNop()
	catalogCfg := &config.CatalogConfig{
		CacheTTL:        time.Minute,
		DownloadTimeout: time.Second,
	}
	catalog := NewCatalogService(catalogCfg, store, logger)
	t.Cleanup(catalog.Close)

	return &testEnv{
		repo:      repo,
		store:     store,
		blacklist: newMockBlacklist(),
		semesters: semesters,
		lectures:  lectures,
		catalog:   catalog,
		timetable: NewTimetableService(repo, catalog, logger),
		export:    NewExportService(repo, logger),
	}
}

// seedSemester 학기와 소속 학교를 만든다
func (e *testEnv) seedSemester(t *testing.T) *model.Semester {
	t.Helper()
	semester := &model.Semester{
		SemesterID: "sem-1",
		SchoolID:   "school-1",
		Year:       2024,
		Term:       "1학기",
		Periods: model.PeriodList{
			{Period: 1, TimeBegin: 540, TimeEnd: 590},
			{Period: 2, TimeBegin: 600, TimeEnd: 650},
		},
		LecturesURL: testCatalogURL,
		Status:      model.StatusNormal,
	}
	if err := e.semesters.Create(context.Background(), semester); err != nil {
		t.Fatalf("학기 생성 실패: %v", err)
	}
	return semester
}

// seedTimetable 소유자가 owner 인 시간표를 만든다
func (e *testEnv) seedTimetable(t *testing.T, owner, visibility string) *model.Timetable {
	t.Helper()
	e.seedSemester(t)
	timetable := &model.Timetable{
		UserID:     owner,
		SemesterID: "sem-1",
		Title:      "테스트 시간표",
		Visibility: visibility,
	}
	if err := e.repo.Timetable.Create(context.Background(), timetable); err != nil {
		t.Fatalf("시간표 생성 실패: %v", err)
	}
	return timetable
}

// addCatalogLecture 카탈로그 강의를 시간표에 추가한다
func (e *testEnv) addCatalogLecture(t *testing.T, timetableID, identifier string) {
	t.Helper()
	semester, err := e.semesters.GetByID(context.Background(), "sem-1")
	if err != nil {
		t.Fatalf("학기 조회 실패: %v", err)
	}
	lectures, _, err := e.catalog.Lectures(context.Background(), semester)
	if err != nil {
		t.Fatalf("카탈로그 조회 실패: %v", err)
	}
	for i := range lectures {
		if lectures[i].Identifier != nil && *lectures[i].Identifier == identifier {
			lecture := model.FromBase(timetableID, lectures[i].BaseLecture)
			if err := e.lectures.Create(context.Background(), &lecture); err != nil {
				t.Fatalf("강의 추가 실패: %v", err)
			}
			return
		}
	}
	t.Fatalf("카탈로그에 %s 가 없습니다", identifier)
}

func strPtr(s string) *string { return &s }

func weekdayPtr(w schedule.Weekday) *schedule.Weekday { return &w }

func intPtr(n int) *int { return &n }
