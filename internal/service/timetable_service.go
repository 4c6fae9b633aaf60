package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"heektime/backend/internal/dto"
	"heektime/backend/internal/model"
	"heektime/backend/internal/repository"
	"heektime/backend/internal/schedule"
)

// ── 시간표 모듈 업무 오류 ──

var (
	ErrTimetableNotFound      = errors.New("시간표를 찾을 수 없습니다")
	ErrTimetableForbidden     = errors.New("이 시간표에 접근할 권한이 없습니다")
	ErrLectureNotFound        = errors.New("강의를 찾을 수 없습니다")
	ErrLectureAlreadyAdded    = errors.New("이미 추가된 강의입니다")
	ErrLectureOverlap         = errors.New("기존 강의와 시간이 겹칩니다")
	ErrLectureInvalid         = errors.New("강의 정보가 올바르지 않습니다")
	ErrCatalogLectureNotFound = errors.New("카탈로그에서 강의를 찾을 수 없습니다")
)

// TimetableService 시간표 업무 인터페이스
type TimetableService interface {
	Create(ctx context.Context, userID string, req *dto.CreateTimetableRequest) (*model.Timetable, error)
	Get(ctx context.Context, userID, timetableID string) (*model.Timetable, error)
	List(ctx context.Context, userID string) ([]model.Timetable, error)
	Update(ctx context.Context, userID, timetableID string, req *dto.UpdateTimetableRequest) (*model.Timetable, error)
	Delete(ctx context.Context, userID, timetableID string) error

	// AddLecture 카탈로그 강의 또는 직접 입력 강의를 시간표에 추가한다.
	// 추가 시점에 필드를 복사하므로 이후 카탈로그 변경의 영향을 받지 않는다.
	AddLecture(ctx context.Context, userID, timetableID string, req *dto.AddLectureRequest) (*dto.LectureResponse, error)
	RemoveLecture(ctx context.Context, userID, timetableID, lectureID string) error

	// Grid 시간표를 요일 × 시간 그리드로 배치한다. preview 식별자가 있으면
	// 해당 카탈로그 강의를 미리보기 블록으로 함께 배치한다.
	Grid(ctx context.Context, userID, timetableID string, req *dto.GridRequest) (*schedule.Grid, error)

	// Search 카탈로그를 검색하고 각 결과에 추가 가능 상태를 붙인다
	Search(ctx context.Context, userID string, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type timetableService struct {
	repo    *repository.Repository
	catalog CatalogService
	logger  *zap.Logger
}

// NewTimetableService TimetableService 인스턴스를 만든다
func NewTimetableService(repo *repository.Repository, catalog CatalogService, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, catalog: catalog, logger: logger}
}

func (s *timetableService) Create(ctx context.Context, userID string, req *dto.CreateTimetableRequest) (*model.Timetable, error) {
	semester, err := s.repo.Semester.GetByID(ctx, req.SemesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("학기 조회 실패", zap.Error(err))
		return nil, err
	}
	if semester.Status != model.StatusNormal {
		return nil, ErrSemesterNotFound
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = model.VisibilityPrivate
	}

	timetable := &model.Timetable{
		UserID:     userID,
		SemesterID: req.SemesterID,
		Title:      req.Title,
		Visibility: visibility,
	}
	if err := s.repo.Timetable.Create(ctx, timetable); err != nil {
		s.logger.Error("시간표 생성 실패", zap.Error(err))
		return nil, err
	}
	return timetable, nil
}

// Get 시간표 상세. 강의 목록과 학기를 함께 돌려준다.
func (s *timetableService) Get(ctx context.Context, userID, timetableID string) (*model.Timetable, error) {
	timetable, err := s.repo.Timetable.GetWithLectures(ctx, timetableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableNotFound
		}
		s.logger.Error("시간표 조회 실패", zap.Error(err))
		return nil, err
	}
	if !timetable.ViewableBy(userID) {
		return nil, ErrTimetableForbidden
	}
	return timetable, nil
}

func (s *timetableService) List(ctx context.Context, userID string) ([]model.Timetable, error) {
	timetables, err := s.repo.Timetable.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("시간표 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	return timetables, nil
}

func (s *timetableService) Update(ctx context.Context, userID, timetableID string, req *dto.UpdateTimetableRequest) (*model.Timetable, error) {
	timetable, err := s.getEditable(ctx, userID, timetableID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		timetable.Title = *req.Title
	}
	if req.Visibility != nil {
		timetable.Visibility = *req.Visibility
	}

	if err := s.repo.Timetable.Update(ctx, timetable); err != nil {
		s.logger.Error("시간표 수정 실패", zap.Error(err))
		return nil, err
	}
	return timetable, nil
}

func (s *timetableService) Delete(ctx context.Context, userID, timetableID string) error {
	if _, err := s.getEditable(ctx, userID, timetableID); err != nil {
		return err
	}
	if err := s.repo.Timetable.Delete(ctx, timetableID); err != nil {
		s.logger.Error("시간표 삭제 실패", zap.Error(err))
		return err
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// AddLecture — 강의 추가
// ═══════════════════════════════════════════════════════════

func (s *timetableService) AddLecture(ctx context.Context, userID, timetableID string, req *dto.AddLectureRequest) (*dto.LectureResponse, error) {
	timetable, err := s.getEditable(ctx, userID, timetableID)
	if err != nil {
		return nil, err
	}

	candidate, err := s.resolveCandidate(ctx, timetable, req)
	if err != nil {
		return nil, err
	}

	added, err := s.repo.UserLecture.ListByTimetable(ctx, timetableID)
	if err != nil {
		s.logger.Error("강의 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	addedBase := make([]schedule.BaseLecture, len(added))
	var filled []schedule.LectureTime
	for i := range added {
		addedBase[i] = added[i].ToBase()
		filled = append(filled, addedBase[i].Times...)
	}

	switch schedule.ResolveAddMode(true, false, *candidate, addedBase, filled) {
	case schedule.AddModeAlreadyAdded:
		return nil, ErrLectureAlreadyAdded
	case schedule.AddModeOverlap:
		return nil, ErrLectureOverlap
	}

	lecture := model.FromBase(timetableID, *candidate)
	if err := s.repo.UserLecture.Create(ctx, &lecture); err != nil {
		s.logger.Error("강의 추가 실패", zap.Error(err))
		return nil, err
	}

	periods, err := s.periodsOf(ctx, timetable)
	if err != nil {
		return nil, err
	}

	return &dto.LectureResponse{
		LectureID: lecture.LectureID,
		Lecture:   *candidate,
		TimeText:  schedule.FormatTimes(candidate.Times, periods),
	}, nil
}

// resolveCandidate 추가할 강의를 확정한다.
// 식별자가 있으면 카탈로그에서 찾고, 직접 입력이면 시간 슬롯을 검증한다.
func (s *timetableService) resolveCandidate(ctx context.Context, timetable *model.Timetable, req *dto.AddLectureRequest) (*schedule.BaseLecture, error) {
	if req.Identifier != nil && *req.Identifier != "" {
		semester, err := s.semesterOf(ctx, timetable)
		if err != nil {
			return nil, err
		}
		lectures, _, err := s.catalog.Lectures(ctx, semester)
		if err != nil {
			return nil, err
		}
		for i := range lectures {
			if lectures[i].Identifier != nil && *lectures[i].Identifier == *req.Identifier {
				return &lectures[i].BaseLecture, nil
			}
		}
		return nil, ErrCatalogLectureNotFound
	}

	if req.Lecture == nil {
		return nil, ErrLectureInvalid
	}
	for _, t := range req.Lecture.Times {
		if err := t.Validate(); err != nil {
			return nil, ErrLectureInvalid
		}
	}
	return req.Lecture, nil
}

func (s *timetableService) RemoveLecture(ctx context.Context, userID, timetableID, lectureID string) error {
	if _, err := s.getEditable(ctx, userID, timetableID); err != nil {
		return err
	}

	lecture, err := s.repo.UserLecture.GetByID(ctx, lectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLectureNotFound
		}
		s.logger.Error("강의 조회 실패", zap.Error(err))
		return err
	}
	if lecture.TimetableID != timetableID {
		return ErrLectureNotFound
	}

	if err := s.repo.UserLecture.Delete(ctx, lectureID); err != nil {
		s.logger.Error("강의 삭제 실패", zap.Error(err))
		return err
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Grid — 그리드 배치
// ═══════════════════════════════════════════════════════════

func (s *timetableService) Grid(ctx context.Context, userID, timetableID string, req *dto.GridRequest) (*schedule.Grid, error) {
	timetable, err := s.getViewable(ctx, userID, timetableID)
	if err != nil {
		return nil, err
	}

	added, err := s.repo.UserLecture.ListByTimetable(ctx, timetableID)
	if err != nil {
		s.logger.Error("강의 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	placed := make([]schedule.PlacedLecture, len(added))
	for i := range added {
		placed[i] = schedule.PlacedLecture{
			ID:      added[i].LectureID,
			Lecture: added[i].ToBase(),
		}
	}

	var previews []schedule.PlacedLecture
	if req.PreviewIdentifier != nil && *req.PreviewIdentifier != "" {
		semester, err := s.semesterOf(ctx, timetable)
		if err != nil {
			return nil, err
		}
		lectures, _, err := s.catalog.Lectures(ctx, semester)
		if err != nil {
			return nil, err
		}
		for i := range lectures {
			if lectures[i].Identifier != nil && *lectures[i].Identifier == *req.PreviewIdentifier {
				previews = append(previews, schedule.PlacedLecture{
					ID:      *req.PreviewIdentifier,
					Lecture: lectures[i].BaseLecture,
				})
				break
			}
		}
	}

	grid := schedule.BuildGrid(placed, previews, schedule.GridOptions{
		BeginHour: req.BeginHour,
		EndHour:   req.EndHour,
	})
	return &grid, nil
}

// ═══════════════════════════════════════════════════════════
// Search — 카탈로그 검색 + 추가 가능 상태
// ═══════════════════════════════════════════════════════════

func (s *timetableService) Search(ctx context.Context, userID string, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	timetable, err := s.getViewable(ctx, userID, req.TimetableID)
	if err != nil {
		return nil, err
	}
	semester, err := s.semesterOf(ctx, timetable)
	if err != nil {
		return nil, err
	}

	added, err := s.repo.UserLecture.ListByTimetable(ctx, req.TimetableID)
	if err != nil {
		s.logger.Error("강의 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	addedBase := make([]schedule.BaseLecture, len(added))
	var filled []schedule.LectureTime
	for i := range added {
		addedBase[i] = added[i].ToBase()
		filled = append(filled, addedBase[i].Times...)
	}

	// 검색 세션은 시간표 단위로 분리한다. 같은 시간표를 검색하는 뒤따르는
	// 요청만 앞선 요청을 대체하고, 다른 시간표의 검색은 영향을 주지 않는다.
	response, err := s.catalog.Search(ctx, req.TimetableID, semester, schedule.FilterCriteria{
		Keyword:     req.Keyword,
		EmptyOnly:   req.EmptyOnly,
		Weekdays:    req.Weekdays,
		FilledTimes: filled,
	})
	if err != nil {
		return nil, err
	}

	editable := timetable.Editable(userID)
	for i := range response.Results {
		response.Results[i].AddMode = schedule.ResolveAddMode(
			editable, false, response.Results[i].Lecture, addedBase, filled,
		)
	}
	return response, nil
}

// ── 공통 조회/권한 확인 ──

func (s *timetableService) getViewable(ctx context.Context, userID, timetableID string) (*model.Timetable, error) {
	timetable, err := s.repo.Timetable.GetByID(ctx, timetableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableNotFound
		}
		s.logger.Error("시간표 조회 실패", zap.Error(err))
		return nil, err
	}
	if !timetable.ViewableBy(userID) {
		return nil, ErrTimetableForbidden
	}
	return timetable, nil
}

func (s *timetableService) getEditable(ctx context.Context, userID, timetableID string) (*model.Timetable, error) {
	timetable, err := s.getViewable(ctx, userID, timetableID)
	if err != nil {
		return nil, err
	}
	if !timetable.Editable(userID) {
		return nil, ErrTimetableForbidden
	}
	return timetable, nil
}

func (s *timetableService) semesterOf(ctx context.Context, timetable *model.Timetable) (*model.Semester, error) {
	if timetable.Semester != nil {
		return timetable.Semester, nil
	}
	semester, err := s.repo.Semester.GetByID(ctx, timetable.SemesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("학기 조회 실패", zap.Error(err))
		return nil, err
	}
	return semester, nil
}

func (s *timetableService) periodsOf(ctx context.Context, timetable *model.Timetable) ([]schedule.Period, error) {
	semester, err := s.semesterOf(ctx, timetable)
	if err != nil {
		return nil, err
	}
	return []schedule.Period(semester.Periods), nil
}
