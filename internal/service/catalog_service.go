package service

import (
	"context"
	"errors"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"heektime/backend/config"
	"heektime/backend/internal/dto"
	"heektime/backend/internal/model"
	"heektime/backend/internal/schedule"
)

var ErrCatalogUnavailable = errors.New("강의 카탈로그를 읽을 수 없습니다")

// ObjectStore 카탈로그 오브젝트 저장소 (MinIO 구현)
type ObjectStore interface {
	Download(ctx context.Context, objectPath string) ([]byte, error)
}

// CatalogService 강의 카탈로그 업무 인터페이스
//
// 설계 설명:
//   - 카탈로그는 학기별 오브젝트(JSON 배열) 하나로 저장되고 자주 바뀌지
//     않으므로 TTL 캐시에 올려 둔다
//   - 검색은 scope(검색 맥락, 시간표 단위)별 필터 세션에서 돌며 같은
//     scope 안에서만 최신 요청이 이전 요청을 대체한다 (FilterSession).
//     서로 다른 scope 의 검색은 서로를 무효화하지 않는다.
//   - 주기적 워밍업(cron)은 캐시에 올라온 카탈로그를 TTL 만료 전에
//     미리 갱신한다
type CatalogService interface {
	// Lectures 학기 카탈로그를 읽는다. 두 번째 반환값은 해석 중 건너뛴 항목 수.
	Lectures(ctx context.Context, semester *model.Semester) ([]model.MasterLecture, int, error)
	// Search 카탈로그에서 조건에 맞는 강의를 찾는다.
	// scope 는 검색 세션의 경계다. 같은 scope 의 뒤따르는 요청만 이 요청을
	// 대체할 수 있다 (ErrFilterSuperseded).
	Search(ctx context.Context, scope string, semester *model.Semester, criteria schedule.FilterCriteria) (*dto.SearchResponse, error)
	// StartWarmup 주기 갱신 작업을 시작한다. spec 이 비어 있으면 아무것도 하지 않는다.
	StartWarmup(spec string) error
	Close()
}

type catalogEntry struct {
	lectures []model.MasterLecture
	skipped  int
}

type catalogService struct {
	store  ObjectStore
	cache  *gocache.Cache
	cron   *cron.Cron
	cfg    *config.CatalogConfig
	logger *zap.Logger

	// sessions scope 별 필터 세션. 세션 하나는 고루틴 하나라서 scope 수만큼만
	// 자라고, Close 에서 일괄 정리된다.
	sessionMu sync.Mutex
	sessions  map[string]*schedule.FilterSession
	closed    bool
}

// NewCatalogService CatalogService 인스턴스를 만든다
func NewCatalogService(cfg *config.CatalogConfig, store ObjectStore, logger *zap.Logger) CatalogService {
	return &catalogService{
		store:    store,
		cache:    gocache.New(cfg.CacheTTL, cfg.CacheTTL/2),
		sessions: make(map[string]*schedule.FilterSession),
		cfg:      cfg,
		logger:   logger,
	}
}

// sessionFor scope 의 필터 세션을 돌려준다. 없으면 만든다.
func (s *catalogService) sessionFor(scope string) (*schedule.FilterSession, error) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	if s.closed {
		return nil, schedule.ErrFilterClosed
	}
	session, ok := s.sessions[scope]
	if !ok {
		session = schedule.NewFilterSession()
		s.sessions[scope] = session
	}
	return session, nil
}

func (s *catalogService) Lectures(ctx context.Context, semester *model.Semester) ([]model.MasterLecture, int, error) {
	if cached, ok := s.cache.Get(semester.LecturesURL); ok {
		entry := cached.(catalogEntry)
		return entry.lectures, entry.skipped, nil
	}
	return s.load(ctx, semester.LecturesURL)
}

// load 카탈로그를 내려받아 해석하고 캐시에 올린다
func (s *catalogService) load(ctx context.Context, lecturesURL string) ([]model.MasterLecture, int, error) {
	if s.cfg.DownloadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.DownloadTimeout)
		defer cancel()
	}

	data, err := s.store.Download(ctx, lecturesURL)
	if err != nil {
		s.logger.Error("카탈로그 다운로드 실패",
			zap.String("url", lecturesURL), zap.Error(err))
		return nil, 0, ErrCatalogUnavailable
	}

	lectures, skipped, err := model.DecodeCatalog(data)
	if err != nil {
		s.logger.Error("카탈로그 해석 실패",
			zap.String("url", lecturesURL), zap.Error(err))
		return nil, 0, ErrCatalogUnavailable
	}
	if skipped > 0 {
		s.logger.Warn("카탈로그 일부 항목 건너뜀",
			zap.String("url", lecturesURL), zap.Int("skipped", skipped))
	}

	s.cache.SetDefault(lecturesURL, catalogEntry{lectures: lectures, skipped: skipped})
	return lectures, skipped, nil
}

func (s *catalogService) Search(ctx context.Context, scope string, semester *model.Semester, criteria schedule.FilterCriteria) (*dto.SearchResponse, error) {
	lectures, skipped, err := s.Lectures(ctx, semester)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionFor(scope)
	if err != nil {
		return nil, err
	}

	base := make([]schedule.BaseLecture, len(lectures))
	byIdentifier := make(map[string]*model.MasterLecture, len(lectures))
	for i := range lectures {
		base[i] = lectures[i].BaseLecture
		if lectures[i].Identifier != nil {
			if _, ok := byIdentifier[*lectures[i].Identifier]; !ok {
				byIdentifier[*lectures[i].Identifier] = &lectures[i]
			}
		}
	}

	identifiers, err := session.Search(ctx, schedule.FilterRequest{
		Lectures: base,
		Criteria: criteria,
	})
	if err != nil {
		return nil, err
	}

	results := make([]dto.SearchResult, 0, len(identifiers))
	for _, id := range identifiers {
		lecture, ok := byIdentifier[id]
		if !ok {
			continue
		}
		results = append(results, dto.SearchResult{
			Lecture:  lecture.BaseLecture,
			TimeText: schedule.FormatTimes(lecture.Times, []schedule.Period(semester.Periods)),
		})
	}

	return &dto.SearchResponse{Results: results, Skipped: skipped}, nil
}

func (s *catalogService) StartWarmup(spec string) error {
	if spec == "" {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(spec, s.refreshCached)
	if err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.logger.Info("카탈로그 워밍업 작업 시작", zap.String("schedule", spec))
	return nil
}

// refreshCached 캐시에 올라온 카탈로그를 전부 다시 내려받는다
func (s *catalogService) refreshCached() {
	for url := range s.cache.Items() {
		if _, _, err := s.load(context.Background(), url); err != nil {
			s.logger.Warn("카탈로그 워밍업 실패", zap.String("url", url), zap.Error(err))
		}
	}
}

func (s *catalogService) Close() {
	if s.cron != nil {
		s.cron.Stop()
	}

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	s.closed = true
	for _, session := range s.sessions {
		session.Close()
	}
	s.sessions = nil
}
