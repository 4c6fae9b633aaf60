package schedule

import (
	"context"
	"errors"
	"sync"
)

// ── 백그라운드 필터 세션 ────────────────────────────────────
//
// 카탈로그 필터링은 입력이 바뀔 때마다(키워드 입력, 토글 변경, 카탈로그
// 재로드) 다시 수행되며, 수천 건을 훑는 계산이 요청 처리 흐름을 막지
// 않도록 전용 고루틴 하나에서 돌린다.
//
// 큐잉은 하지 않는다: 새 요청이 제출되면 이전 요청은 그 자리에서
// 대체되고, 이미 계산에 들어간 요청의 결과는 세대 번호 비교로 걸러져
// 절대 더 새로운 조건의 결과를 덮어쓰지 못한다 (last-request-wins).
// ─────────────────────────────────────────────────────────────

var (
	// ErrFilterSuperseded 더 새로운 검색 요청이 제출되어 이 요청이 무효화됨
	ErrFilterSuperseded = errors.New("검색 요청이 더 새로운 요청으로 대체되었습니다")
	// ErrFilterClosed 세션이 닫힘
	ErrFilterClosed = errors.New("검색 세션이 닫혔습니다")
)

// FilterRequest 필터 세션에 제출하는 한 번의 검색 요청
type FilterRequest struct {
	Lectures []BaseLecture
	Criteria FilterCriteria
}

type filterTask struct {
	gen        uint64
	req        FilterRequest
	result     chan []string // 버퍼 1, 최대 한 번만 전달됨
	superseded chan struct{} // 대체될 때 닫힘
}

// FilterSession 검색 세션. 세션당 워커 고루틴 하나가 최신 요청만 처리한다.
type FilterSession struct {
	mu     sync.Mutex
	gen    uint64
	latest *filterTask

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewFilterSession 워커를 시작하고 세션을 돌려준다. 사용 후 Close 필수.
func NewFilterSession() *FilterSession {
	s := &FilterSession{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go s.run()
	return s
}

// submit 요청을 최신으로 등록하고 이전 요청을 대체한다.
func (s *FilterSession) submit(req FilterRequest) *filterTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	task := &filterTask{
		gen:        s.gen,
		req:        req,
		result:     make(chan []string, 1),
		superseded: make(chan struct{}),
	}
	if s.latest != nil {
		close(s.latest.superseded)
	}
	s.latest = task

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return task
}

// Search 요청을 제출하고 결과를 기다린다.
// 기다리는 동안 더 새로운 요청이 제출되면 ErrFilterSuperseded 를 돌려준다.
func (s *FilterSession) Search(ctx context.Context, req FilterRequest) ([]string, error) {
	task := s.submit(req)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.done:
		return nil, ErrFilterClosed
	case <-task.superseded:
		return nil, ErrFilterSuperseded
	case identifiers := <-task.result:
		return identifiers, nil
	}
}

func (s *FilterSession) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		s.mu.Lock()
		task := s.latest
		s.mu.Unlock()
		if task == nil {
			continue
		}

		identifiers := FilterIdentifiers(task.req.Lectures, task.req.Criteria)
		s.deliver(task, identifiers)
	}
}

// deliver 계산 결과를 전달한다. 계산하는 사이 세대가 바뀌었으면
// 낡은 결과이므로 버린다.
func (s *FilterSession) deliver(task *filterTask, identifiers []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != task.gen {
		return
	}
	task.result <- identifiers
}

// Close 세션을 닫고 워커를 종료한다.
func (s *FilterSession) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}
