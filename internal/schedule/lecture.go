package schedule

import "fmt"

// ── 강의/시간 기본 타입 ──────────────────────────────────────
//
// 설계 설명:
//   - LectureTime 은 한 강의가 차지하는 하나의 슬롯(요일 + 분 단위 시간 구간 + 강의실).
//   - 분 값은 자정 기준 오프셋 [0, 1440). 포인터 필드는 "미지정"을 표현하며,
//     미지정 필드가 있는 슬롯은 겹침/표기 계산에서 제외된다.
//   - timeBegin <= timeEnd 는 디코드 시점에 검증한다 (Validate 참고).
// ─────────────────────────────────────────────────────────────

// LectureTime 강의 시간 슬롯
type LectureTime struct {
	Weekday   *Weekday `json:"weekday,omitempty"`
	TimeBegin *int     `json:"timeBegin,omitempty"`
	TimeEnd   *int     `json:"timeEnd,omitempty"`
	Room      *string  `json:"room,omitempty"`
}

// Duration 슬롯 길이(분). 종료 시각이 없으면 0.
func (t LectureTime) Duration() int {
	if t.TimeBegin == nil {
		return 0
	}
	if t.TimeEnd == nil {
		return 0
	}
	return *t.TimeEnd - *t.TimeBegin
}

// Validate 분 값 범위와 시작/종료 순서를 검사한다.
// 원본 데이터에는 역전된 구간이 섞일 수 있으므로 디코드 직후 호출해 걸러낸다.
func (t LectureTime) Validate() error {
	if t.TimeBegin != nil && (*t.TimeBegin < 0 || *t.TimeBegin >= 24*60) {
		return fmt.Errorf("시작 시각이 범위를 벗어났습니다: %d", *t.TimeBegin)
	}
	if t.TimeEnd != nil && (*t.TimeEnd < 0 || *t.TimeEnd >= 24*60) {
		return fmt.Errorf("종료 시각이 범위를 벗어났습니다: %d", *t.TimeEnd)
	}
	if t.TimeBegin != nil && t.TimeEnd != nil && *t.TimeBegin > *t.TimeEnd {
		return fmt.Errorf("시작 시각(%d)이 종료 시각(%d)보다 늦습니다", *t.TimeBegin, *t.TimeEnd)
	}
	return nil
}

// Meta 강의 부가 정보. Type 은 "tag" | "not-existing-sample".
type Meta struct {
	Type string  `json:"type"`
	Name *string `json:"name,omitempty"`
}

// BaseLecture 강의 공통 필드. 카탈로그(마스터) 강의와 사용자 강의가 공유한다.
type BaseLecture struct {
	Identifier *string       `json:"identifier,omitempty"`
	Title      *string       `json:"title,omitempty"`
	Professor  *string       `json:"professor,omitempty"`
	Credit     *float64      `json:"credit,omitempty"`
	Times      []LectureTime `json:"times"`
	Category   []string      `json:"category"`
	Metas      []Meta        `json:"metas"`
}

// Period 학기별로 정의되는 교시 (예: 1교시 = 540-590분)
type Period struct {
	Period    int `json:"period"`
	TimeBegin int `json:"timeBegin"`
	TimeEnd   int `json:"timeEnd"`
}
