package schedule

import "sort"

// FindPeriod 분 값이 속하는 교시를 찾는다. 없으면 nil.
//
// 교시 목록을 시작 시각 내림차순으로 훑고 처음 매칭되는 교시를 돌려주므로,
// 범위가 겹치는 교시가 있으면 늦게 시작하는 교시가 우선한다. 이 동작에
// 의존하는 화면 표기가 있으므로 순서를 바꾸면 안 된다.
//
// includeEnd=true 면 범위 끝에 정확히 닿는 분도 해당 교시로 판정한다
// (수업 종료 시각이 교시 경계와 일치하는 경우).
func FindPeriod(minute int, periods []Period, includeEnd bool) *Period {
	contains := func(p Period) bool {
		if includeEnd {
			return p.TimeBegin <= minute && minute <= p.TimeEnd
		}
		return p.TimeBegin <= minute && minute < p.TimeEnd
	}

	sorted := make([]Period, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimeBegin > sorted[j].TimeBegin
	})

	for _, p := range sorted {
		if contains(p) {
			found := p
			return &found
		}
	}
	return nil
}
