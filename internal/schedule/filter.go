package schedule

import "strings"

// ── 강의 카탈로그 필터 ──────────────────────────────────────
//
// 학기당 수천 건의 카탈로그를 키워드/빈 시간/요일 조건으로 좁힌다.
// 세 조건은 모두 AND 로 결합되며, 결과는 전체 레코드가 아닌 식별자
// 목록만 돌려 작업 간 전달 비용을 줄인다.
// ─────────────────────────────────────────────────────────────

// FilterCriteria 카탈로그 필터 조건
type FilterCriteria struct {
	// Keyword 식별자/강의명/교수명 중 하나라도 부분 일치(대소문자 무시)하면 통과
	Keyword string
	// EmptyOnly true 면 시간 슬롯이 있고 채워진 시간과 겹치지 않는 강의만 통과
	EmptyOnly bool
	// Weekdays 비어 있지 않으면 모든 슬롯이 이 요일 집합 안에 있는 강의만 통과
	// (하나라도 집합 밖 요일에 걸치면 전체 탈락 — OR 가 아니라 AND)
	Weekdays []Weekday
	// FilledTimes 현재 시간표에 채워진 슬롯 (EmptyOnly 판정에 사용)
	FilledTimes []LectureTime
}

func matchKeyword(keyword string, lecture BaseLecture) bool {
	lowered := strings.ToLower(keyword)
	for _, field := range []*string{lecture.Identifier, lecture.Title, lecture.Professor} {
		if field == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*field), lowered) {
			return true
		}
	}
	return false
}

func matchEmptyOnly(on bool, filledTimes []LectureTime, lecture BaseLecture) bool {
	if !on {
		return true
	}
	return len(lecture.Times) > 0 && !IsOverlap(lecture.Times, filledTimes)
}

func matchWeekdays(weekdays []Weekday, lecture BaseLecture) bool {
	if len(weekdays) == 0 {
		return true
	}
	if len(lecture.Times) == 0 {
		return false
	}
	allowed := make(map[Weekday]bool, len(weekdays))
	for _, w := range weekdays {
		allowed[w] = true
	}
	for _, t := range lecture.Times {
		if t.Weekday == nil || !allowed[*t.Weekday] {
			return false
		}
	}
	return true
}

// MatchLecture 강의 하나가 모든 필터 조건을 통과하는지 검사한다.
func MatchLecture(lecture BaseLecture, criteria FilterCriteria) bool {
	return matchKeyword(criteria.Keyword, lecture) &&
		matchEmptyOnly(criteria.EmptyOnly, criteria.FilledTimes, lecture) &&
		matchWeekdays(criteria.Weekdays, lecture)
}

// FilterIdentifiers 조건을 통과한 강의의 식별자 목록을 돌려준다.
// 식별자가 없는 강의는 결과에 포함하지 않는다 (검색 결과로 참조할 수 없으므로).
func FilterIdentifiers(lectures []BaseLecture, criteria FilterCriteria) []string {
	identifiers := make([]string, 0, len(lectures))
	for _, lecture := range lectures {
		if lecture.Identifier == nil {
			continue
		}
		if MatchLecture(lecture, criteria) {
			identifiers = append(identifiers, *lecture.Identifier)
		}
	}
	return identifiers
}
