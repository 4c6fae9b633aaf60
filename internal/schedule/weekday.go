package schedule

import (
	"encoding/json"
	"fmt"
	"time"
)

// Weekday 요일. 내부 표준 순서는 월요일(0) ~ 일요일(6)이며,
// 카탈로그/문서의 와이어 포맷도 같은 정수 인코딩을 사용한다.
//
// 화면 표시 순서는 용도에 따라 다르다:
//   - 시간표 그리드: 일요일부터 (WeekdaysFromSunday)
//   - 검색 필터 UI: 월요일부터 (WeekdaysFromMonday)
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdaysFromMonday 월요일부터 시작하는 표시 순서
func WeekdaysFromMonday() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// WeekdaysFromSunday 일요일부터 시작하는 그리드 표시 순서
func WeekdaysFromSunday() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// Valid 0-6 범위 검사
func (w Weekday) Valid() bool { return w >= Monday && w <= Sunday }

func (w Weekday) String() string {
	names := [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	if !w.Valid() {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return names[w]
}

// ShortName 영문 3글자 약칭 (그리드 헤더)
func (w Weekday) ShortName() string {
	names := [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}
	if !w.Valid() {
		return "?"
	}
	return names[w]
}

// LocalizedShortName 한 글자 한글 약칭 (시간 문자열 표기)
func (w Weekday) LocalizedShortName() string {
	names := [...]string{"월", "화", "수", "목", "금", "토", "일"}
	if !w.Valid() {
		return "?"
	}
	return names[w]
}

// RRuleCode iCalendar RRULE 2글자 요일 코드
func (w Weekday) RRuleCode() string {
	codes := [...]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}
	if !w.Valid() {
		return "??"
	}
	return codes[w]
}

// ISOWeekday ISO 8601 요일 번호 (1=월요일 … 7=일요일)
func (w Weekday) ISOWeekday() int { return int(w) + 1 }

// WeekdayFromISO ISO 8601 요일 번호를 Weekday 로 변환
func WeekdayFromISO(iso int) (Weekday, error) {
	if iso < 1 || iso > 7 {
		return 0, fmt.Errorf("잘못된 ISO 요일 번호: %d", iso)
	}
	return Weekday(iso - 1), nil
}

// WeekdayFromTime Go time.Weekday (0=일요일) 를 Weekday 로 변환
func WeekdayFromTime(wd time.Weekday) Weekday {
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(int(wd) - 1)
}

// MarshalJSON 와이어 포맷(0=월요일 … 6=일요일) 정수로 직렬화
func (w Weekday) MarshalJSON() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("직렬화할 수 없는 요일 값: %d", int(w))
	}
	return json.Marshal(int(w))
}

// UnmarshalJSON 와이어 포맷 정수를 역직렬화. 0-6 외의 값은 오류.
func (w *Weekday) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	d := Weekday(n)
	if !d.Valid() {
		return fmt.Errorf("잘못된 요일 값: %d", n)
	}
	*w = d
	return nil
}
