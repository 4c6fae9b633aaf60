package schedule

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ── 반복 일정 합성 ──────────────────────────────────────────
//
// 시간표의 강의들을 iCalendar 반복 이벤트로 변환한다. 강의 하나의 유효
// 슬롯을 (길이, 강의실) 로 묶어 그룹마다 하나의 반복 이벤트를 만들고,
// 그룹의 슬롯들로부터 최소한의 RRULE 을 유도한다:
//
//   - 요일/시/분 축은 중복 제거 후 정렬한 값 목록
//   - 축의 데카르트 곱이 실제 슬롯 집합과 일치하면 BYSETPOS 를 생략하고,
//     곱이 실제보다 큰 불규칙 일정에서만 각 슬롯의 곱 내 위치(1-based)를
//     BYSETPOS 로 내보낸다
//   - WKST 는 학기 시작 이후 가장 먼저 도래하는 슬롯의 요일
// ─────────────────────────────────────────────────────────────

// ErrInvalidTerm 학기 구분을 해석할 수 없음 — 내보내기를 중단해야 한다.
var ErrInvalidTerm = errors.New("알 수 없는 학기 구분입니다")

const icalUIDDomain = "ical.heektime.heek.kr"

var seoul = loadSeoul()

func loadSeoul() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// SemesterRange 학기 구분을 절대 날짜 범위로 바꾼다 (Asia/Seoul 기준).
//
//	1학기/봄학기 → 3-6월, 여름학기 → 6-8월,
//	2학기/가을학기 → 9-12월, 겨울학기 → 12월-이듬해 2월
//
// 시작은 시작 월의 1일 0시, 끝은 종료 월의 마지막 순간이다.
func SemesterRange(year int, term string) (time.Time, time.Time, error) {
	var monthBegin, monthEnd time.Month
	switch term {
	case "1학기", "봄학기":
		monthBegin, monthEnd = time.March, time.June
	case "여름학기":
		monthBegin, monthEnd = time.June, time.August
	case "2학기", "가을학기":
		monthBegin, monthEnd = time.September, time.December
	case "겨울학기":
		monthBegin, monthEnd = time.December, time.February
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTerm, term)
	}

	begin := time.Date(year, monthBegin, 1, 0, 0, 0, 0, seoul)

	endYear := year
	if monthEnd < monthBegin {
		// 겨울학기는 해를 넘긴다
		endYear++
	}
	end := time.Date(endYear, monthEnd+1, 1, 0, 0, 0, 0, seoul).Add(-time.Second)
	return begin, end, nil
}

// ExportLecture 내보내기 대상 강의. ID 는 식별자가 없는 강의의 UID 대체값.
type ExportLecture struct {
	ID      string
	Lecture BaseLecture
}

// CalendarEvent 반복 일정 이벤트 정의. ICS 직렬화 전의 중간 표현.
type CalendarEvent struct {
	UID         string
	Sequence    int64
	Title       string
	Start       time.Time // 첫 발생 시각 (Asia/Seoul)
	DurationMin int
	Location    string
	RRule       string
}

type validTime struct {
	weekday   Weekday
	timeBegin int
	room      string
	duration  int
}

// BuildEvents 시간표의 강의들을 반복 이벤트 목록으로 변환한다.
// sequence 는 수정본 추적용 단조 증가 값 (호출 시점 타임스탬프).
func BuildEvents(timetableID string, lectures []ExportLecture, year int, term string, sequence int64) ([]CalendarEvent, error) {
	semesterBegin, semesterEnd, err := SemesterRange(year, term)
	if err != nil {
		return nil, err
	}

	var events []CalendarEvent
	for _, exported := range lectures {
		lecture := exported.Lecture

		// 요일과 시작 시각이 없는 슬롯은 반복할 수 없으므로 제외
		var valid []validTime
		for _, t := range lecture.Times {
			if t.Weekday == nil || t.TimeBegin == nil {
				continue
			}
			v := validTime{weekday: *t.Weekday, timeBegin: *t.TimeBegin}
			if t.TimeEnd != nil {
				v.duration = *t.TimeEnd - *t.TimeBegin
			}
			if t.Room != nil {
				v.room = *t.Room
			}
			valid = append(valid, v)
		}

		// (길이, 강의실) 별 그룹 — 그룹마다 반복 이벤트 하나
		groups := make(map[string][]validTime)
		var groupOrder []string
		for _, v := range valid {
			key := strconv.Itoa(v.duration) + "-" + v.room
			if _, ok := groups[key]; !ok {
				groupOrder = append(groupOrder, key)
			}
			groups[key] = append(groups[key], v)
		}

		lectureUID := exported.ID
		if lecture.Identifier != nil {
			lectureUID = *lecture.Identifier
		}
		title := ""
		if lecture.Title != nil {
			title = *lecture.Title
		}

		for _, groupKey := range groupOrder {
			events = append(events, buildGroupEvent(
				timetableID, lectureUID, groupKey, title,
				groups[groupKey], semesterBegin, semesterEnd, sequence,
			))
		}
	}
	return events, nil
}

// buildGroupEvent 슬롯 그룹 하나를 반복 이벤트로 만든다.
func buildGroupEvent(
	timetableID, lectureUID, groupKey, title string,
	times []validTime,
	semesterBegin, semesterEnd time.Time,
	sequence int64,
) CalendarEvent {
	// 앵커: 학기 시작 이후 각 슬롯 요일이 처음 도래하는 시각의 최솟값
	beginISO := isoWeekdayOf(semesterBegin)
	var start time.Time
	for _, t := range times {
		days := (t.weekday.ISOWeekday() - beginISO + 7) % 7
		occurrence := semesterBegin.AddDate(0, 0, days).Add(time.Duration(t.timeBegin) * time.Minute)
		if start.IsZero() || occurrence.Before(start) {
			start = occurrence
		}
	}
	// WKST 는 앵커가 떨어진 요일이다. 월요일이라는 보장이 없다.
	wkst := WeekdayFromTime(start.Weekday())

	// 그룹 축: WKST 기준 정렬한 요일, 오름차순 시/분 (중복 제거)
	weekdays := distinctWeekdays(times, wkst)
	hours := distinctInts(times, func(t validTime) int { return t.timeBegin / 60 })
	minutes := distinctInts(times, func(t validTime) int { return t.timeBegin % 60 })

	// 각 슬롯의 데카르트 곱 내 위치 (1-based)
	positions := make([]int, 0, len(times))
	for _, t := range times {
		wi := indexOfWeekday(weekdays, t.weekday)
		hi := indexOfInt(hours, t.timeBegin/60)
		mi := indexOfInt(minutes, t.timeBegin%60)
		if wi < 0 || hi < 0 || mi < 0 {
			// 축은 슬롯에서 유도했으므로 일어날 수 없다
			panic(fmt.Sprintf("슬롯 축 인덱스 계산 실패: wi=%d hi=%d mi=%d", wi, hi, mi))
		}
		positions = append(positions, 1+mi+hi*len(minutes)+wi*len(hours)*len(minutes))
	}
	sort.Ints(positions)

	// 값이 하나뿐인 축은 DTSTART 가 결정하므로 생략한다.
	rule := []string{
		"FREQ=WEEKLY",
		"UNTIL=" + semesterEnd.UTC().Format("20060102T150405Z"),
	}
	if len(weekdays) > 1 {
		rule = append(rule, "WKST="+wkst.RRuleCode())
		rule = append(rule, "BYDAY="+joinWeekdayCodes(weekdays))
	}
	if len(hours) > 1 {
		rule = append(rule, "BYHOUR="+joinInts(hours))
	}
	if len(minutes) > 1 {
		rule = append(rule, "BYMINUTE="+joinInts(minutes))
	}
	// 데카르트 곱이 실제 슬롯 집합보다 클 때만 BYSETPOS 로 솎아낸다.
	if len(weekdays)*len(hours)*len(minutes) != len(positions) {
		rule = append(rule, "BYSETPOS="+joinInts(positions))
	}

	uid := strings.Join([]string{
		url.QueryEscape(timetableID),
		url.QueryEscape(lectureUID),
		url.QueryEscape(groupKey),
	}, "+") + "@" + icalUIDDomain

	return CalendarEvent{
		UID:         uid,
		Sequence:    sequence,
		Title:       title,
		Start:       start,
		DurationMin: times[0].duration,
		Location:    times[0].room,
		RRule:       strings.Join(rule, ";"),
	}
}

// ── 보조 함수 ──

func isoWeekdayOf(t time.Time) int { return WeekdayFromTime(t.Weekday()).ISOWeekday() }

// distinctWeekdays 그룹에 쓰인 요일들을 WKST 기준 상대 순서로 정렬해 돌려준다.
func distinctWeekdays(times []validTime, wkst Weekday) []Weekday {
	seen := make(map[Weekday]bool)
	var weekdays []Weekday
	for _, t := range times {
		if !seen[t.weekday] {
			seen[t.weekday] = true
			weekdays = append(weekdays, t.weekday)
		}
	}
	sortKey := func(w Weekday) int { return (int(w) - int(wkst) + 7) % 7 }
	sort.Slice(weekdays, func(i, j int) bool { return sortKey(weekdays[i]) < sortKey(weekdays[j]) })
	return weekdays
}

func distinctInts(times []validTime, value func(validTime) int) []int {
	seen := make(map[int]bool)
	var values []int
	for _, t := range times {
		v := value(t)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Ints(values)
	return values
}

func indexOfWeekday(weekdays []Weekday, w Weekday) int {
	for i, candidate := range weekdays {
		if candidate == w {
			return i
		}
	}
	return -1
}

func indexOfInt(values []int, v int) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}

func joinWeekdayCodes(weekdays []Weekday) string {
	codes := make([]string, len(weekdays))
	for i, w := range weekdays {
		codes[i] = w.RRuleCode()
	}
	return strings.Join(codes, ",")
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
