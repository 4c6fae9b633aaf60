package schedule

import "sort"

// ── 시간표 그리드 배치 ──────────────────────────────────────
//
// 배치 결과는 CSS 퍼센트 좌표로 표현한다. 항목의 세로 오프셋은
// (timeBegin - beginHour*60) / 60 * 100%, 높이는 길이/60 * 100% 에
// 인접 블록 사이 경계선을 메우는 1px 을 더해 그린다.
// ─────────────────────────────────────────────────────────────

// SeamBridgePx 인접 블록 사이 시각적 틈을 메우기 위해 높이에 더하는 픽셀
const SeamBridgePx = 1

// 그리드 기본 시간 범위 (수업이 더 이르거나 늦으면 자동 확장)
const (
	defaultGridBeginHour = 9
	defaultGridEndHour   = 19
	minGridRows          = 5
)

// PlacedLecture 그리드에 배치할 강의 (확정 강의 또는 미리보기)
type PlacedLecture struct {
	ID      string
	Lecture BaseLecture
}

// GridItem 그리드에 그려지는 블록 하나 (강의의 시간 슬롯 하나)
type GridItem struct {
	LectureID string      `json:"lectureId"`
	Title     string      `json:"title"`
	Room      string      `json:"room,omitempty"`
	Time      LectureTime `json:"time"`
	// IsPreview 아직 추가하지 않은 미리보기 블록
	IsPreview bool `json:"isPreview"`
	// Overlapped 미리보기 블록이 같은 요일의 확정 블록과 겹침 (강조 표시용)
	Overlapped bool `json:"overlapped"`
	// TopPercent / HeightPercent CSS 퍼센트 좌표. 실제 높이는
	// HeightPercent 에 SeamBridgePx 픽셀을 더해 그린다.
	TopPercent    float64 `json:"topPercent"`
	HeightPercent float64 `json:"heightPercent"`
}

// GridColumn 요일 컬럼
type GridColumn struct {
	Weekday Weekday    `json:"weekday"`
	Header  string     `json:"header"`
	Items   []GridItem `json:"items"`
}

// Grid 시간표 그리드 배치 결과
type Grid struct {
	BeginHour int          `json:"beginHour"`
	EndHour   int          `json:"endHour"`
	Rows      int          `json:"rows"`
	Columns   []GridColumn `json:"columns"`
}

// GridOptions 시간 범위 설정. BeginHour/EndHour 가 모두 0 이면
// 배치된 항목으로부터 자동 계산한다.
type GridOptions struct {
	BeginHour int
	EndHour   int
}

type gridEntry struct {
	lectureID string
	lecture   BaseLecture
	time      LectureTime
	isPreview bool
}

func toEntries(lectures []PlacedLecture, isPreview bool) []gridEntry {
	var entries []gridEntry
	for _, placed := range lectures {
		for _, t := range placed.Lecture.Times {
			entries = append(entries, gridEntry{
				lectureID: placed.ID,
				lecture:   placed.Lecture,
				time:      t,
				isPreview: isPreview,
			})
		}
	}
	return entries
}

func clampHour(hour int) int {
	if hour < 0 {
		return 0
	}
	if hour > 24 {
		return 24
	}
	return hour
}

// autoHourRange 배치된 시간으로부터 표시 시간 범위를 계산한다.
// 기본 9-19시 범위를 수업 시간이 벗어나면 그만큼 넓힌다.
func autoHourRange(entries []gridEntry) (int, int) {
	minMinute := defaultGridBeginHour * 60
	maxMinute := defaultGridEndHour * 60
	for _, e := range entries {
		if e.time.TimeBegin != nil && *e.time.TimeBegin < minMinute {
			minMinute = *e.time.TimeBegin
		}
		if e.time.TimeEnd != nil && *e.time.TimeEnd > maxMinute {
			maxMinute = *e.time.TimeEnd
		}
		if e.time.TimeBegin != nil && *e.time.TimeBegin > maxMinute {
			maxMinute = *e.time.TimeBegin
		}
		if e.time.TimeEnd != nil && *e.time.TimeEnd < minMinute {
			minMinute = *e.time.TimeEnd
		}
	}
	begin := minMinute / 60
	end := (maxMinute + 59) / 60
	return begin, end
}

// BuildGrid 확정 강의와 미리보기 강의를 요일 × 시간 그리드에 배치한다.
//
// 컬럼은 {항목이 있는 요일} ∪ {월~금} 으로, 수업이 없는 평일 컬럼도
// 항상 그리고 주말 컬럼은 수업이 있을 때만 나타난다. 컬럼 순서는
// 일요일부터 (WeekdaysFromSunday).
func BuildGrid(lectures []PlacedLecture, previews []PlacedLecture, opts GridOptions) Grid {
	placedEntries := toEntries(lectures, false)
	previewEntries := toEntries(previews, true)
	allEntries := append(append([]gridEntry{}, placedEntries...), previewEntries...)

	beginHour, endHour := opts.BeginHour, opts.EndHour
	if beginHour == 0 && endHour == 0 {
		beginHour, endHour = autoHourRange(allEntries)
	}
	beginHour = clampHour(beginHour)
	endHour = clampHour(endHour)
	rows := endHour - beginHour
	if rows < minGridRows {
		rows = minGridRows
	}

	// 컬럼 요일: 사용된 요일 ∪ 평일, 일요일부터 정렬
	used := make(map[Weekday]bool)
	for _, e := range allEntries {
		if e.time.Weekday != nil {
			used[*e.time.Weekday] = true
		}
	}
	for _, w := range []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday} {
		used[w] = true
	}
	sundayFirst := WeekdaysFromSunday()
	order := func(w Weekday) int {
		for i, candidate := range sundayFirst {
			if candidate == w {
				return i
			}
		}
		return len(sundayFirst)
	}
	weekdays := make([]Weekday, 0, len(used))
	for w := range used {
		weekdays = append(weekdays, w)
	}
	sort.Slice(weekdays, func(i, j int) bool { return order(weekdays[i]) < order(weekdays[j]) })

	columns := make([]GridColumn, 0, len(weekdays))
	for _, weekday := range weekdays {
		columns = append(columns, buildColumn(weekday, placedEntries, previewEntries, beginHour))
	}

	return Grid{
		BeginHour: beginHour,
		EndHour:   endHour,
		Rows:      rows,
		Columns:   columns,
	}
}

func buildColumn(weekday Weekday, placed, previews []gridEntry, beginHour int) GridColumn {
	inColumn := func(entries []gridEntry) []gridEntry {
		var result []gridEntry
		for _, e := range entries {
			if e.time.Weekday != nil && *e.time.Weekday == weekday {
				result = append(result, e)
			}
		}
		return result
	}
	columnPlaced := inColumn(placed)
	columnPreviews := inColumn(previews)

	// 미리보기 블록이 같은 컬럼의 확정 블록과 겹치는지 (반열린 구간 비교)
	overlapsPlaced := func(target LectureTime) bool {
		if target.TimeBegin == nil || target.TimeEnd == nil {
			return false
		}
		for _, e := range columnPlaced {
			if e.time.TimeBegin == nil || e.time.TimeEnd == nil {
				continue
			}
			if RangesOverlap(*target.TimeBegin, *target.TimeEnd, *e.time.TimeBegin, *e.time.TimeEnd, false) {
				return true
			}
		}
		return false
	}

	items := make([]GridItem, 0, len(columnPlaced)+len(columnPreviews))
	appendItem := func(e gridEntry) {
		begin, end := 0, 0
		if e.time.TimeBegin != nil {
			begin = *e.time.TimeBegin
		}
		if e.time.TimeEnd != nil {
			end = *e.time.TimeEnd
		}

		item := GridItem{
			LectureID:     e.lectureID,
			Time:          e.time,
			IsPreview:     e.isPreview,
			TopPercent:    float64(begin-beginHour*60) / 60 * 100,
			HeightPercent: float64(end-begin) / 60 * 100,
		}
		if e.lecture.Title != nil {
			item.Title = *e.lecture.Title
		}
		if e.time.Room != nil {
			item.Room = *e.time.Room
		}
		if e.isPreview {
			item.Overlapped = overlapsPlaced(e.time)
		}
		items = append(items, item)
	}
	for _, e := range columnPlaced {
		appendItem(e)
	}
	for _, e := range columnPreviews {
		appendItem(e)
	}

	return GridColumn{
		Weekday: weekday,
		Header:  weekday.ShortName(),
		Items:   items,
	}
}
