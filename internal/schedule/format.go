package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// formatMinute 분 값을 교시 번호 또는 HH:MM 문자열로 표기한다.
func formatMinute(minute int, periods []Period, includeEnd bool) string {
	if p := FindPeriod(minute, periods, includeEnd); p != nil {
		return strconv.Itoa(p.Period)
	}
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// FormatTimes 시간 슬롯 목록을 사람이 읽는 문자열로 만든다.
//
// 슬롯마다 요일 약칭 + 시작 표기 + "-" + 종료 표기를 붙인다. 시작/종료가
// 같은 교시로 해석되면 하나만 표기한다 ("월1-1" 이 아니라 "월1").
// 교시에 맞지 않는 시각은 HH:MM 으로 표기한다. 미지정 필드는 생략되며,
// 슬롯 사이는 ", " 로 잇는다.
//
//	예: "월1-3, 수09:00-10:30"
func FormatTimes(times []LectureTime, periods []Period) string {
	formatted := make([]string, 0, len(times))
	for _, t := range times {
		var b strings.Builder
		if t.Weekday != nil {
			b.WriteString(t.Weekday.LocalizedShortName())
		}

		var begin, end string
		if t.TimeBegin != nil {
			begin = formatMinute(*t.TimeBegin, periods, false)
		}
		if t.TimeEnd != nil {
			// 종료 시각은 교시 경계에 정확히 닿는 경우가 많으므로 경계 포함 판정
			end = formatMinute(*t.TimeEnd, periods, true)
		}

		b.WriteString(begin)
		if begin != end {
			b.WriteString("-")
			b.WriteString(end)
		}
		formatted = append(formatted, b.String())
	}
	return strings.Join(formatted, ", ")
}
