package schedule

// RangesOverlap 두 분 단위 구간의 겹침 여부.
// 기본(includeEnd=false)은 반열린 구간 비교로, 끝점이 맞닿은 구간은 겹치지 않는다.
// includeEnd=true 는 경계 분이 교시 범위의 끝에 정확히 닿는 경우도 포함해야 하는
// 교시 판정(FindPeriod)에서만 사용한다.
func RangesOverlap(begin1, end1, begin2, end2 int, includeEnd bool) bool {
	if includeEnd {
		return begin1 <= end2 && begin2 <= end1
	}
	return begin1 < end2 && begin2 < end1
}

// IsOverlap 후보 강의의 시간 슬롯이 이미 채워진 슬롯들과 겹치는지 검사한다.
// 요일이 같고 시작/종료가 모두 지정된 슬롯 쌍에 대해서만 겹침이 정의되며,
// 한쪽이라도 미지정이면 그 쌍은 겹치지 않는 것으로 본다.
func IsOverlap(times []LectureTime, filledTimes []LectureTime) bool {
	for _, filled := range filledTimes {
		if filled.Weekday == nil || filled.TimeBegin == nil || filled.TimeEnd == nil {
			continue
		}
		for _, t := range times {
			if t.Weekday == nil || t.TimeBegin == nil || t.TimeEnd == nil {
				continue
			}
			if *filled.Weekday != *t.Weekday {
				continue
			}
			if RangesOverlap(*filled.TimeBegin, *filled.TimeEnd, *t.TimeBegin, *t.TimeEnd, false) {
				return true
			}
		}
	}
	return false
}
