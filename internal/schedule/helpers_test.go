package schedule

// ── 테스트 공용 헬퍼 ──

func weekdayPtr(w Weekday) *Weekday { return &w }
func intPtr(v int) *int             { return &v }
func strPtr(s string) *string       { return &s }

// slot 요일/시작/종료가 모두 지정된 시간 슬롯
func slot(w Weekday, begin, end int) LectureTime {
	return LectureTime{Weekday: weekdayPtr(w), TimeBegin: intPtr(begin), TimeEnd: intPtr(end)}
}

// roomSlot 강의실까지 지정된 시간 슬롯
func roomSlot(w Weekday, begin, end int, room string) LectureTime {
	t := slot(w, begin, end)
	t.Room = strPtr(room)
	return t
}

// lectureOf 식별자/강의명과 시간 슬롯만 갖는 강의
func lectureOf(identifier, title string, times ...LectureTime) BaseLecture {
	return BaseLecture{
		Identifier: strPtr(identifier),
		Title:      strPtr(title),
		Times:      times,
	}
}
