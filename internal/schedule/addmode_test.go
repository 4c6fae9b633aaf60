package schedule

import "testing"

func TestResolveAddMode_Precedence(t *testing.T) {
	added := []BaseLecture{lectureOf("CS101", "자료구조", slot(Monday, 540, 630))}
	filled := []LectureTime{slot(Monday, 540, 630)}

	// 이미 추가된 강의이면서 시간도 겹치면 already-added 가 우선한다
	candidate := lectureOf("CS101", "자료구조", slot(Monday, 540, 630))
	if mode := ResolveAddMode(true, false, candidate, added, filled); mode != AddModeAlreadyAdded {
		t.Errorf("기대 already-added, 실제: %s", mode)
	}

	// 편집 불가면 다른 모든 상태보다 hidden 이 우선한다
	if mode := ResolveAddMode(false, true, candidate, added, filled); mode != AddModeHidden {
		t.Errorf("기대 hidden, 실제: %s", mode)
	}

	// 변경 요청이 진행 중이면 adding
	if mode := ResolveAddMode(true, true, candidate, added, filled); mode != AddModeAdding {
		t.Errorf("기대 adding, 실제: %s", mode)
	}
}

func TestResolveAddMode_Overlap(t *testing.T) {
	added := []BaseLecture{lectureOf("CS101", "자료구조", slot(Monday, 540, 630))}
	filled := []LectureTime{slot(Monday, 540, 630)}

	candidate := lectureOf("CS202", "알고리즘", slot(Monday, 600, 690))
	if mode := ResolveAddMode(true, false, candidate, added, filled); mode != AddModeOverlap {
		t.Errorf("기대 overlap, 실제: %s", mode)
	}
}

func TestResolveAddMode_Available(t *testing.T) {
	added := []BaseLecture{lectureOf("CS101", "자료구조", slot(Monday, 540, 630))}
	filled := []LectureTime{slot(Monday, 540, 630)}

	candidate := lectureOf("CS202", "알고리즘", slot(Tuesday, 600, 690))
	if mode := ResolveAddMode(true, false, candidate, added, filled); mode != AddModeAvailable {
		t.Errorf("기대 available, 실제: %s", mode)
	}
	if !AddModeAvailable.Enabled() {
		t.Error("available 상태는 추가를 허용해야 합니다")
	}
	if AddModeAdding.Enabled() || AddModeAlreadyAdded.Enabled() || AddModeOverlap.Enabled() {
		t.Error("available 외의 상태는 추가를 허용하면 안 됩니다")
	}
}

func TestResolveAddMode_EmptyIdentifierIsNotAlreadyAdded(t *testing.T) {
	// 빈 식별자는 동일성 비교 대상이 아니다
	added := []BaseLecture{lectureOf("", "제목 없음", slot(Monday, 540, 630))}
	candidate := lectureOf("", "제목 없음", slot(Tuesday, 540, 630))

	if mode := ResolveAddMode(true, false, candidate, added, nil); mode != AddModeAvailable {
		t.Errorf("빈 식별자는 already-added 로 판정되면 안 됩니다, 실제: %s", mode)
	}
}
