package schedule

// AddMode 강의 추가 버튼의 표시 상태.
// 상태 판정 우선순위: hidden > adding > already-added > overlap > available.
// already-added 는 식별자 일치 검사이고 overlap 은 시간 겹침 검사로,
// 둘 다 해당하면 항상 already-added 로 보고해야 한다.
type AddMode int

const (
	// AddModeHidden 편집 권한이 없는 시간표 (다른 사용자의 시간표 열람 등)
	AddModeHidden AddMode = iota
	// AddModeAdding 추가/삭제 요청이 진행 중 — 버튼 비활성
	AddModeAdding
	// AddModeAlreadyAdded 같은 식별자의 강의가 이미 추가됨 — 버튼 비활성
	AddModeAlreadyAdded
	// AddModeOverlap 기존 강의와 시간이 겹침 — 버튼 비활성
	AddModeOverlap
	// AddModeAvailable 추가 가능
	AddModeAvailable
)

func (m AddMode) String() string {
	switch m {
	case AddModeHidden:
		return "hidden"
	case AddModeAdding:
		return "adding"
	case AddModeAlreadyAdded:
		return "already-added"
	case AddModeOverlap:
		return "overlap"
	case AddModeAvailable:
		return "available"
	}
	return "unknown"
}

// MarshalJSON 상태 문자열로 직렬화
func (m AddMode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// Enabled 추가 동작을 허용하는 상태인지
func (m AddMode) Enabled() bool { return m == AddModeAvailable }

// ResolveAddMode 후보 강의의 추가 버튼 상태를 계산한다.
//
//   - editable=false: 항상 hidden
//   - mutating=true: 진행 중인 변경이 끝날 때까지 adding
//   - 식별자가 비어 있지 않고 이미 추가된 강의와 일치하면 already-added
//   - 채워진 슬롯과 시간이 겹치면 overlap
func ResolveAddMode(
	editable bool,
	mutating bool,
	candidate BaseLecture,
	added []BaseLecture,
	filledTimes []LectureTime,
) AddMode {
	if !editable {
		return AddModeHidden
	}
	if mutating {
		return AddModeAdding
	}
	if candidate.Identifier != nil && *candidate.Identifier != "" {
		for _, lecture := range added {
			if lecture.Identifier != nil && *lecture.Identifier == *candidate.Identifier {
				return AddModeAlreadyAdded
			}
		}
	}
	if IsOverlap(candidate.Times, filledTimes) {
		return AddModeOverlap
	}
	return AddModeAvailable
}
