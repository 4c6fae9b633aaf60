package model

import (
	"encoding/json"
	"fmt"

	"heektime/backend/internal/schedule"
)

// UserLecture 시간표에 추가된 강의 — user_lectures
//
// 카탈로그 강의를 추가하는 시점에 필드를 복사해 보관하므로, 이후
// 카탈로그가 갱신되어도 추가된 강의는 바뀌지 않는다.
type UserLecture struct {
	LectureID   string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"lectureId"`
	TimetableID string       `gorm:"type:uuid;not null;index"                       json:"timetableId"`
	Identifier  *string      `gorm:"type:varchar(50)"                               json:"identifier,omitempty"`
	Title       *string      `gorm:"type:varchar(200)"                              json:"title,omitempty"`
	Professor   *string      `gorm:"type:varchar(100)"                              json:"professor,omitempty"`
	Credit      *float64     `gorm:"type:numeric(4,1)"                              json:"credit,omitempty"`
	Times       LectureTimes `gorm:"type:jsonb;not null;default:'[]'"               json:"times"`
	Category    StringArray  `gorm:"type:jsonb;not null;default:'[]'"               json:"category"`
	Metas       MetaList     `gorm:"type:jsonb;not null;default:'[]'"               json:"metas"`
	BaseModel
}

func (UserLecture) TableName() string { return "user_lectures" }

// ToBase 충돌 판정과 그리드 배치에 쓰는 공통 표현으로 변환한다.
func (l *UserLecture) ToBase() schedule.BaseLecture {
	return schedule.BaseLecture{
		Identifier: l.Identifier,
		Title:      l.Title,
		Professor:  l.Professor,
		Credit:     l.Credit,
		Times:      []schedule.LectureTime(l.Times),
		Category:   []string(l.Category),
		Metas:      []schedule.Meta(l.Metas),
	}
}

// FromBase 카탈로그 강의의 필드를 복사한다. 감사 필드는 저장 시점에 채워진다.
func FromBase(timetableID string, base schedule.BaseLecture) UserLecture {
	return UserLecture{
		TimetableID: timetableID,
		Identifier:  base.Identifier,
		Title:       base.Title,
		Professor:   base.Professor,
		Credit:      base.Credit,
		Times:       LectureTimes(base.Times),
		Category:    StringArray(base.Category),
		Metas:       MetaList(base.Metas),
	}
}

// MasterLecture 카탈로그 원본 강의. 저장소 객체에서 읽어오기만 한다.
type MasterLecture struct {
	schedule.BaseLecture
	URL *string `json:"url,omitempty"`
}

// DecodeCatalog 카탈로그 JSON 배열을 해석한다.
//
// 항목 단위로 관대하게 해석한다: 깨진 항목은 건너뛰고 해석에 성공한
// 강의만 돌려준다. 두 번째 반환값은 건너뛴 항목 수다.
func DecodeCatalog(data []byte) ([]MasterLecture, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("카탈로그가 JSON 배열이 아닙니다: %w", err)
	}

	lectures := make([]MasterLecture, 0, len(raw))
	skipped := 0
	for _, item := range raw {
		var lecture MasterLecture
		if err := json.Unmarshal(item, &lecture); err != nil {
			skipped++
			continue
		}
		if err := validateTimes(lecture.Times); err != nil {
			skipped++
			continue
		}
		lectures = append(lectures, lecture)
	}
	return lectures, skipped, nil
}

func validateTimes(times []schedule.LectureTime) error {
	for _, t := range times {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
