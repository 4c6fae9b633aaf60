package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"heektime/backend/internal/schedule"
)

// ── PostgreSQL JSONB 커스텀 타입 ──

func scanJSONB(src interface{}, dst interface{}) error {
	if src == nil {
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("JSONB 스캔: 지원하지 않는 타입 %T", src)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

// LectureTimes 강의 시간 슬롯 목록 — JSONB 컬럼 매핑
type LectureTimes []schedule.LectureTime

func (t *LectureTimes) Scan(src interface{}) error { return scanJSONB(src, t) }

func (t LectureTimes) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}

// StringArray 문자열 목록 — JSONB 컬럼 매핑
type StringArray []string

func (a *StringArray) Scan(src interface{}) error { return scanJSONB(src, a) }

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return json.Marshal(a)
}

// MetaList 부가 정보 목록 — JSONB 컬럼 매핑
type MetaList []schedule.Meta

func (m *MetaList) Scan(src interface{}) error { return scanJSONB(src, m) }

func (m MetaList) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	return json.Marshal(m)
}

// PeriodList 교시 정의 목록 — JSONB 컬럼 매핑
type PeriodList []schedule.Period

func (p *PeriodList) Scan(src interface{}) error { return scanJSONB(src, p) }

func (p PeriodList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return json.Marshal(p)
}

// BaseModel 공통 감사 필드 (모든 모델에 내장)
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}
