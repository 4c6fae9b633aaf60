package model

// Semester 학기 테이블 — semesters
//
// Periods 는 교시 번호 → 분 범위 정의, LecturesURL 은 해당 학기의 강의
// 카탈로그 객체 경로다.
type Semester struct {
	SemesterID  string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"semesterId"`
	SchoolID    string     `gorm:"type:uuid;not null;index"                       json:"schoolId"`
	Year        int        `gorm:"not null"                                       json:"year"`
	Term        string     `gorm:"type:varchar(20);not null"                      json:"term"` // 1학기 | 여름학기 | 2학기 | 겨울학기 | 봄학기 | 가을학기
	Periods     PeriodList `gorm:"type:jsonb;not null;default:'[]'"               json:"periods"`
	LecturesURL string     `gorm:"type:varchar(500);not null"                     json:"lecturesUrl"`
	Status      string     `gorm:"type:varchar(20);not null;default:'normal'"     json:"status"` // normal | disabled
	BaseModel

	// 연관
	School *School `gorm:"foreignKey:SchoolID;references:SchoolID" json:"school,omitempty"`
}

func (Semester) TableName() string { return "semesters" }
