package model

// 학교/학기 상태값
const (
	StatusNormal   = "normal"
	StatusDisabled = "disabled"
)

// School 학교 테이블 — schools
type School struct {
	SchoolID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schoolId"`
	Name     string `gorm:"type:varchar(100);not null"                     json:"name"`
	Status   string `gorm:"type:varchar(20);not null;default:'normal'"     json:"status"` // normal | disabled
	BaseModel
}

func (School) TableName() string { return "schools" }
