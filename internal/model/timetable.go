package model

// 시간표 공개 범위
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Timetable 시간표 테이블 — timetables
type Timetable struct {
	TimetableID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"timetableId"`
	UserID      string `gorm:"type:uuid;not null;index"                       json:"userId"`
	SemesterID  string `gorm:"type:uuid;not null;index"                       json:"semesterId"`
	Title       string `gorm:"type:varchar(100);not null"                     json:"title"`
	Visibility  string `gorm:"type:varchar(20);not null;default:'private'"    json:"visibility"` // public | private
	BaseModel

	// 연관
	Semester *Semester     `gorm:"foreignKey:SemesterID;references:SemesterID" json:"semester,omitempty"`
	Lectures []UserLecture `gorm:"foreignKey:TimetableID;references:TimetableID" json:"lectures,omitempty"`
}

func (Timetable) TableName() string { return "timetables" }

// Editable 해당 사용자가 이 시간표를 수정할 수 있는지
func (t *Timetable) Editable(userID string) bool { return t.UserID == userID }

// ViewableBy 해당 사용자가 이 시간표를 볼 수 있는지
func (t *Timetable) ViewableBy(userID string) bool {
	return t.Visibility == VisibilityPublic || t.UserID == userID
}
