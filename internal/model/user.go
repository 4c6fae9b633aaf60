package model

// User 사용자 테이블 — users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"userId"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	BaseModel
}

func (User) TableName() string { return "users" }
