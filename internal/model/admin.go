package model

// Admin 관리자 계정 — sm_admins 테이블
type Admin struct {
	AdminID      string `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"                   json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                               json:"-"`
	Name         string `gorm:"type:varchar(100);not null"                               json:"name"`
	BaseModel
}

// TableName 테이블명 지정
func (Admin) TableName() string { return "sm_admins" }
