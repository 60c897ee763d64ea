package model

// Student 학생 명부 — sm_students 테이블
// 관리자가 생성/관리하고, 학생은 로그인 아이디 + 이름으로 세션을 발급받는다.
type Student struct {
	StudentID      string  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentLoginID string  `gorm:"type:varchar(50);not null;uniqueIndex"                    json:"student_login_id"`
	Name           string  `gorm:"type:varchar(100);not null"                               json:"name"`
	Grade          string  `gorm:"type:varchar(10);not null;default:''"                     json:"grade"`
	EnrollmentYear *int    `gorm:""                                                         json:"enrollment_year"`
	GraduationYear *int    `gorm:""                                                         json:"graduation_year"`
	HighSchoolName string  `gorm:"type:varchar(200);not null;default:''"                    json:"high_school_name"`
	StudentPhone   string  `gorm:"type:varchar(30);not null;default:''"                     json:"student_phone"`
	ParentPhone    string  `gorm:"type:varchar(30);not null;default:''"                     json:"parent_phone"`
	ConsultantName string  `gorm:"type:varchar(100);not null;default:''"                    json:"consultant_name"`
	IsActive       bool    `gorm:"not null;default:true"                                    json:"is_active"`
	CreatedBy      *string `gorm:"type:uuid"                                                json:"created_by,omitempty"`
	BaseModel
}

// TableName 테이블명 지정
func (Student) TableName() string { return "sm_students" }
