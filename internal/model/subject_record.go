package model

// SubjectRecord 세특 과목 기록 — sm_subject_records 테이블
// (학생, 학기, 과목명) 당 한 행. 성적 필드는 모두 선택 입력.
type SubjectRecord struct {
	RecordID         string            `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID        string            `gorm:"type:uuid;not null;index"                                 json:"student_id"`
	Semester         Semester          `gorm:"type:varchar(3);not null"                                 json:"semester"`
	SubjectName      string            `gorm:"type:varchar(100);not null"                               json:"subject_name"`
	AchievementLevel *AchievementLevel `gorm:"type:char(1)"                                             json:"achievement_level"`
	GradeRank        *int              `gorm:""                                                         json:"grade_rank"`
	RawScore         *float64          `gorm:"type:numeric(5,1)"                                        json:"raw_score"`
	SubjectAverage   *float64          `gorm:"type:numeric(5,1)"                                        json:"subject_average"`
	SeukotAttitude   string            `gorm:"type:text;not null;default:''"                            json:"seukot_attitude"`
	SeukotInquiry    string            `gorm:"type:text;not null;default:''"                            json:"seukot_inquiry"`
	SeukotThinking   string            `gorm:"type:text;not null;default:''"                            json:"seukot_thinking"`
	SeukotCareer     string            `gorm:"type:text;not null;default:''"                            json:"seukot_career"`
	InquiryKeywords  StringArray       `gorm:"type:text[];not null;default:'{}'"                        json:"inquiry_keywords"`
	CompletionStatus CompletionStatus  `gorm:"type:varchar(10);not null;default:'미작성'"               json:"completion_status"`
	AdminFeedback    string            `gorm:"type:text;not null;default:''"                            json:"admin_feedback"`
	BaseModel

	// 관계
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName 테이블명 지정
func (SubjectRecord) TableName() string { return "sm_subject_records" }
