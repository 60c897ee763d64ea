package dto

// ── 세특 기록 DTO ──

// CreateRecordRequest 기록 생성 요청 (학생)
// id/소유자/타임스탬프는 서버가 할당하므로 페이로드에서 제외한다.
type CreateRecordRequest struct {
	Semester         string   `json:"semester"          binding:"required"`
	SubjectName      string   `json:"subject_name"      binding:"required,min=1,max=100"`
	AchievementLevel *string  `json:"achievement_level" binding:"omitempty,oneof=A B C D E"`
	GradeRank        *int     `json:"grade_rank"        binding:"omitempty,min=1,max=9"`
	RawScore         *float64 `json:"raw_score"         binding:"omitempty,min=0,max=100"`
	SubjectAverage   *float64 `json:"subject_average"   binding:"omitempty,min=0,max=100"`
	SeukotAttitude   string   `json:"seukot_attitude"`
	SeukotInquiry    string   `json:"seukot_inquiry"`
	SeukotThinking   string   `json:"seukot_thinking"`
	SeukotCareer     string   `json:"seukot_career"`
	InquiryKeywords  []string `json:"inquiry_keywords"  binding:"omitempty,max=5"`
	CompletionStatus string   `json:"completion_status" binding:"omitempty"`
}

// UpdateRecordRequest 기록 수정 요청 (학생, 부분 수정)
// nil 필드는 변경하지 않는다. 빈 문자열 전달과 필드 생략은 구분된다.
type UpdateRecordRequest struct {
	Semester         *string   `json:"semester"`
	SubjectName      *string   `json:"subject_name"      binding:"omitempty,min=1,max=100"`
	AchievementLevel *string   `json:"achievement_level" binding:"omitempty,oneof=A B C D E"`
	GradeRank        *int      `json:"grade_rank"        binding:"omitempty,min=1,max=9"`
	RawScore         *float64  `json:"raw_score"         binding:"omitempty,min=0,max=100"`
	SubjectAverage   *float64  `json:"subject_average"   binding:"omitempty,min=0,max=100"`
	SeukotAttitude   *string   `json:"seukot_attitude"`
	SeukotInquiry    *string   `json:"seukot_inquiry"`
	SeukotThinking   *string   `json:"seukot_thinking"`
	SeukotCareer     *string   `json:"seukot_career"`
	InquiryKeywords  *[]string `json:"inquiry_keywords"  binding:"omitempty,max=5"`
	CompletionStatus *string   `json:"completion_status"`
}

// AdminUpdateRecordRequest 기록 직접 수정 요청 (관리자, 부분 수정)
// 상태를 포함한 모든 필드를 피드백 제약 없이 변경할 수 있다.
// 기존 admin_feedback 은 명시적으로 전달하지 않는 한 지워지지 않는다.
type AdminUpdateRecordRequest struct {
	Semester         *string   `json:"semester"`
	SubjectName      *string   `json:"subject_name"      binding:"omitempty,min=1,max=100"`
	AchievementLevel *string   `json:"achievement_level" binding:"omitempty,oneof=A B C D E"`
	GradeRank        *int      `json:"grade_rank"        binding:"omitempty,min=1,max=9"`
	RawScore         *float64  `json:"raw_score"         binding:"omitempty,min=0,max=100"`
	SubjectAverage   *float64  `json:"subject_average"   binding:"omitempty,min=0,max=100"`
	SeukotAttitude   *string   `json:"seukot_attitude"`
	SeukotInquiry    *string   `json:"seukot_inquiry"`
	SeukotThinking   *string   `json:"seukot_thinking"`
	SeukotCareer     *string   `json:"seukot_career"`
	InquiryKeywords  *[]string `json:"inquiry_keywords"  binding:"omitempty,max=5"`
	CompletionStatus *string   `json:"completion_status"`
	AdminFeedback    *string   `json:"admin_feedback"`
}

// RequestRevisionRequest 수정보완요청 (관리자)
type RequestRevisionRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// RecordListRequest 내 기록 목록 조회 파라미터 (학생)
type RecordListRequest struct {
	Semester string `form:"semester" binding:"omitempty"` // 생략 시 전체 학기
}

// RecordResponse 세특 기록 응답
type RecordResponse struct {
	ID               string   `json:"id"`
	StudentID        string   `json:"student_id"`
	Semester         string   `json:"semester"`
	SemesterLabel    string   `json:"semester_label"`
	SubjectName      string   `json:"subject_name"`
	AchievementLevel *string  `json:"achievement_level"`
	GradeRank        *int     `json:"grade_rank"`
	RawScore         *float64 `json:"raw_score"`
	SubjectAverage   *float64 `json:"subject_average"`
	SeukotAttitude   string   `json:"seukot_attitude"`
	SeukotInquiry    string   `json:"seukot_inquiry"`
	SeukotThinking   string   `json:"seukot_thinking"`
	SeukotCareer     string   `json:"seukot_career"`
	InquiryKeywords  []string `json:"inquiry_keywords"`
	CompletionStatus string   `json:"completion_status"`
	AdminFeedback    string   `json:"admin_feedback"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}
