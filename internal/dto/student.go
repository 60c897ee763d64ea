package dto

// ── 학생 명부 DTO ──

// CreateStudentRequest 학생 등록 요청 (관리자)
type CreateStudentRequest struct {
	StudentLoginID string `json:"student_login_id" binding:"required,min=2,max=50"`
	Name           string `json:"name"             binding:"required,min=1,max=100"`
	Grade          string `json:"grade"            binding:"omitempty,oneof=1 2 3"`
	EnrollmentYear *int   `json:"enrollment_year"  binding:"omitempty,min=2000,max=2100"`
	GraduationYear *int   `json:"graduation_year"  binding:"omitempty,min=2000,max=2100"`
	HighSchoolName string `json:"high_school_name" binding:"omitempty,max=200"`
	StudentPhone   string `json:"student_phone"    binding:"omitempty,max=30"`
	ParentPhone    string `json:"parent_phone"     binding:"omitempty,max=30"`
	ConsultantName string `json:"consultant_name"  binding:"omitempty,max=100"`
}

// UpdateStudentRequest 학생 정보 수정 요청 (관리자, 부분 수정)
// nil 필드는 변경하지 않는다.
type UpdateStudentRequest struct {
	Name           *string `json:"name"             binding:"omitempty,min=1,max=100"`
	Grade          *string `json:"grade"            binding:"omitempty,oneof=1 2 3"`
	EnrollmentYear *int    `json:"enrollment_year"  binding:"omitempty,min=2000,max=2100"`
	GraduationYear *int    `json:"graduation_year"  binding:"omitempty,min=2000,max=2100"`
	HighSchoolName *string `json:"high_school_name" binding:"omitempty,max=200"`
	StudentPhone   *string `json:"student_phone"    binding:"omitempty,max=30"`
	ParentPhone    *string `json:"parent_phone"     binding:"omitempty,max=30"`
	ConsultantName *string `json:"consultant_name"  binding:"omitempty,max=100"`
}

// SetStudentActiveRequest 학생 활성 상태 변경 요청
type SetStudentActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// StudentListRequest 학생 목록 조회 파라미터
type StudentListRequest struct {
	PaginationRequest
	Keyword string `form:"keyword" binding:"omitempty,max=100"` // 이름/아이디 검색
	Grade   string `form:"grade"   binding:"omitempty,oneof=1 2 3"`
}

// StudentResponse 학생 정보 응답
type StudentResponse struct {
	ID             string `json:"id"`
	StudentLoginID string `json:"student_login_id"`
	Name           string `json:"name"`
	Grade          string `json:"grade"`
	EnrollmentYear *int   `json:"enrollment_year"`
	GraduationYear *int   `json:"graduation_year"`
	HighSchoolName string `json:"high_school_name"`
	StudentPhone   string `json:"student_phone"`
	ParentPhone    string `json:"parent_phone"`
	ConsultantName string `json:"consultant_name"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
