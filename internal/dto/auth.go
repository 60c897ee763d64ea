package dto

// ── 관리자 인증 DTO ──

// AdminLoginRequest 관리자 로그인 요청
type AdminLoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AdminTokenResponse 관리자 토큰 쌍 응답
type AdminTokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"` // 쿠키 모드에서는 생략 가능
	ExpiresIn    int           `json:"expires_in"`              // Access Token 유효기간(초)
	Admin        AdminResponse `json:"admin"`
}

// AdminResponse 관리자 정보 응답
type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ── 학생 인증 DTO ──

// StudentLoginRequest 학생 경량 로그인 요청 (아이디 + 이름)
type StudentLoginRequest struct {
	LoginID string `json:"login_id" binding:"required,min=2,max=50"`
	Name    string `json:"name"     binding:"required,min=1,max=100"`
}

// StudentSessionResponse 학생 세션 발급 응답
type StudentSessionResponse struct {
	SessionToken string          `json:"session_token"`
	ExpiresIn    int             `json:"expires_in"` // 세션 유효기간(초)
	Student      StudentResponse `json:"student"`
}
