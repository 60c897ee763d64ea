package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bangkihwa/seukot-management-web/config"
	"github.com/bangkihwa/seukot-management-web/internal/dto"
	"github.com/bangkihwa/seukot-management-web/internal/service"
	"github.com/bangkihwa/seukot-management-web/pkg/response"
)

// AuthHandler 인증 모듈 HTTP 처리기
type AuthHandler struct {
	cfg     *config.Config
	authSvc service.AuthService
}

// NewAuthHandler AuthHandler 생성
func NewAuthHandler(cfg *config.Config, authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc}
}

// AdminLogin 관리자 로그인
// POST /api/v1/admin/auth/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	result, err := h.authSvc.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "이메일 또는 비밀번호가 올바르지 않습니다")
			return
		}
		response.InternalError(c)
		return
	}

	// Refresh Token 은 HttpOnly 쿠키로 전달하고 응답 본문에서는 제외한다
	h.setRefreshCookie(c, result.RefreshToken)
	result.RefreshToken = ""

	response.OK(c, result)
}

// AdminRefresh 관리자 토큰 쌍 재발급
// POST /api/v1/admin/auth/refresh
// 리프레시 토큰은 HttpOnly 쿠키에서 읽고, 재발급 시 쿠키도 함께 회전한다.
func (h *AuthHandler) AdminRefresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil || refreshToken == "" {
		response.Error(c, http.StatusUnauthorized, 10002, "리프레시 토큰이 유효하지 않습니다")
		return
	}

	result, err := h.authSvc.AdminRefresh(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrRefreshTokenInvalid) {
			h.clearRefreshCookie(c)
			response.Error(c, http.StatusUnauthorized, 10002, "리프레시 토큰이 유효하지 않습니다")
			return
		}
		response.InternalError(c)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	result.RefreshToken = ""

	response.OK(c, result)
}

// AdminLogout 관리자 로그아웃
// POST /api/v1/admin/auth/logout
// Access Token 은 클라이언트가 폐기하고, 서버는 리프레시 쿠키만 제거한다.
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	h.clearRefreshCookie(c)
	response.OK(c, nil)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	h.writeRefreshCookie(c, token, int(h.cfg.Auth.RefreshTokenTTL.Seconds()))
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	h.writeRefreshCookie(c, "", -1)
}

func (h *AuthHandler) writeRefreshCookie(c *gin.Context, token string, maxAge int) {
	cookie := h.cfg.Auth.Cookie
	sameSite := http.SameSiteLaxMode
	if cookie.SameSite == "Strict" {
		sameSite = http.SameSiteStrictMode
	} else if cookie.SameSite == "None" {
		sameSite = http.SameSiteNoneMode
	}

	c.SetSameSite(sameSite)
	c.SetCookie(
		"refresh_token",
		token,
		maxAge,
		"/api/v1/admin/auth",
		cookie.Domain,
		cookie.Secure,
		true, // HttpOnly
	)
}

// StudentLogin 학생 경량 로그인 (아이디 + 이름)
// POST /api/v1/student/auth/login
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req dto.StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	result, err := h.authSvc.StudentLogin(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentLoginFailed):
			response.Error(c, http.StatusUnauthorized, 11002, "학생 아이디 또는 이름이 올바르지 않습니다")
		case errors.Is(err, service.ErrStudentInactive):
			response.Forbidden(c, 11003, "비활성화된 학생 계정입니다")
		case errors.Is(err, service.ErrSessionStoreDown):
			response.Error(c, http.StatusServiceUnavailable, 50000, "세션 저장소를 사용할 수 없습니다")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// StudentLogout 학생 로그아웃
// POST /api/v1/student/auth/logout
func (h *AuthHandler) StudentLogout(c *gin.Context) {
	token := c.GetHeader("X-Session-Token")
	if err := h.authSvc.StudentLogout(c.Request.Context(), token); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// StudentMe 현재 학생 프로필 조회
// GET /api/v1/student/auth/me
func (h *AuthHandler) StudentMe(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.GetStudentProfile(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 20001, "학생 정보를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
