package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bangkihwa/seukot-management-web/config"
	"github.com/bangkihwa/seukot-management-web/internal/dto"
	"github.com/bangkihwa/seukot-management-web/internal/model"
	"github.com/bangkihwa/seukot-management-web/internal/repository"
	"github.com/bangkihwa/seukot-management-web/pkg/jwt"
)

// ── 인증 모듈 비즈니스 오류 ──

var (
	ErrInvalidCredentials  = errors.New("이메일 또는 비밀번호가 올바르지 않습니다")
	ErrRefreshTokenInvalid = errors.New("리프레시 토큰이 유효하지 않습니다")
	ErrStudentLoginFailed  = errors.New("학생 아이디 또는 이름이 올바르지 않습니다")
	ErrStudentInactive     = errors.New("비활성화된 학생 계정입니다")
	ErrSessionExpired      = errors.New("세션이 만료되었습니다")
	ErrSessionStoreDown    = errors.New("세션 저장소를 사용할 수 없습니다")
)

// AuthService 인증 비즈니스 인터페이스
// 관리자는 이메일/비밀번호 → JWT, 학생은 아이디/이름 → 불투명 세션 토큰.
type AuthService interface {
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminTokenResponse, error)
	AdminRefresh(ctx context.Context, refreshToken string) (*dto.AdminTokenResponse, error)
	StudentLogin(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentSessionResponse, error)
	StudentLogout(ctx context.Context, token string) error
	GetStudentProfile(ctx context.Context, studentID string) (*dto.StudentResponse, error)
}

type authService struct {
	cfg      *config.Config
	repo     *repository.Repository
	jwtMgr   *jwt.Manager
	sessions SessionStore
	logger   *zap.Logger
}

// NewAuthService AuthService 인스턴스 생성
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	sessions SessionStore,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:      cfg,
		repo:     repo,
		jwtMgr:   jwtMgr,
		sessions: sessions,
		logger:   logger,
	}
}

// ────────────────────── AdminLogin ──────────────────────

func (s *authService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminTokenResponse, error) {
	// 1. 관리자 조회
	admin, err := s.repo.Admin.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("관리자 조회 실패", zap.Error(err))
		return nil, err
	}

	// 2. 비밀번호 검증 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 토큰 쌍 발급
	return s.issueAdminTokens(admin)
}

// ────────────────────── AdminRefresh ──────────────────────

// AdminRefresh 리프레시 토큰으로 토큰 쌍 재발급 (토큰 회전)
// Access Token 이나 위조/만료된 토큰은 모두 ErrRefreshTokenInvalid 로 처리한다.
func (s *authService) AdminRefresh(ctx context.Context, refreshToken string) (*dto.AdminTokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshTokenInvalid
	}

	// 토큰 발급 이후 삭제된 계정 차단
	admin, err := s.repo.Admin.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenInvalid
		}
		s.logger.Error("관리자 조회 실패", zap.String("id", claims.AdminID), zap.Error(err))
		return nil, err
	}

	return s.issueAdminTokens(admin)
}

func (s *authService) issueAdminTokens(admin *model.Admin) (*dto.AdminTokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(admin.AdminID)
	if err != nil {
		s.logger.Error("AccessToken 발급 실패", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(admin.AdminID)
	if err != nil {
		s.logger.Error("RefreshToken 발급 실패", zap.Error(err))
		return nil, err
	}

	return &dto.AdminTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Admin: dto.AdminResponse{
			ID:    admin.AdminID,
			Email: admin.Email,
			Name:  admin.Name,
		},
	}, nil
}

// ────────────────────── StudentLogin ──────────────────────

// StudentLogin 학생 경량 로그인
// 아이디는 대소문자 무시, 이름은 공백 제거 후 정확 일치.
// 성공 시 불투명 UUID 세션 토큰을 발급하고 Redis 에 TTL 과 함께 저장한다.
func (s *authService) StudentLogin(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentSessionResponse, error) {
	if s.sessions == nil {
		return nil, ErrSessionStoreDown
	}

	student, err := s.repo.Student.GetByLoginID(ctx, strings.TrimSpace(req.LoginID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentLoginFailed
		}
		s.logger.Error("학생 조회 실패", zap.Error(err))
		return nil, err
	}

	if student.Name != strings.TrimSpace(req.Name) {
		return nil, ErrStudentLoginFailed
	}
	if !student.IsActive {
		return nil, ErrStudentInactive
	}

	token := uuid.New().String()
	ttl := s.cfg.Auth.StudentSessionTTL
	if err := s.sessions.SaveStudentSession(ctx, token, student.StudentID, ttl); err != nil {
		s.logger.Error("세션 저장 실패", zap.Error(err))
		return nil, ErrSessionStoreDown
	}

	return &dto.StudentSessionResponse{
		SessionToken: token,
		ExpiresIn:    int(ttl.Seconds()),
		Student:      *toStudentResponse(student),
	}, nil
}

// ────────────────────── StudentLogout ──────────────────────

func (s *authService) StudentLogout(ctx context.Context, token string) error {
	if s.sessions == nil || token == "" {
		return nil
	}
	if err := s.sessions.DeleteStudentSession(ctx, token); err != nil {
		s.logger.Warn("세션 삭제 실패", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── GetStudentProfile ──────────────────────

func (s *authService) GetStudentProfile(ctx context.Context, studentID string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.String("id", studentID), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}
