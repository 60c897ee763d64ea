package jwt

import (
	"testing"
	"time"

	"github.com/bangkihwa/seukot-management-web/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("admin-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken 실패: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 실패: %v", err)
	}

	if claims.AdminID != "admin-1" {
		t.Errorf("기대 AdminID=admin-1, 실제=%s", claims.AdminID)
	}
	if claims.Role != "admin" {
		t.Errorf("기대 Role=admin, 실제=%s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("기대 TokenType=access, 실제=%s", claims.TokenType)
	}
	if claims.Issuer != "seukot-management" {
		t.Errorf("기대 Issuer=seukot-management, 실제=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 는 비어 있으면 안 됨")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("admin-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken 실패: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 실패: %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("기대 TokenType=refresh, 실제=%s", claims.TokenType)
	}

	// 만료 시각이 약 24h 뒤인지 확인
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("RefreshToken TTL 기대 약 24h, 실제=%v", ttl)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret:       "another-secret-key-totally-different",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("admin-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken 실패: %v", err)
	}

	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("기대 ErrTokenInvalid, 실제: %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseToken("not-a-jwt"); err != ErrTokenInvalid {
		t.Errorf("기대 ErrTokenInvalid, 실제: %v", err)
	}
}
