package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bangkihwa/seukot-management-web/pkg/jwt"
	"github.com/bangkihwa/seukot-management-web/pkg/response"
)

// SessionResolver 학생 세션 토큰 → 학생 ID 해석 인터페이스
// 운영에서는 pkg/redis.Client 가 구현한다. 토큰이 없거나 만료되면 빈 문자열을 돌려준다.
type SessionResolver interface {
	GetStudentSession(ctx context.Context, token string) (string, error)
}

// AdminAuth 관리자 JWT 인증 미들웨어
// Authorization: Bearer <token> 에서 Access Token 을 추출해 검증한다
func AdminAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "인증 헤더가 없습니다")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "인증 헤더 형식이 올바르지 않습니다")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "토큰이 유효하지 않거나 만료되었습니다")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "토큰 유형이 올바르지 않습니다")
			c.Abort()
			return
		}

		// 관리자 정보를 컨텍스트에 주입
		c.Set("admin_id", claims.AdminID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// StudentAuth 학생 세션 인증 미들웨어
// X-Session-Token 헤더의 불투명 토큰을 세션 저장소에서 해석한다
// resolver 가 nil 이면 학생 API 전체를 차단한다 (세션 저장소 없이는 인증 불가)
func StudentAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resolver == nil {
			response.Unauthorized(c, 10002, "세션 저장소를 사용할 수 없습니다")
			c.Abort()
			return
		}

		token := c.GetHeader("X-Session-Token")
		if token == "" {
			response.Unauthorized(c, 10002, "세션 토큰이 없습니다")
			c.Abort()
			return
		}

		studentID, err := resolver.GetStudentSession(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, 10002, "세션 확인에 실패했습니다")
			c.Abort()
			return
		}
		if studentID == "" {
			response.Unauthorized(c, 10002, "세션이 만료되었거나 유효하지 않습니다")
			c.Abort()
			return
		}

		// 학생 정보를 컨텍스트에 주입
		c.Set("student_id", studentID)
		c.Set("session_token", token)

		c.Next()
	}
}
