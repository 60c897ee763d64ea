package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bangkihwa/seukot-management-web/pkg/response"
)

// MustGetStudentID Gin 컨텍스트에서 student_id 를 안전하게 추출한다.
// 학생 세션 미들웨어가 주입하지 않았으면 401 을 기록하고 false 를 돌려준다.
// 호출 측은 ok=false 일 때 바로 return 해야 한다.
func MustGetStudentID(c *gin.Context) (string, bool) {
	v, exists := c.Get("student_id")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return s, true
}

// MustGetAdminID Gin 컨텍스트에서 admin_id 를 안전하게 추출한다.
func MustGetAdminID(c *gin.Context) (string, bool) {
	v, exists := c.Get("admin_id")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return s, true
}
