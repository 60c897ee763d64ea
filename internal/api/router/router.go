package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangkihwa/seukot-management-web/config"
	"github.com/bangkihwa/seukot-management-web/internal/api/handler"
	"github.com/bangkihwa/seukot-management-web/internal/api/middleware"
	"github.com/bangkihwa/seukot-management-web/pkg/jwt"
	"github.com/bangkihwa/seukot-management-web/pkg/redis"
)

// maxBodyBytes 전역 요청 본문 제한 (1MB)
const maxBodyBytes = 1 << 20

// Setup Gin 라우터 엔진 초기화
// rdb 는 nil 일 수 있다. 이 경우 속도 제한은 비활성화되고 학생 API 는 차단된다.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// 미들웨어에는 nil 인터페이스 주입을 피하기 위해 명시적으로 변환한다
	var sessions middleware.SessionResolver
	if rdb != nil {
		sessions = rdb
	}

	// ── 헬스체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 로그인 엔드포인트는 무차별 대입 방지를 위해 속도 제한을 건다
		loginLimit := middleware.RateLimit(rdb, 10, time.Minute)

		// 학생 인증 (인증 불필요)
		v1.POST("/student/auth/login", loginLimit, h.Auth.StudentLogin)

		// 관리자 인증 (인증 불필요, 리프레시는 HttpOnly 쿠키로 검증)
		v1.POST("/admin/auth/login", loginLimit, h.Auth.AdminLogin)
		v1.POST("/admin/auth/refresh", h.Auth.AdminRefresh)

		// ── 학생 측 (세션 토큰 인증) ──
		student := v1.Group("/student")
		student.Use(middleware.StudentAuth(sessions))
		{
			student.POST("/auth/logout", h.Auth.StudentLogout)
			student.GET("/auth/me", h.Auth.StudentMe)

			records := student.Group("/records")
			{
				records.GET("", h.StudentRecord.List)
				records.POST("", h.StudentRecord.Create)
				records.PUT("/:id", h.StudentRecord.Update)
				records.DELETE("/:id", h.StudentRecord.Delete)
			}

			student.GET("/overview", h.StudentRecord.Overview)
		}

		// ── 관리자 측 (JWT 인증) ──
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth(jwtMgr))
		{
			admin.POST("/auth/logout", h.Auth.AdminLogout)

			students := admin.Group("/students")
			{
				students.GET("", h.AdminStudent.List)
				students.POST("", h.AdminStudent.Create)
				students.GET("/:id", h.AdminStudent.Get)
				students.PUT("/:id", h.AdminStudent.Update)
				students.PUT("/:id/active", h.AdminStudent.SetActive)
				students.GET("/:id/records", h.AdminStudent.ListRecords)
				students.GET("/:id/records/export", h.AdminStudent.ExportRecords)
			}

			records := admin.Group("/records")
			{
				records.PUT("/:id", h.AdminRecord.Update)
				records.POST("/:id/request-revision", h.AdminRecord.RequestRevision)
			}
		}
	}

	return r
}
