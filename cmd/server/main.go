package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bangkihwa/seukot-management-web/config"
	"github.com/bangkihwa/seukot-management-web/internal/api/handler"
	"github.com/bangkihwa/seukot-management-web/internal/api/router"
	"github.com/bangkihwa/seukot-management-web/internal/repository"
	"github.com/bangkihwa/seukot-management-web/internal/service"
	"github.com/bangkihwa/seukot-management-web/pkg/database"
	"github.com/bangkihwa/seukot-management-web/pkg/jwt"
	applogger "github.com/bangkihwa/seukot-management-web/pkg/logger"
	"github.com/bangkihwa/seukot-management-web/pkg/redis"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로거 초기화
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("애플리케이션 시작 중...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 데이터베이스 연결
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("데이터베이스 연결 실패", zap.Error(err))
	}

	// 3.1 마이그레이션 실행
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("하위 sql.DB 획득 실패", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("데이터베이스 마이그레이션 실패", zap.Error(err))
	}

	// 4. Redis 연결 (연결 실패 시 경고 후 강등 운영: 학생 세션/속도 제한 비활성화)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 연결 실패, 학생 로그인과 속도 제한을 사용할 수 없습니다", zap.Error(err))
		rdb = nil
	}

	// 5. JWT 관리자 초기화
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. 의존성 주입: Repository → Service → Handler
	// typed-nil 인터페이스 주입을 피하기 위해 rdb 가 살아 있을 때만 할당한다
	var sessions service.SessionStore
	if rdb != nil {
		sessions = rdb
	}
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, sessions, logger)
	h := handler.NewHandler(cfg, svc)

	// 7. 라우터 초기화
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. HTTP 서버 시작 (우아한 종료 지원)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 서버 시작됨", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 서버 비정상 종료", zap.Error(err))
		}
	}()

	// 9. 시스템 시그널 대기 후 우아한 종료
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("종료 시그널 수신, 우아한 종료 시작...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("서버 종료 중 오류", zap.Error(err))
	}

	// 데이터베이스 연결 종료
	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	// Redis 연결 종료
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("서버가 종료되었습니다")
}
