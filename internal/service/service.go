package service

import (
	"go.uber.org/zap"

	"github.com/bangkihwa/seukot-management-web/config"
	"github.com/bangkihwa/seukot-management-web/internal/repository"
	"github.com/bangkihwa/seukot-management-web/pkg/jwt"
)

// Service 모든 Service 의 집계 진입점
type Service struct {
	Auth    AuthService
	Student StudentService
	Record  RecordService
	Export  ExportService
}

// NewService Service 집계 생성
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	sessions SessionStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(cfg, repo, jwtMgr, sessions, logger),
		Student: NewStudentService(repo, logger),
		Record:  NewRecordService(repo, logger),
		Export:  NewExportService(repo, logger),
	}
}
