package handler

import (
	"github.com/bangkihwa/seukot-management-web/config"
	"github.com/bangkihwa/seukot-management-web/internal/service"
)

// Handler 모든 Handler 의 집계 진입점
type Handler struct {
	Auth          *AuthHandler
	StudentRecord *StudentRecordHandler
	AdminStudent  *AdminStudentHandler
	AdminRecord   *AdminRecordHandler
}

// NewHandler Handler 집계 생성
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(cfg, svc.Auth),
		StudentRecord: NewStudentRecordHandler(svc.Record),
		AdminStudent:  NewAdminStudentHandler(svc.Student, svc.Record, svc.Export),
		AdminRecord:   NewAdminRecordHandler(svc.Record),
	}
}
