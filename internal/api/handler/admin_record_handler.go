package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bangkihwa/seukot-management-web/internal/dto"
	"github.com/bangkihwa/seukot-management-web/internal/service"
	"github.com/bangkihwa/seukot-management-web/pkg/response"
)

// AdminRecordHandler 관리자 측 세특 기록 HTTP 처리기
type AdminRecordHandler struct {
	recordSvc service.RecordService
}

// NewAdminRecordHandler AdminRecordHandler 생성
func NewAdminRecordHandler(recordSvc service.RecordService) *AdminRecordHandler {
	return &AdminRecordHandler{recordSvc: recordSvc}
}

// Update 기록 직접 수정 (관리자, 부분 수정)
// PUT /api/v1/admin/records/:id
func (h *AdminRecordHandler) Update(c *gin.Context) {
	var req dto.AdminUpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	result, err := h.recordSvc.UpdateByID(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}

	response.OK(c, result)
}

// RequestRevision 수정보완요청
// POST /api/v1/admin/records/:id/request-revision
func (h *AdminRecordHandler) RequestRevision(c *gin.Context) {
	var req dto.RequestRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 30003, "수정 요청사항을 입력해주세요")
		return
	}

	result, err := h.recordSvc.RequestRevision(c.Request.Context(), c.Param("id"), req.Feedback)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackRequired) {
			response.BadRequest(c, 30003, "수정 요청사항을 입력해주세요")
			return
		}
		h.handleRecordError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AdminRecordHandler) handleRecordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		response.NotFound(c, 30001, "기록을 찾을 수 없습니다")
	case errors.Is(err, service.ErrInvalidSemester):
		response.BadRequest(c, 10001, "유효하지 않은 학기입니다")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, 10001, "유효하지 않은 완성 상태입니다")
	case errors.Is(err, service.ErrSubjectNameRequired):
		response.BadRequest(c, 10001, "과목명을 입력해주세요")
	case errors.Is(err, service.ErrDuplicateSubject):
		response.Conflict(c, 30002, "해당 학기에 이미 같은 과목 기록이 있습니다")
	default:
		response.InternalError(c)
	}
}
