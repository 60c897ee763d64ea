package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bangkihwa/seukot-management-web/internal/dto"
	"github.com/bangkihwa/seukot-management-web/internal/model"
	"github.com/bangkihwa/seukot-management-web/internal/service"
	"github.com/bangkihwa/seukot-management-web/pkg/response"
)

// StudentRecordHandler 학생 측 세특 기록 HTTP 처리기
// 모든 작업은 세션에서 해석된 student_id 범위로 제한된다.
type StudentRecordHandler struct {
	recordSvc service.RecordService
}

// NewStudentRecordHandler StudentRecordHandler 생성
func NewStudentRecordHandler(recordSvc service.RecordService) *StudentRecordHandler {
	return &StudentRecordHandler{recordSvc: recordSvc}
}

// List 내 기록 목록 조회
// GET /api/v1/student/records?semester=1-1
func (h *StudentRecordHandler) List(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	var req dto.RecordListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	var semester *model.Semester
	if req.Semester != "" {
		s := model.Semester(req.Semester)
		semester = &s
	}

	result, err := h.recordSvc.ListMine(c.Request.Context(), studentID, semester)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}

	response.OK(c, result)
}

// Create 내 기록 생성
// POST /api/v1/student/records
func (h *StudentRecordHandler) Create(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	result, err := h.recordSvc.AddMine(c.Request.Context(), studentID, &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}

	response.Created(c, result)
}

// Update 내 기록 수정 (부분 수정)
// PUT /api/v1/student/records/:id
func (h *StudentRecordHandler) Update(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	result, err := h.recordSvc.UpdateMine(c.Request.Context(), studentID, c.Param("id"), &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete 내 기록 삭제
// DELETE /api/v1/student/records/:id
func (h *StudentRecordHandler) Delete(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	if err := h.recordSvc.DeleteMine(c.Request.Context(), studentID, c.Param("id")); err != nil {
		h.handleRecordError(c, err)
		return
	}

	response.OK(c, nil)
}

// Overview 내 학기별 요약 통계
// GET /api/v1/student/overview
func (h *StudentRecordHandler) Overview(c *gin.Context) {
	studentID, ok := MustGetStudentID(c)
	if !ok {
		return
	}

	result, err := h.recordSvc.GetMyOverview(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// handleRecordError 기록 모듈 공통 오류 → HTTP 응답 매핑
func (h *StudentRecordHandler) handleRecordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		response.NotFound(c, 30001, "기록을 찾을 수 없습니다")
	case errors.Is(err, service.ErrInvalidSemester):
		response.BadRequest(c, 10001, "유효하지 않은 학기입니다")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, 10001, "유효하지 않은 완성 상태입니다")
	case errors.Is(err, service.ErrSubjectNameRequired):
		response.BadRequest(c, 10001, "과목명을 입력해주세요")
	case errors.Is(err, service.ErrStatusNotAllowed):
		response.Forbidden(c, 30004, "수정요청 상태는 관리자만 설정할 수 있습니다")
	case errors.Is(err, service.ErrDuplicateSubject):
		response.Conflict(c, 30002, "해당 학기에 이미 같은 과목 기록이 있습니다")
	default:
		response.InternalError(c)
	}
}
