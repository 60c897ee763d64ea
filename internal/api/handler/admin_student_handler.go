package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bangkihwa/seukot-management-web/internal/dto"
	"github.com/bangkihwa/seukot-management-web/internal/service"
	"github.com/bangkihwa/seukot-management-web/pkg/response"
)

// AdminStudentHandler 관리자 측 학생 명부 HTTP 처리기
type AdminStudentHandler struct {
	studentSvc service.StudentService
	recordSvc  service.RecordService
	exportSvc  service.ExportService
}

// NewAdminStudentHandler AdminStudentHandler 생성
func NewAdminStudentHandler(studentSvc service.StudentService, recordSvc service.RecordService, exportSvc service.ExportService) *AdminStudentHandler {
	return &AdminStudentHandler{
		studentSvc: studentSvc,
		recordSvc:  recordSvc,
		exportSvc:  exportSvc,
	}
}

// List 학생 목록 조회 (검색/필터/페이지네이션)
// GET /api/v1/admin/students?keyword=김&grade=2&page=1&page_size=20
func (h *AdminStudentHandler) List(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	students, total, err := h.studentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, students, total, req.GetPage(), req.GetPageSize())
}

// Create 학생 등록
// POST /api/v1/admin/students
func (h *AdminStudentHandler) Create(c *gin.Context) {
	adminID, ok := MustGetAdminID(c)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	result, err := h.studentSvc.Create(c.Request.Context(), &req, adminID)
	if err != nil {
		if errors.Is(err, service.ErrLoginIDTaken) {
			response.Conflict(c, 20002, "이미 사용 중인 학생 아이디입니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Get 학생 상세 조회
// GET /api/v1/admin/students/:id
func (h *AdminStudentHandler) Get(c *gin.Context) {
	result, err := h.studentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 20001, "학생 정보를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update 학생 정보 수정 (부분 수정)
// PUT /api/v1/admin/students/:id
func (h *AdminStudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	result, err := h.studentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 20001, "학생 정보를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// SetActive 학생 활성/비활성 전환
// PUT /api/v1/admin/students/:id/active
func (h *AdminStudentHandler) SetActive(c *gin.Context) {
	var req dto.SetStudentActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	result, err := h.studentSvc.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 20001, "학생 정보를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListRecords 특정 학생의 기록 전체 조회
// GET /api/v1/admin/students/:id/records
func (h *AdminStudentHandler) ListRecords(c *gin.Context) {
	result, err := h.recordSvc.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 20001, "학생 정보를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ExportRecords 학생 세특 기록 Excel 내보내기
// GET /api/v1/admin/students/:id/records/export
func (h *AdminStudentHandler) ExportRecords(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportStudentRecords(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 20001, "학생 정보를 찾을 수 없습니다")
		case errors.Is(err, service.ErrExportNoRecords):
			response.BadRequest(c, 30005, "내보낼 세특 기록이 없습니다")
		default:
			response.InternalError(c)
		}
		return
	}

	// 다운로드 응답 헤더
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
