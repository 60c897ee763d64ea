package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bangkihwa/seukot-management-web/internal/dto"
	"github.com/bangkihwa/seukot-management-web/internal/model"
	"github.com/bangkihwa/seukot-management-web/internal/repository"
)

// ── 학생 명부 모듈 비즈니스 오류 ──

var (
	ErrStudentNotFound = errors.New("학생 정보를 찾을 수 없습니다")
	ErrLoginIDTaken    = errors.New("이미 사용 중인 학생 아이디입니다")
)

// StudentService 학생 명부 비즈니스 인터페이스 (관리자 전용)
// 명부에서 학생을 삭제하는 흐름은 없으며, 비활성화(is_active)로 대체한다.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest, adminID string) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	SetActive(ctx context.Context, id string, isActive bool) (*dto.StudentResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService StudentService 인스턴스 생성
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest, adminID string) (*dto.StudentResponse, error) {
	loginID := strings.ToLower(strings.TrimSpace(req.StudentLoginID))

	// 로그인 아이디 중복 검사
	if _, err := s.repo.Student.GetByLoginID(ctx, loginID); err == nil {
		return nil, ErrLoginIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("학생 아이디 중복 검사 실패", zap.Error(err))
		return nil, err
	}

	student := &model.Student{
		StudentLoginID: loginID,
		Name:           strings.TrimSpace(req.Name),
		Grade:          req.Grade,
		EnrollmentYear: req.EnrollmentYear,
		GraduationYear: req.GraduationYear,
		HighSchoolName: req.HighSchoolName,
		StudentPhone:   req.StudentPhone,
		ParentPhone:    req.ParentPhone,
		ConsultantName: req.ConsultantName,
		IsActive:       true,
	}
	if adminID != "" {
		student.CreatedBy = &adminID
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("학생 등록 실패", zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error) {
	students, total, err := s.repo.Student.List(ctx,
		req.GetOffset(), req.GetPageSize(),
		strings.TrimSpace(req.Keyword), req.Grade,
	)
	if err != nil {
		s.logger.Error("학생 목록 조회 실패", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *toStudentResponse(&students[i]))
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		student.Name = strings.TrimSpace(*req.Name)
	}
	if req.Grade != nil {
		student.Grade = *req.Grade
	}
	if req.EnrollmentYear != nil {
		student.EnrollmentYear = req.EnrollmentYear
	}
	if req.GraduationYear != nil {
		student.GraduationYear = req.GraduationYear
	}
	if req.HighSchoolName != nil {
		student.HighSchoolName = *req.HighSchoolName
	}
	if req.StudentPhone != nil {
		student.StudentPhone = *req.StudentPhone
	}
	if req.ParentPhone != nil {
		student.ParentPhone = *req.ParentPhone
	}
	if req.ConsultantName != nil {
		student.ConsultantName = *req.ConsultantName
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("학생 정보 수정 실패", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── SetActive ──────────────────────

func (s *studentService) SetActive(ctx context.Context, id string, isActive bool) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	student.IsActive = isActive

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("학생 활성 상태 변경 실패", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ── 내부 변환 ──

func toStudentResponse(student *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:             student.StudentID,
		StudentLoginID: student.StudentLoginID,
		Name:           student.Name,
		Grade:          student.Grade,
		EnrollmentYear: student.EnrollmentYear,
		GraduationYear: student.GraduationYear,
		HighSchoolName: student.HighSchoolName,
		StudentPhone:   student.StudentPhone,
		ParentPhone:    student.ParentPhone,
		ConsultantName: student.ConsultantName,
		IsActive:       student.IsActive,
		CreatedAt:      student.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      student.UpdatedAt.Format(time.RFC3339),
	}
}
