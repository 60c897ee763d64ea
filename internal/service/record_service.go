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

// ── 세특 기록 모듈 비즈니스 오류 ──

var (
	ErrRecordNotFound      = errors.New("기록을 찾을 수 없습니다")
	ErrInvalidSemester     = errors.New("유효하지 않은 학기입니다")
	ErrInvalidStatus       = errors.New("유효하지 않은 완성 상태입니다")
	ErrStatusNotAllowed    = errors.New("수정요청 상태는 관리자만 설정할 수 있습니다")
	ErrDuplicateSubject    = errors.New("해당 학기에 이미 같은 과목 기록이 있습니다")
	ErrSubjectNameRequired = errors.New("과목명을 입력해주세요")
	ErrFeedbackRequired    = errors.New("수정 요청사항을 입력해주세요")
)

// RecordService 세특 기록 비즈니스 인터페이스
//
// 학생 측 작업(…Mine)은 세션에서 해석된 studentID 로 소유권을 강제하고,
// 관리자 측 작업(ListByStudent/UpdateByID/RequestRevision)은 제한 없이 접근한다.
// 다른 학생의 기록에 접근하면 존재 여부를 노출하지 않도록 ErrRecordNotFound 를 돌려준다.
type RecordService interface {
	// 학생 측
	ListMine(ctx context.Context, studentID string, semester *model.Semester) ([]dto.RecordResponse, error)
	AddMine(ctx context.Context, studentID string, req *dto.CreateRecordRequest) (*dto.RecordResponse, error)
	UpdateMine(ctx context.Context, studentID, recordID string, req *dto.UpdateRecordRequest) (*dto.RecordResponse, error)
	DeleteMine(ctx context.Context, studentID, recordID string) error
	GetMyOverview(ctx context.Context, studentID string) ([]dto.SemesterSummary, error)

	// 관리자 측
	ListByStudent(ctx context.Context, studentID string) ([]dto.RecordResponse, error)
	UpdateByID(ctx context.Context, recordID string, req *dto.AdminUpdateRecordRequest) (*dto.RecordResponse, error)
	RequestRevision(ctx context.Context, recordID, feedback string) (*dto.RecordResponse, error)
}

type recordService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRecordService RecordService 인스턴스 생성
func NewRecordService(repo *repository.Repository, logger *zap.Logger) RecordService {
	return &recordService{repo: repo, logger: logger}
}

// ────────────────────── ListMine ──────────────────────

func (s *recordService) ListMine(ctx context.Context, studentID string, semester *model.Semester) ([]dto.RecordResponse, error) {
	if semester != nil && !semester.Valid() {
		return nil, ErrInvalidSemester
	}

	records, err := s.repo.SubjectRecord.ListByStudent(ctx, studentID, semester)
	if err != nil {
		s.logger.Error("기록 목록 조회 실패", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	return toRecordResponses(records), nil
}

// ────────────────────── AddMine ──────────────────────

func (s *recordService) AddMine(ctx context.Context, studentID string, req *dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	semester := model.Semester(req.Semester)
	if !semester.Valid() {
		return nil, ErrInvalidSemester
	}

	// 상태 기본값은 미작성. 수정요청은 학생이 직접 설정할 수 없다.
	status := model.StatusUnwritten
	if req.CompletionStatus != "" {
		status = model.CompletionStatus(req.CompletionStatus)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		if !status.StudentSettable() {
			return nil, ErrStatusNotAllowed
		}
	}

	// 공백뿐인 과목명은 바인딩 min=1 을 통과하므로 트리밍 후 재검사한다
	subjectName := strings.TrimSpace(req.SubjectName)
	if subjectName == "" {
		return nil, ErrSubjectNameRequired
	}

	// (학기, 과목명) 중복 검사, DB 유니크 제약의 선제 검사
	exists, err := s.repo.SubjectRecord.ExistsBySubject(ctx, studentID, semester, subjectName, "")
	if err != nil {
		s.logger.Error("과목 중복 검사 실패", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSubject
	}

	record := &model.SubjectRecord{
		StudentID:        studentID,
		Semester:         semester,
		SubjectName:      subjectName,
		GradeRank:        req.GradeRank,
		RawScore:         req.RawScore,
		SubjectAverage:   req.SubjectAverage,
		SeukotAttitude:   req.SeukotAttitude,
		SeukotInquiry:    req.SeukotInquiry,
		SeukotThinking:   req.SeukotThinking,
		SeukotCareer:     req.SeukotCareer,
		InquiryKeywords:  model.NormalizeKeywords(req.InquiryKeywords),
		CompletionStatus: status,
	}
	if req.AchievementLevel != nil {
		level := model.AchievementLevel(*req.AchievementLevel)
		record.AchievementLevel = &level
	}

	if err := s.repo.SubjectRecord.Create(ctx, record); err != nil {
		s.logger.Error("기록 생성 실패", zap.Error(err))
		return nil, err
	}

	return toRecordResponse(record), nil
}

// ────────────────────── UpdateMine ──────────────────────

func (s *recordService) UpdateMine(ctx context.Context, studentID, recordID string, req *dto.UpdateRecordRequest) (*dto.RecordResponse, error) {
	record, err := s.getOwnedRecord(ctx, studentID, recordID)
	if err != nil {
		return nil, err
	}

	if req.CompletionStatus != nil {
		status := model.CompletionStatus(*req.CompletionStatus)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		if !status.StudentSettable() {
			return nil, ErrStatusNotAllowed
		}
		record.CompletionStatus = status
	}

	if req.Semester != nil {
		semester := model.Semester(*req.Semester)
		if !semester.Valid() {
			return nil, ErrInvalidSemester
		}
		record.Semester = semester
	}
	if req.SubjectName != nil {
		name := strings.TrimSpace(*req.SubjectName)
		if name == "" {
			return nil, ErrSubjectNameRequired
		}
		record.SubjectName = name
	}

	// 학기/과목명이 바뀌었으면 중복 재검사
	if req.Semester != nil || req.SubjectName != nil {
		exists, err := s.repo.SubjectRecord.ExistsBySubject(ctx, studentID, record.Semester, record.SubjectName, record.RecordID)
		if err != nil {
			s.logger.Error("과목 중복 검사 실패", zap.Error(err))
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateSubject
		}
	}

	applyRecordFields(record, req.AchievementLevel, req.GradeRank, req.RawScore, req.SubjectAverage,
		req.SeukotAttitude, req.SeukotInquiry, req.SeukotThinking, req.SeukotCareer, req.InquiryKeywords)

	// admin_feedback 은 학생이 수정할 수 없으며 상태 변경 후에도 감사 표시용으로 유지된다.

	if err := s.repo.SubjectRecord.Update(ctx, record); err != nil {
		s.logger.Error("기록 수정 실패", zap.String("id", recordID), zap.Error(err))
		return nil, err
	}

	return toRecordResponse(record), nil
}

// ────────────────────── DeleteMine ──────────────────────

func (s *recordService) DeleteMine(ctx context.Context, studentID, recordID string) error {
	if _, err := s.getOwnedRecord(ctx, studentID, recordID); err != nil {
		return err
	}

	if err := s.repo.SubjectRecord.Delete(ctx, recordID); err != nil {
		s.logger.Error("기록 삭제 실패", zap.String("id", recordID), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── GetMyOverview ──────────────────────

func (s *recordService) GetMyOverview(ctx context.Context, studentID string) ([]dto.SemesterSummary, error) {
	records, err := s.repo.SubjectRecord.ListByStudent(ctx, studentID, nil)
	if err != nil {
		s.logger.Error("기록 목록 조회 실패", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	return BuildSemesterSummaries(records), nil
}

// ────────────────────── ListByStudent ──────────────────────

func (s *recordService) ListByStudent(ctx context.Context, studentID string) ([]dto.RecordResponse, error) {
	// 존재하지 않는 학생 ID 에는 404 의미를 돌려준다
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.String("id", studentID), zap.Error(err))
		return nil, err
	}

	records, err := s.repo.SubjectRecord.ListByStudent(ctx, studentID, nil)
	if err != nil {
		s.logger.Error("기록 목록 조회 실패", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	return toRecordResponses(records), nil
}

// ────────────────────── UpdateByID ──────────────────────

// UpdateByID 관리자 직접 수정
// 상태를 포함한 모든 필드를 피드백 제약 없이 변경할 수 있다.
// 기존 admin_feedback 은 명시적으로 전달되지 않는 한 지워지지 않는다.
// 동시 수정은 last-write-wins 로 처리한다.
func (s *recordService) UpdateByID(ctx context.Context, recordID string, req *dto.AdminUpdateRecordRequest) (*dto.RecordResponse, error) {
	record, err := s.getRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if req.Semester != nil {
		semester := model.Semester(*req.Semester)
		if !semester.Valid() {
			return nil, ErrInvalidSemester
		}
		record.Semester = semester
	}
	if req.SubjectName != nil {
		name := strings.TrimSpace(*req.SubjectName)
		if name == "" {
			return nil, ErrSubjectNameRequired
		}
		record.SubjectName = name
	}
	if req.Semester != nil || req.SubjectName != nil {
		exists, err := s.repo.SubjectRecord.ExistsBySubject(ctx, record.StudentID, record.Semester, record.SubjectName, record.RecordID)
		if err != nil {
			s.logger.Error("과목 중복 검사 실패", zap.Error(err))
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateSubject
		}
	}

	// 관리자는 수정요청을 포함한 모든 상태로 변경 가능
	if req.CompletionStatus != nil {
		status := model.CompletionStatus(*req.CompletionStatus)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		record.CompletionStatus = status
	}
	if req.AdminFeedback != nil {
		record.AdminFeedback = strings.TrimSpace(*req.AdminFeedback)
	}

	applyRecordFields(record, req.AchievementLevel, req.GradeRank, req.RawScore, req.SubjectAverage,
		req.SeukotAttitude, req.SeukotInquiry, req.SeukotThinking, req.SeukotCareer, req.InquiryKeywords)

	if err := s.repo.SubjectRecord.Update(ctx, record); err != nil {
		s.logger.Error("기록 직접 수정 실패", zap.String("id", recordID), zap.Error(err))
		return nil, err
	}

	// 수정된 전체 필드를 응답으로 돌려주어 호출 측이 재조회 없이 목록을 갱신할 수 있게 한다
	return toRecordResponse(record), nil
}

// ────────────────────── RequestRevision ──────────────────────

// RequestRevision 수정보완요청
// 공백뿐인 피드백은 저장소 호출 전에 거부한다. 이전 상태와 무관하게
// 상태를 수정요청으로 강제하고 피드백을 저장하며, 다른 필드는 건드리지 않는다.
func (s *recordService) RequestRevision(ctx context.Context, recordID, feedback string) (*dto.RecordResponse, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return nil, ErrFeedbackRequired
	}

	record, err := s.getRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	record.CompletionStatus = model.StatusRevisionRequested
	record.AdminFeedback = feedback

	if err := s.repo.SubjectRecord.Update(ctx, record); err != nil {
		s.logger.Error("수정보완요청 저장 실패", zap.String("id", recordID), zap.Error(err))
		return nil, err
	}

	return toRecordResponse(record), nil
}

// ── 내부 헬퍼 ──

func (s *recordService) getRecord(ctx context.Context, recordID string) (*model.SubjectRecord, error) {
	record, err := s.repo.SubjectRecord.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("기록 조회 실패", zap.String("id", recordID), zap.Error(err))
		return nil, err
	}
	return record, nil
}

// getOwnedRecord 기록 조회 + 소유권 검사
// 타인 소유 기록은 존재 여부를 숨기기 위해 ErrRecordNotFound 로 처리한다.
func (s *recordService) getOwnedRecord(ctx context.Context, studentID, recordID string) (*model.SubjectRecord, error) {
	record, err := s.getRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.StudentID != studentID {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

// applyRecordFields 학생/관리자가 공유하는 부분 수정 필드 적용
func applyRecordFields(record *model.SubjectRecord,
	achievementLevel *string, gradeRank *int, rawScore, subjectAverage *float64,
	attitude, inquiry, thinking, career *string, keywords *[]string,
) {
	if achievementLevel != nil {
		level := model.AchievementLevel(*achievementLevel)
		record.AchievementLevel = &level
	}
	if gradeRank != nil {
		record.GradeRank = gradeRank
	}
	if rawScore != nil {
		record.RawScore = rawScore
	}
	if subjectAverage != nil {
		record.SubjectAverage = subjectAverage
	}
	if attitude != nil {
		record.SeukotAttitude = *attitude
	}
	if inquiry != nil {
		record.SeukotInquiry = *inquiry
	}
	if thinking != nil {
		record.SeukotThinking = *thinking
	}
	if career != nil {
		record.SeukotCareer = *career
	}
	if keywords != nil {
		record.InquiryKeywords = model.NormalizeKeywords(*keywords)
	}
}

// ── 응답 변환 ──

func toRecordResponse(record *model.SubjectRecord) *dto.RecordResponse {
	var level *string
	if record.AchievementLevel != nil {
		s := string(*record.AchievementLevel)
		level = &s
	}

	keywords := make([]string, len(record.InquiryKeywords))
	copy(keywords, record.InquiryKeywords)

	return &dto.RecordResponse{
		ID:               record.RecordID,
		StudentID:        record.StudentID,
		Semester:         string(record.Semester),
		SemesterLabel:    record.Semester.Label(),
		SubjectName:      record.SubjectName,
		AchievementLevel: level,
		GradeRank:        record.GradeRank,
		RawScore:         record.RawScore,
		SubjectAverage:   record.SubjectAverage,
		SeukotAttitude:   record.SeukotAttitude,
		SeukotInquiry:    record.SeukotInquiry,
		SeukotThinking:   record.SeukotThinking,
		SeukotCareer:     record.SeukotCareer,
		InquiryKeywords:  keywords,
		CompletionStatus: string(record.CompletionStatus),
		AdminFeedback:    record.AdminFeedback,
		CreatedAt:        record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        record.UpdatedAt.Format(time.RFC3339),
	}
}

func toRecordResponses(records []model.SubjectRecord) []dto.RecordResponse {
	result := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		result = append(result, *toRecordResponse(&records[i]))
	}
	return result
}
