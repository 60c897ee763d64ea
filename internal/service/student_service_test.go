package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/bangkihwa/seukot-management-web/internal/dto"
	"github.com/bangkihwa/seukot-management-web/internal/repository"
)

func setupTestStudentService() (StudentService, *mockStudentRepo) {
	studentRepo := newMockStudentRepo()
	repo := &repository.Repository{
		Admin:         newMockAdminRepo(),
		Student:       studentRepo,
		SubjectRecord: newMockSubjectRecordRepo(),
	}
	return NewStudentService(repo, zap.NewNop()), studentRepo
}

// ── 학생 등록 테스트 ──

func TestStudentCreate_Success(t *testing.T) {
	svc, _ := setupTestStudentService()

	result, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		StudentLoginID: "kim2024",
		Name:           "김민준",
		Grade:          "2",
	}, "admin-1")

	if err != nil {
		t.Fatalf("Create 는 성공해야 하는데 오류 발생: %v", err)
	}
	if result.StudentLoginID != "kim2024" {
		t.Errorf("기대 StudentLoginID=kim2024, 실제=%s", result.StudentLoginID)
	}
	if !result.IsActive {
		t.Error("신규 학생은 기본적으로 활성 상태여야 합니다")
	}
}

func TestStudentCreate_LowercasesLoginID(t *testing.T) {
	svc, _ := setupTestStudentService()

	result, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		StudentLoginID: "  KIM2024  ",
		Name:           "김민준",
	}, "admin-1")

	if err != nil {
		t.Fatalf("Create 실패: %v", err)
	}
	if result.StudentLoginID != "kim2024" {
		t.Errorf("아이디는 소문자로 정규화되어야 합니다, 실제=%s", result.StudentLoginID)
	}
}

func TestStudentCreate_DuplicateLoginID(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	createTestStudent(studentRepo, "kim2024", "김민준", true)

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		StudentLoginID: "KIM2024",
		Name:           "다른학생",
	}, "admin-1")

	if !errors.Is(err, ErrLoginIDTaken) {
		t.Errorf("기대 ErrLoginIDTaken, 실제: %v", err)
	}
}

// ── 학생 수정 테스트 ──

func TestStudentUpdate_PartialFields(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	student := createTestStudent(studentRepo, "kim2024", "김민준", true)
	student.HighSchoolName = "서울고등학교"

	newGrade := "3"
	result, err := svc.Update(context.Background(), student.StudentID, &dto.UpdateStudentRequest{
		Grade: &newGrade,
	})

	if err != nil {
		t.Fatalf("Update 실패: %v", err)
	}
	if result.Grade != "3" {
		t.Errorf("기대 Grade=3, 실제=%s", result.Grade)
	}
	if result.Name != "김민준" {
		t.Error("전달하지 않은 필드는 변경되면 안 됩니다")
	}
	if result.HighSchoolName != "서울고등학교" {
		t.Error("전달하지 않은 필드는 변경되면 안 됩니다")
	}
}

func TestStudentUpdate_NotFound(t *testing.T) {
	svc, _ := setupTestStudentService()

	name := "새이름"
	_, err := svc.Update(context.Background(), "no-such-id", &dto.UpdateStudentRequest{Name: &name})

	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("기대 ErrStudentNotFound, 실제: %v", err)
	}
}

// ── 활성 상태 변경 테스트 ──

func TestStudentSetActive(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	student := createTestStudent(studentRepo, "kim2024", "김민준", true)

	result, err := svc.SetActive(context.Background(), student.StudentID, false)
	if err != nil {
		t.Fatalf("SetActive 실패: %v", err)
	}
	if result.IsActive {
		t.Error("비활성화 후 IsActive=false 여야 합니다")
	}

	result, err = svc.SetActive(context.Background(), student.StudentID, true)
	if err != nil {
		t.Fatalf("SetActive 실패: %v", err)
	}
	if !result.IsActive {
		t.Error("재활성화 후 IsActive=true 여야 합니다")
	}
}

// ── 학생 목록 테스트 ──

func TestStudentList_Filters(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	createTestStudent(studentRepo, "kim2024", "김민준", true)
	s2 := createTestStudent(studentRepo, "lee2024", "이서연", true)
	s2.Grade = "3"

	result, total, err := svc.List(context.Background(), &dto.StudentListRequest{Grade: "3"})
	if err != nil {
		t.Fatalf("List 실패: %v", err)
	}
	if total != 1 || len(result) != 1 {
		t.Fatalf("기대 1건, 실제 total=%d len=%d", total, len(result))
	}
	if result[0].Name != "이서연" {
		t.Errorf("기대 이서연, 실제=%s", result[0].Name)
	}

	result, total, err = svc.List(context.Background(), &dto.StudentListRequest{Keyword: "김민준"})
	if err != nil {
		t.Fatalf("List 실패: %v", err)
	}
	if total != 1 || result[0].StudentLoginID != "kim2024" {
		t.Errorf("키워드 검색 결과가 기대와 다릅니다: total=%d", total)
	}
}
