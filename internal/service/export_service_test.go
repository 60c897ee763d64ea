package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/bangkihwa/seukot-management-web/internal/model"
	"github.com/bangkihwa/seukot-management-web/internal/repository"
)

func setupTestExportService() (ExportService, *mockStudentRepo, *mockSubjectRecordRepo) {
	studentRepo := newMockStudentRepo()
	recordRepo := newMockSubjectRecordRepo()
	repo := &repository.Repository{
		Admin:         newMockAdminRepo(),
		Student:       studentRepo,
		SubjectRecord: recordRepo,
	}
	return NewExportService(repo, zap.NewNop()), studentRepo, recordRepo
}

// ── ExportStudentRecords 테스트 ──

func TestExportStudentRecords_StudentNotFound(t *testing.T) {
	svc, _, _ := setupTestExportService()

	_, _, err := svc.ExportStudentRecords(context.Background(), "no-such-student")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("기대 ErrStudentNotFound, 실제: %v", err)
	}
}

func TestExportStudentRecords_NoRecords(t *testing.T) {
	svc, studentRepo, _ := setupTestExportService()
	student := createTestStudent(studentRepo, "kim2024", "김민준", true)

	_, _, err := svc.ExportStudentRecords(context.Background(), student.StudentID)
	if !errors.Is(err, ErrExportNoRecords) {
		t.Errorf("기대 ErrExportNoRecords, 실제: %v", err)
	}
}

func TestExportStudentRecords_Success(t *testing.T) {
	svc, studentRepo, recordRepo := setupTestExportService()
	student := createTestStudent(studentRepo, "kim2024", "김민준", true)
	createTestRecord(recordRepo, student.StudentID, model.Semester11, "수학", model.StatusComplete)
	createTestRecord(recordRepo, student.StudentID, model.Semester21, "영어", model.StatusDrafting)

	buf, filename, err := svc.ExportStudentRecords(context.Background(), student.StudentID)
	if err != nil {
		t.Fatalf("ExportStudentRecords 는 성공해야 합니다: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("내보낸 Excel buffer 는 비어 있으면 안 됩니다")
	}
	if !strings.Contains(filename, "김민준") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("파일명에 학생 이름과 .xlsx 확장자가 포함되어야 합니다: %s", filename)
	}
	// xlsx 파일은 PK(0x504B) 로 시작한다
	if buf.Len() > 2 {
		header := buf.Bytes()[:2]
		if header[0] != 0x50 || header[1] != 0x4B {
			t.Error("출력이 유효한 xlsx 형식이 아닙니다 (PK 로 시작해야 함)")
		}
	}
}
