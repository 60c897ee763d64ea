package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bangkihwa/seukot-management-web/internal/model"
	"github.com/bangkihwa/seukot-management-web/internal/repository"
)

// ── 내보내기 모듈 비즈니스 오류 ──

var (
	ErrExportNoRecords    = errors.New("내보낼 세특 기록이 없습니다")
	ErrExportGenerateFail = errors.New("Excel 파일 생성에 실패했습니다")
)

// ExportService 내보내기 비즈니스 인터페이스
//
// 설계 메모:
//   - 학생 한 명의 세특 기록 전체를 Excel(.xlsx)로 내보낸다
//   - 학기당 Sheet 하나, Sheet 이름은 학기 라벨("1학년 1학기")
//   - bytes.Buffer 로 반환하고 HTTP 응답 헤더 설정은 Handler 층이 담당한다
type ExportService interface {
	// ExportStudentRecords 학생의 세특 기록을 Excel 로 내보내기
	ExportStudentRecords(ctx context.Context, studentID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportStudentRecords — 세특 기록 Excel 내보내기
// ═══════════════════════════════════════════════════════════
//
// 출력 형식:
//   - Sheet "1학년 1학기" … "3학년 2학기" (기록이 있는 학기만)
//   - 열: 과목명 / 성취도 / 석차등급 / 원점수 / 과목평균 / 완성상태 /
//     탐구 키워드 / 수업태도 / 탐구활동 / 사고확장 / 진로연계 / 관리자 피드백
//
// 반환값: buf(Excel 내용), filename(제안 파일명), error

func (s *exportService) ExportStudentRecords(ctx context.Context, studentID string) (*bytes.Buffer, string, error) {
	// 1. 학생 조회 (파일명에 이름 사용)
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.String("id", studentID), zap.Error(err))
		return nil, "", err
	}

	// 2. 기록 전체 조회
	records, err := s.repo.SubjectRecord.ListByStudent(ctx, studentID, nil)
	if err != nil {
		s.logger.Error("기록 목록 조회 실패", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	// 3. 학기별 그룹핑
	bySemester := make(map[model.Semester][]model.SubjectRecord)
	for i := range records {
		sem := records[i].Semester
		bySemester[sem] = append(bySemester[sem], records[i])
	}

	// 4. Excel 생성
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{
		"과목명", "성취도", "석차등급", "원점수", "과목평균", "완성상태",
		"탐구 키워드", "수업태도", "탐구활동", "사고확장", "진로연계", "관리자 피드백",
	}
	colWidths := []float64{14, 8, 8, 8, 8, 10, 24, 36, 36, 36, 36, 30}

	first := true
	for _, sem := range model.Semesters {
		group := bySemester[sem]
		if len(group) == 0 {
			continue
		}

		sheetName := sem.Label()
		if first {
			// 기본 Sheet1 을 첫 학기 이름으로 재사용
			f.SetSheetName("Sheet1", sheetName)
			first = false
		} else {
			f.NewSheet(sheetName)
		}

		for i, w := range colWidths {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetColWidth(sheetName, col, col, w)
		}

		// 표머리
		for i, h := range headers {
			cellRef, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheetName, cellRef, h)
			f.SetCellStyle(sheetName, cellRef, cellRef, headerStyle)
		}

		// 데이터 행
		for row, record := range group {
			values := []interface{}{
				record.SubjectName,
				levelText(record.AchievementLevel),
				intText(record.GradeRank),
				floatText(record.RawScore),
				floatText(record.SubjectAverage),
				string(record.CompletionStatus),
				strings.Join(record.InquiryKeywords, ", "),
				record.SeukotAttitude,
				record.SeukotInquiry,
				record.SeukotThinking,
				record.SeukotCareer,
				record.AdminFeedback,
			}
			for col, v := range values {
				cellRef, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheetName, cellRef, v)
			}
		}
	}

	// 5. 버퍼에 기록
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Excel 기록 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("세특기록_%s.xlsx", student.Name)
	return buf, filename, nil
}

// ── 셀 표시 헬퍼 ──

func levelText(level *model.AchievementLevel) string {
	if level == nil {
		return "-"
	}
	return string(*level)
}

func intText(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func floatText(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
