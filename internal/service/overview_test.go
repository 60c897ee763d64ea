package service

import (
	"context"
	"testing"

	"github.com/bangkihwa/seukot-management-web/internal/model"
)

func overviewRecord(sem model.Semester, subject string, status model.CompletionStatus, level *model.AchievementLevel, keywords ...string) model.SubjectRecord {
	return model.SubjectRecord{
		RecordID:         "record-" + string(sem) + "-" + subject,
		StudentID:        "student-1",
		Semester:         sem,
		SubjectName:      subject,
		CompletionStatus: status,
		AchievementLevel: level,
		InquiryKeywords:  model.StringArray(keywords),
	}
}

func levelPtr(l model.AchievementLevel) *model.AchievementLevel { return &l }

// ── 학기별 요약 테스트 ──

func TestBuildSemesterSummaries_Basic(t *testing.T) {
	records := []model.SubjectRecord{
		overviewRecord(model.Semester11, "수학", model.StatusComplete, levelPtr(model.LevelA), "탐구", "분석"),
		overviewRecord(model.Semester11, "영어", model.StatusDrafting, nil, "탐구"),
	}

	summaries := BuildSemesterSummaries(records)

	if len(summaries) != 1 {
		t.Fatalf("기대 1개 학기, 실제=%d", len(summaries))
	}
	s := summaries[0]
	if s.Semester != "1-1" || s.SemesterLabel != "1학년 1학기" {
		t.Errorf("학기 표시가 기대와 다릅니다: %s / %s", s.Semester, s.SemesterLabel)
	}
	if s.SubjectCount != 2 || s.CompletedCount != 1 {
		t.Errorf("기대 과목 2 / 완료 1, 실제=%d / %d", s.SubjectCount, s.CompletedCount)
	}
	// 2과목 중 1과목 완료 → 50%
	if s.CompletionRate != 50 {
		t.Errorf("기대 완성률=50, 실제=%d", s.CompletionRate)
	}
	// 키워드: 탐구 2회, 분석 1회
	if len(s.TopKeywords) != 2 {
		t.Fatalf("기대 키워드 2개, 실제=%d", len(s.TopKeywords))
	}
	if s.TopKeywords[0].Keyword != "탐구" || s.TopKeywords[0].Count != 2 {
		t.Errorf("최빈 키워드가 기대와 다릅니다: %+v", s.TopKeywords[0])
	}
	if s.TopKeywords[1].Keyword != "분석" || s.TopKeywords[1].Count != 1 {
		t.Errorf("두 번째 키워드가 기대와 다릅니다: %+v", s.TopKeywords[1])
	}
	// 성취도는 A(5점) 한 건만 입력 → 평균 5.0
	if s.AvgAchievement == nil || *s.AvgAchievement != 5.0 {
		t.Errorf("기대 평균 성취도=5.0, 실제=%v", s.AvgAchievement)
	}
	if s.AvgLevel != "A" {
		t.Errorf("기대 평균 등급=A, 실제=%s", s.AvgLevel)
	}
}

func TestBuildSemesterSummaries_SkipsEmptySemesters(t *testing.T) {
	records := []model.SubjectRecord{
		overviewRecord(model.Semester31, "국어", model.StatusDrafting, nil),
		overviewRecord(model.Semester11, "수학", model.StatusDrafting, nil),
	}

	summaries := BuildSemesterSummaries(records)

	// 기록이 없는 학기는 생략, 고정 순서(1-1 먼저) 유지
	if len(summaries) != 2 {
		t.Fatalf("기대 2개 학기, 실제=%d", len(summaries))
	}
	if summaries[0].Semester != "1-1" || summaries[1].Semester != "3-1" {
		t.Errorf("학기 순서가 기대와 다릅니다: %s, %s", summaries[0].Semester, summaries[1].Semester)
	}
}

func TestBuildSemesterSummaries_NilAvgWhenUngraded(t *testing.T) {
	records := []model.SubjectRecord{
		overviewRecord(model.Semester11, "수학", model.StatusDrafting, nil),
		overviewRecord(model.Semester11, "영어", model.StatusDrafting, nil),
	}

	summaries := BuildSemesterSummaries(records)

	if summaries[0].AvgAchievement != nil {
		t.Errorf("성취도 미입력 학기의 평균은 null 이어야 합니다: %v", *summaries[0].AvgAchievement)
	}
	if summaries[0].AvgLevel != "" {
		t.Errorf("평균 등급도 비어 있어야 합니다: %s", summaries[0].AvgLevel)
	}
}

func TestBuildSemesterSummaries_RoundsCompletionRate(t *testing.T) {
	records := []model.SubjectRecord{
		overviewRecord(model.Semester11, "수학", model.StatusComplete, nil),
		overviewRecord(model.Semester11, "영어", model.StatusDrafting, nil),
		overviewRecord(model.Semester11, "과학", model.StatusDrafting, nil),
	}

	summaries := BuildSemesterSummaries(records)

	// 1/3 = 33.33… → 반올림 33
	if summaries[0].CompletionRate != 33 {
		t.Errorf("기대 완성률=33, 실제=%d", summaries[0].CompletionRate)
	}
}

func TestBuildSemesterSummaries_RoundsAvgLevel(t *testing.T) {
	records := []model.SubjectRecord{
		overviewRecord(model.Semester11, "수학", model.StatusComplete, levelPtr(model.LevelA)),
		overviewRecord(model.Semester11, "영어", model.StatusComplete, levelPtr(model.LevelB)),
	}

	summaries := BuildSemesterSummaries(records)

	// (5+4)/2 = 4.5 → 반올림 5 → A
	if summaries[0].AvgAchievement == nil || *summaries[0].AvgAchievement != 4.5 {
		t.Errorf("기대 평균=4.5, 실제=%v", summaries[0].AvgAchievement)
	}
	if summaries[0].AvgLevel != "A" {
		t.Errorf("기대 평균 등급=A, 실제=%s", summaries[0].AvgLevel)
	}
}

func TestBuildSemesterSummaries_TopKeywordsCapAndTieBreak(t *testing.T) {
	var records []model.SubjectRecord
	// 9개 키워드, 모두 1회씩 → 먼저 등장한 8개만 남는다
	keywords := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	for _, kw := range keywords {
		records = append(records, overviewRecord(model.Semester11, "과목-"+kw, model.StatusDrafting, nil, kw))
	}

	summaries := BuildSemesterSummaries(records)

	top := summaries[0].TopKeywords
	if len(top) != 8 {
		t.Fatalf("기대 키워드 8개, 실제=%d", len(top))
	}
	// 동률은 먼저 등장한 키워드 우선
	for i, kw := range keywords[:8] {
		if top[i].Keyword != kw {
			t.Errorf("인덱스 %d: 기대=%s, 실제=%s", i, kw, top[i].Keyword)
		}
	}
}

func TestBuildSemesterSummaries_Empty(t *testing.T) {
	summaries := BuildSemesterSummaries(nil)
	if len(summaries) != 0 {
		t.Errorf("기록이 없으면 빈 결과여야 합니다: %d", len(summaries))
	}
}

// ── GetMyOverview 연동 테스트 ──

func TestGetMyOverview(t *testing.T) {
	svc, _, recordRepo := setupTestRecordService()
	createTestRecord(recordRepo, "student-1", model.Semester11, "수학", model.StatusComplete)
	createTestRecord(recordRepo, "student-1", model.Semester21, "영어", model.StatusDrafting)
	createTestRecord(recordRepo, "student-2", "3-1", "과학", model.StatusDrafting)

	summaries, err := svc.GetMyOverview(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("GetMyOverview 실패: %v", err)
	}
	// 본인 기록만, 학기 2개
	if len(summaries) != 2 {
		t.Fatalf("기대 2개 학기, 실제=%d", len(summaries))
	}
	if len(summaries[0].Records) != 1 || summaries[0].Records[0].SubjectName != "수학" {
		t.Errorf("학기 요약에 기록 목록이 포함되어야 합니다: %+v", summaries[0].Records)
	}
}
