package dto

// ── 학기별 개요 DTO ──

// KeywordCount 키워드 빈도
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// SemesterSummary 학기별 요약 통계
// 기록이 1건 이상인 학기만 생성되며, 고정 학기 순서(1-1 … 3-2)로 정렬된다.
type SemesterSummary struct {
	Semester       string           `json:"semester"`
	SemesterLabel  string           `json:"semester_label"`
	SubjectCount   int              `json:"subject_count"`
	CompletedCount int              `json:"completed_count"`
	CompletionRate int              `json:"completion_rate"` // 0~100 정수 퍼센트
	TopKeywords    []KeywordCount   `json:"top_keywords"`    // 빈도순 상위 8개
	AvgAchievement *float64         `json:"avg_achievement"` // 성취도 미입력 학기는 null
	AvgLevel       string           `json:"avg_level"`       // 평균 성취도 문자 표시 ("" = 해당 없음)
	Records        []RecordResponse `json:"records"`
}
