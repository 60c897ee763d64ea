package model

import "strings"

// ── 학기 ──

// Semester 학기 — (학년, 학기) 6개 고정 값
type Semester string

const (
	Semester11 Semester = "1-1"
	Semester12 Semester = "1-2"
	Semester21 Semester = "2-1"
	Semester22 Semester = "2-2"
	Semester31 Semester = "3-1"
	Semester32 Semester = "3-2"
)

// Semesters 고정 표시 순서 (1-1 … 3-2)
var Semesters = []Semester{
	Semester11, Semester12,
	Semester21, Semester22,
	Semester31, Semester32,
}

var semesterLabels = map[Semester]string{
	Semester11: "1학년 1학기",
	Semester12: "1학년 2학기",
	Semester21: "2학년 1학기",
	Semester22: "2학년 2학기",
	Semester31: "3학년 1학기",
	Semester32: "3학년 2학기",
}

// Valid 유효한 학기 값인지 검사
func (s Semester) Valid() bool {
	_, ok := semesterLabels[s]
	return ok
}

// Label 화면 표시용 라벨 ("1학년 1학기")
func (s Semester) Label() string {
	return semesterLabels[s]
}

// ── 완성 상태 ──

// CompletionStatus 세특 기록의 작성/검토 워크플로 상태
type CompletionStatus string

const (
	StatusUnwritten         CompletionStatus = "미작성"
	StatusDrafting          CompletionStatus = "작성중"
	StatusReviewRequested   CompletionStatus = "검토요청"
	StatusRevisionRequested CompletionStatus = "수정요청"
	StatusComplete          CompletionStatus = "완료"
)

// CompletionStatuses 전체 상태 목록
var CompletionStatuses = []CompletionStatus{
	StatusUnwritten,
	StatusDrafting,
	StatusReviewRequested,
	StatusRevisionRequested,
	StatusComplete,
}

// Valid 유효한 상태 값인지 검사
func (s CompletionStatus) Valid() bool {
	switch s {
	case StatusUnwritten, StatusDrafting, StatusReviewRequested,
		StatusRevisionRequested, StatusComplete:
		return true
	}
	return false
}

// StudentSettable 학생이 직접 설정할 수 있는 상태인지 검사
// 수정요청은 관리자 전용 상태로, 학생 측 상태 선택지에서 제외된다.
func (s CompletionStatus) StudentSettable() bool {
	return s.Valid() && s != StatusRevisionRequested
}

// ── 성취도 ──

// AchievementLevel 성취도 등급 A~E
type AchievementLevel string

const (
	LevelA AchievementLevel = "A"
	LevelB AchievementLevel = "B"
	LevelC AchievementLevel = "C"
	LevelD AchievementLevel = "D"
	LevelE AchievementLevel = "E"
)

var achievementScores = map[AchievementLevel]int{
	LevelA: 5, LevelB: 4, LevelC: 3, LevelD: 2, LevelE: 1,
}

var scoreLevels = map[int]AchievementLevel{
	5: LevelA, 4: LevelB, 3: LevelC, 2: LevelD, 1: LevelE,
}

// Valid 유효한 성취도 값인지 검사
func (l AchievementLevel) Valid() bool {
	_, ok := achievementScores[l]
	return ok
}

// Score 성취도 → 수치 점수 (A=5 … E=1), 무효 값은 0
func (l AchievementLevel) Score() int {
	return achievementScores[l]
}

// LevelFromScore 수치 점수(반올림 후) → 성취도 역매핑, 범위 밖은 빈 값
func LevelFromScore(score int) AchievementLevel {
	return scoreLevels[score]
}

// ── 탐구 키워드 ──

// MaxInquiryKeywords 기록당 탐구 키워드 최대 개수
const MaxInquiryKeywords = 5

// NormalizeKeywords 탐구 키워드 정규화
// 공백 제거 → 빈 항목 제외 → 입력 순서를 유지한 중복 제거 → 최대 5개 절단
func NormalizeKeywords(keywords []string) StringArray {
	result := make(StringArray, 0, MaxInquiryKeywords)
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		result = append(result, kw)
		if len(result) == MaxInquiryKeywords {
			break
		}
	}
	return result
}
