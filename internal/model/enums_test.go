package model

import "testing"

// ── 학기 ──

func TestSemester_Valid(t *testing.T) {
	for _, s := range Semesters {
		if !s.Valid() {
			t.Errorf("%s 는 유효해야 함", s)
		}
	}
	for _, bad := range []Semester{"", "4-1", "1-3", "11"} {
		if bad.Valid() {
			t.Errorf("%q 는 유효하면 안 됨", bad)
		}
	}
}

func TestSemester_FixedOrder(t *testing.T) {
	want := []Semester{"1-1", "1-2", "2-1", "2-2", "3-1", "3-2"}
	if len(Semesters) != len(want) {
		t.Fatalf("학기 개수 기대 %d, 실제 %d", len(want), len(Semesters))
	}
	for i, s := range want {
		if Semesters[i] != s {
			t.Errorf("순서 %d 기대 %s, 실제 %s", i, s, Semesters[i])
		}
	}
}

func TestSemester_Label(t *testing.T) {
	if got := Semester11.Label(); got != "1학년 1학기" {
		t.Errorf("기대 '1학년 1학기', 실제 %q", got)
	}
	if got := Semester32.Label(); got != "3학년 2학기" {
		t.Errorf("기대 '3학년 2학기', 실제 %q", got)
	}
}

// ── 완성 상태 ──

func TestCompletionStatus_StudentSettable(t *testing.T) {
	// 수정요청만 학생 설정 불가
	for _, s := range CompletionStatuses {
		want := s != StatusRevisionRequested
		if got := s.StudentSettable(); got != want {
			t.Errorf("%s StudentSettable 기대 %v, 실제 %v", s, want, got)
		}
	}
	if CompletionStatus("검토완료").StudentSettable() {
		t.Error("무효 상태는 설정 불가여야 함")
	}
}

// ── 성취도 ──

func TestAchievementLevel_ScoreRoundTrip(t *testing.T) {
	cases := map[AchievementLevel]int{
		LevelA: 5, LevelB: 4, LevelC: 3, LevelD: 2, LevelE: 1,
	}
	for level, score := range cases {
		if got := level.Score(); got != score {
			t.Errorf("%s Score 기대 %d, 실제 %d", level, score, got)
		}
		if got := LevelFromScore(score); got != level {
			t.Errorf("LevelFromScore(%d) 기대 %s, 실제 %s", score, level, got)
		}
	}
	if got := LevelFromScore(0); got != "" {
		t.Errorf("범위 밖 점수는 빈 값이어야 함, 실제 %q", got)
	}
	if got := AchievementLevel("F").Score(); got != 0 {
		t.Errorf("무효 등급 Score 기대 0, 실제 %d", got)
	}
}

// ── 탐구 키워드 ──

func TestNormalizeKeywords_DedupeAndCap(t *testing.T) {
	in := []string{"탐구", " 실험 ", "탐구", "", "분석", "토론", "발표", "창의", "융합"}
	got := NormalizeKeywords(in)

	if len(got) != MaxInquiryKeywords {
		t.Fatalf("키워드 개수 기대 %d, 실제 %d: %v", MaxInquiryKeywords, len(got), got)
	}
	// 입력 순서 유지 + 중복/공백 제거
	want := []string{"탐구", "실험", "분석", "토론", "발표"}
	for i, kw := range want {
		if got[i] != kw {
			t.Errorf("순서 %d 기대 %s, 실제 %s", i, kw, got[i])
		}
	}
}

func TestNormalizeKeywords_NoDuplicatesAfterAnySequence(t *testing.T) {
	in := []string{"a", "b", "a", "b", "a"}
	got := NormalizeKeywords(in)
	if len(got) != 2 {
		t.Fatalf("기대 2개, 실제 %d: %v", len(got), got)
	}
	seen := map[string]bool{}
	for _, kw := range got {
		if seen[kw] {
			t.Errorf("중복 키워드 발견: %s", kw)
		}
		seen[kw] = true
	}
}

func TestNormalizeKeywords_Empty(t *testing.T) {
	if got := NormalizeKeywords(nil); len(got) != 0 {
		t.Errorf("빈 입력은 빈 결과여야 함, 실제 %v", got)
	}
}

// ── StringArray ──

func TestStringArray_ScanValue(t *testing.T) {
	var a StringArray
	if err := a.Scan(`{"탐구","실험 설계","quo\"te"}`); err != nil {
		t.Fatalf("Scan 실패: %v", err)
	}
	if len(a) != 3 || a[0] != "탐구" || a[1] != "실험 설계" || a[2] != `quo"te` {
		t.Errorf("Scan 결과 불일치: %v", a)
	}

	v, err := a.Value()
	if err != nil {
		t.Fatalf("Value 실패: %v", err)
	}
	var b StringArray
	if err := b.Scan(v); err != nil {
		t.Fatalf("재 Scan 실패: %v", err)
	}
	if len(b) != 3 || b[0] != a[0] || b[1] != a[1] || b[2] != a[2] {
		t.Errorf("왕복 결과 불일치: %v", b)
	}
}

func TestStringArray_ScanEmpty(t *testing.T) {
	var a StringArray
	if err := a.Scan("{}"); err != nil {
		t.Fatalf("Scan 실패: %v", err)
	}
	if len(a) != 0 {
		t.Errorf("빈 배열 기대, 실제 %v", a)
	}

	if err := a.Scan(nil); err != nil {
		t.Fatalf("nil Scan 실패: %v", err)
	}
	if a != nil {
		t.Errorf("nil 기대, 실제 %v", a)
	}
}
