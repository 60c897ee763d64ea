package service

import (
	"math"
	"sort"

	"github.com/bangkihwa/seukot-management-web/internal/dto"
	"github.com/bangkihwa/seukot-management-web/internal/model"
)

// maxTopKeywords 학기별 상위 키워드 최대 개수
const maxTopKeywords = 8

// BuildSemesterSummaries 학기별 요약 통계 계산 (순수 함수)
// 기록이 없는 학기는 생략하고, 고정 학기 순서(1-1 … 3-2)로 돌려준다.
func BuildSemesterSummaries(records []model.SubjectRecord) []dto.SemesterSummary {
	bySemester := make(map[model.Semester][]model.SubjectRecord)
	for i := range records {
		sem := records[i].Semester
		bySemester[sem] = append(bySemester[sem], records[i])
	}

	summaries := make([]dto.SemesterSummary, 0, len(bySemester))
	for _, sem := range model.Semesters {
		group := bySemester[sem]
		if len(group) == 0 {
			continue
		}
		summaries = append(summaries, buildSummary(sem, group))
	}

	return summaries
}

func buildSummary(sem model.Semester, group []model.SubjectRecord) dto.SemesterSummary {
	completed := 0
	scoreSum := 0
	graded := 0

	for i := range group {
		if group[i].CompletionStatus == model.StatusComplete {
			completed++
		}
		if group[i].AchievementLevel != nil && group[i].AchievementLevel.Valid() {
			scoreSum += group[i].AchievementLevel.Score()
			graded++
		}
	}

	// 완성률은 반올림한 정수 퍼센트
	rate := int(math.Round(float64(completed) / float64(len(group)) * 100))

	// 성취도가 하나도 없는 학기는 평균을 null 로 둔다
	var avg *float64
	var avgLevel string
	if graded > 0 {
		v := float64(scoreSum) / float64(graded)
		avg = &v
		avgLevel = string(model.LevelFromScore(int(math.Round(v))))
	}

	return dto.SemesterSummary{
		Semester:       string(sem),
		SemesterLabel:  sem.Label(),
		SubjectCount:   len(group),
		CompletedCount: completed,
		CompletionRate: rate,
		TopKeywords:    topKeywords(group),
		AvgAchievement: avg,
		AvgLevel:       avgLevel,
		Records:        toRecordResponses(group),
	}
}

// topKeywords 학기 내 탐구 키워드 빈도 집계
// 빈도 내림차순, 동률은 먼저 등장한 키워드 우선, 최대 8개.
func topKeywords(group []model.SubjectRecord) []dto.KeywordCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := range group {
		for _, kw := range group[i].InquiryKeywords {
			if counts[kw] == 0 {
				order = append(order, kw)
			}
			counts[kw]++
		}
	}

	result := make([]dto.KeywordCount, 0, len(order))
	for _, kw := range order {
		result = append(result, dto.KeywordCount{Keyword: kw, Count: counts[kw]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if len(result) > maxTopKeywords {
		result = result[:maxTopKeywords]
	}

	return result
}
