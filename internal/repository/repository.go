package repository

import "gorm.io/gorm"

// Repository 모든 Repository 의 집계 진입점
type Repository struct {
	Admin         AdminRepository
	Student       StudentRepository
	SubjectRecord SubjectRecordRepository
}

// NewRepository Repository 집계 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Admin:         NewAdminRepo(db),
		Student:       NewStudentRepo(db),
		SubjectRecord: NewSubjectRecordRepo(db),
	}
}
