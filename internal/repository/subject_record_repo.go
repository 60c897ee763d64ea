package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bangkihwa/seukot-management-web/internal/model"
)

// SubjectRecordRepository 세특 기록 데이터 접근 인터페이스
type SubjectRecordRepository interface {
	Create(ctx context.Context, record *model.SubjectRecord) error
	GetByID(ctx context.Context, id string) (*model.SubjectRecord, error)
	// ListByStudent 학생의 기록 목록, 학기 → 과목명 순 정렬
	// semester 가 nil 이 아니면 해당 학기만 조회한다 (필터 없음 ≠ 빈 값)
	ListByStudent(ctx context.Context, studentID string, semester *model.Semester) ([]model.SubjectRecord, error)
	ExistsBySubject(ctx context.Context, studentID string, semester model.Semester, subjectName, excludeID string) (bool, error)
	Update(ctx context.Context, record *model.SubjectRecord) error
	Delete(ctx context.Context, id string) error
}

// subjectRecordRepo SubjectRecordRepository 의 GORM 구현
type subjectRecordRepo struct {
	db *gorm.DB
}

// NewSubjectRecordRepo SubjectRecordRepository 인스턴스 생성
func NewSubjectRecordRepo(db *gorm.DB) SubjectRecordRepository {
	return &subjectRecordRepo{db: db}
}

func (r *subjectRecordRepo) Create(ctx context.Context, record *model.SubjectRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *subjectRecordRepo) GetByID(ctx context.Context, id string) (*model.SubjectRecord, error) {
	var record model.SubjectRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *subjectRecordRepo) ListByStudent(ctx context.Context, studentID string, semester *model.Semester) ([]model.SubjectRecord, error) {
	var records []model.SubjectRecord

	db := r.db.WithContext(ctx).
		Where("student_id = ?", studentID)
	if semester != nil {
		db = db.Where("semester = ?", *semester)
	}

	err := db.Order("semester ASC").
		Order("subject_name ASC").
		Find(&records).Error
	return records, err
}

// ExistsBySubject (학생, 학기, 과목명) 중복 여부 검사
// excludeID 가 비어 있지 않으면 해당 기록은 제외한다 (자기 자신 수정 시)
func (r *subjectRecordRepo) ExistsBySubject(ctx context.Context, studentID string, semester model.Semester, subjectName, excludeID string) (bool, error) {
	var count int64
	db := r.db.WithContext(ctx).
		Model(&model.SubjectRecord{}).
		Where("student_id = ? AND semester = ? AND subject_name = ?", studentID, semester, subjectName)
	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subjectRecordRepo) Update(ctx context.Context, record *model.SubjectRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *subjectRecordRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubjectRecord{}).Error
}
