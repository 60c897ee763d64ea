package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/bangkihwa/seukot-management-web/internal/model"
)

// StudentRepository 학생 명부 데이터 접근 인터페이스
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	GetByLoginID(ctx context.Context, loginID string) (*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	List(ctx context.Context, offset, limit int, keyword, grade string) ([]model.Student, int64, error)
}

// studentRepo StudentRepository 의 GORM 구현
type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo StudentRepository 인스턴스 생성
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByLoginID 로그인 아이디로 조회 (대소문자 무시)
func (r *studentRepo) GetByLoginID(ctx context.Context, loginID string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("LOWER(student_login_id) = ?", strings.ToLower(loginID)).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepo) List(ctx context.Context, offset, limit int, keyword, grade string) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Student{})

	if keyword != "" {
		pattern := "%" + keyword + "%"
		db = db.Where("name ILIKE ? OR student_login_id ILIKE ?", pattern, pattern)
	}
	if grade != "" {
		db = db.Where("grade = ?", grade)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, total, nil
}
