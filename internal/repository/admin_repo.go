package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bangkihwa/seukot-management-web/internal/model"
)

// AdminRepository 관리자 데이터 접근 인터페이스
type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// adminRepo AdminRepository 의 GORM 구현
type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepo AdminRepository 인스턴스 생성
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
