package repository

import (
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"gorm.io/gorm"
)

// AcademicRepository 学业信息仓储接口
type AcademicRepository interface {
	Create(acad *model.AcademicModel) error
	FindByUserID(userID uint) (*model.AcademicModel, error)
}

// academicRepository 学业信息仓储实现
type academicRepository struct {
	db *gorm.DB
}

// NewAcademicRepository 创建学业信息仓储
func NewAcademicRepository(db *gorm.DB) AcademicRepository {
	return &academicRepository{db: db}
}

// Create 创建学业信息
func (r *academicRepository) Create(acad *model.AcademicModel) error {
	return r.db.Create(acad).Error
}

// FindByUserID 根据用户 ID 查找学业信息
func (r *academicRepository) FindByUserID(userID uint) (*model.AcademicModel, error) {
	var acad model.AcademicModel
	if err := r.db.Where("user_id = ?", userID).First(&acad).Error; err != nil {
		return nil, err
	}
	return &acad, nil
}
