package repository

import (
	"errors"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"gorm.io/gorm"
)

// UserRepository 用户仓储接口
type UserRepository interface {
	Create(user *model.UserModel) error
	FindByID(id uint) (*model.UserModel, error)
	FindByEmail(email string) (*model.UserModel, error)
	EmailExists(email string) (bool, error)
	FindByRole(role model.Role) ([]*model.UserModel, error)
	CountByRole(role model.Role) (int64, error)
}

// userRepository 用户仓储实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 创建用户
func (r *userRepository) Create(user *model.UserModel) error {
	return r.db.Create(user).Error
}

// FindByID 根据 ID 查找用户
func (r *userRepository) FindByID(id uint) (*model.UserModel, error) {
	var user model.UserModel
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail 根据邮箱查找用户
func (r *userRepository) FindByEmail(email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists 判断邮箱是否已注册
func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByRole 查找指定角色的全部用户
func (r *userRepository) FindByRole(role model.Role) ([]*model.UserModel, error) {
	var users []*model.UserModel
	err := r.db.Where("role = ?", role).Order("id ASC").Find(&users).Error
	return users, err
}

// CountByRole 统计指定角色的用户数量
func (r *userRepository) CountByRole(role model.Role) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// IsNotFound 判断是否为记录不存在错误
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
