package repository

import (
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"gorm.io/gorm"
)

// NotificationRepository 通知仓储接口
type NotificationRepository interface {
	Create(notification *model.NotificationModel) error
	FindByUserID(userID uint) ([]*model.NotificationModel, error)
	DeleteByUserID(userID uint) error
}

// notificationRepository 通知仓储实现
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知仓储
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create 创建通知
func (r *notificationRepository) Create(notification *model.NotificationModel) error {
	return r.db.Create(notification).Error
}

// FindByUserID 查找用户的通知,最新的在前
func (r *notificationRepository) FindByUserID(userID uint) ([]*model.NotificationModel, error) {
	var notifications []*model.NotificationModel
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

// DeleteByUserID 删除用户的全部通知
func (r *notificationRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.NotificationModel{}).Error
}
