package model

import (
	"errors"
	"time"
)

// NotificationModel 通知数据模型
// 纯观测性消息,不参与工作流正确性
type NotificationModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"not null;index"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName 指定表名
func (NotificationModel) TableName() string {
	return "notifications"
}

// Validate 验证通知模型
func (nm *NotificationModel) Validate() error {
	if nm.UserID == 0 {
		return errors.New("user ID is required")
	}
	if nm.Message == "" {
		return errors.New("message is required")
	}
	return nil
}
