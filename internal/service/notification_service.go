package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/repository"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/websocket"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotificationService 通知服务接口
// 投递语义是 fire-and-forget、至少一次;通知不参与工作流正确性
type NotificationService interface {
	// Deliver 在调用方事务内持久化一条通知,随事务一起提交或回滚
	Deliver(tx *gorm.DB, userID uint, message string) error
	// Push 尽力通过 WebSocket 推送,失败只记日志
	Push(userID uint, message string)
	List(ctx context.Context, email string) ([]*model.NotificationModel, error)
	Clear(ctx context.Context, email string) error
}

// notificationService 通知服务实现
type notificationService struct {
	db  *gorm.DB
	hub *websocket.Hub
}

// NewNotificationService 创建通知服务
func NewNotificationService(db *gorm.DB, hub *websocket.Hub) NotificationService {
	return &notificationService{db: db, hub: hub}
}

// Deliver 在事务内持久化通知
func (s *notificationService) Deliver(tx *gorm.DB, userID uint, message string) error {
	notification := &model.NotificationModel{
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := repository.NewNotificationRepository(tx).Create(notification); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	return nil
}

// Push 通过 WebSocket 推送给在线用户
func (s *notificationService) Push(userID uint, message string) {
	if s.hub == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":    "notification",
		"message": message,
	})
	if err != nil {
		logrus.WithError(err).Warn("failed to encode notification push")
		return
	}

	s.hub.SendToUser(userID, payload)
}

// List 列出用户的通知,最新的在前
func (s *notificationService) List(ctx context.Context, email string) ([]*model.NotificationModel, error) {
	db := s.db.WithContext(ctx)
	user, err := repository.NewUserRepository(db).FindByEmail(email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	return repository.NewNotificationRepository(db).FindByUserID(user.ID)
}

// Clear 清空用户的全部通知
func (s *notificationService) Clear(ctx context.Context, email string) error {
	db := s.db.WithContext(ctx)
	user, err := repository.NewUserRepository(db).FindByEmail(email)
	if err != nil {
		if repository.IsNotFound(err) {
			return fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return fmt.Errorf("failed to resolve user: %w", err)
	}

	return repository.NewNotificationRepository(db).DeleteByUserID(user.ID)
}
