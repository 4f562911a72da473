package repository_test

import (
	"testing"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/database"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDBForNotification 创建通知测试数据库
func setupTestDBForNotification(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = database.Migrate(db)
	require.NoError(t, err)

	return db
}

// TestNotificationRepository_CreateAndList 测试创建与按用户列出通知
func TestNotificationRepository_CreateAndList(t *testing.T) {
	db := setupTestDBForNotification(t)
	repo := repository.NewNotificationRepository(db)

	older := &model.NotificationModel{
		UserID:    1,
		Message:   "first",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(older))

	newer := &model.NotificationModel{
		UserID:    1,
		Message:   "second",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(newer))

	other := &model.NotificationModel{
		UserID:    2,
		Message:   "other user",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(other))

	notifications, err := repo.FindByUserID(1)
	assert.NoError(t, err)
	require.Len(t, notifications, 2)

	// 最新的在前
	assert.Equal(t, "second", notifications[0].Message)
	assert.Equal(t, "first", notifications[1].Message)
}

// TestNotificationRepository_DeleteByUserID 测试清空用户通知
func TestNotificationRepository_DeleteByUserID(t *testing.T) {
	db := setupTestDBForNotification(t)
	repo := repository.NewNotificationRepository(db)

	require.NoError(t, repo.Create(&model.NotificationModel{
		UserID: 1, Message: "to be cleared", CreatedAt: time.Now(),
	}))
	require.NoError(t, repo.Create(&model.NotificationModel{
		UserID: 2, Message: "kept", CreatedAt: time.Now(),
	}))

	err := repo.DeleteByUserID(1)
	assert.NoError(t, err)

	cleared, err := repo.FindByUserID(1)
	assert.NoError(t, err)
	assert.Empty(t, cleared)

	kept, err := repo.FindByUserID(2)
	assert.NoError(t, err)
	assert.Len(t, kept, 1)
}
