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

// setupTestDBForApproval 创建审批台账测试数据库
func setupTestDBForApproval(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = database.Migrate(db)
	require.NoError(t, err)

	return db
}

// TestLeaveApprovalRepository_RecordAndHasDecision 测试写台账与重复检查
func TestLeaveApprovalRepository_RecordAndHasDecision(t *testing.T) {
	db := setupTestDBForApproval(t)
	repo := repository.NewLeaveApprovalRepository(db)

	decided, err := repo.HasDecision(1, 2)
	assert.NoError(t, err)
	assert.False(t, decided)

	rec := &model.LeaveApprovalModel{
		LeaveID:   1,
		AdminID:   2,
		Decision:  model.DecisionApproved,
		DecidedAt: time.Now(),
	}
	err = repo.Record(rec)
	assert.NoError(t, err)

	decided, err = repo.HasDecision(1, 2)
	assert.NoError(t, err)
	assert.True(t, decided)

	// 其他管理员尚未表态
	decided, err = repo.HasDecision(1, 3)
	assert.NoError(t, err)
	assert.False(t, decided)
}

// TestLeaveApprovalRepository_UniqueIndex 测试同一管理员重复表态被唯一索引拦截
func TestLeaveApprovalRepository_UniqueIndex(t *testing.T) {
	db := setupTestDBForApproval(t)
	repo := repository.NewLeaveApprovalRepository(db)

	first := &model.LeaveApprovalModel{
		LeaveID:   1,
		AdminID:   2,
		Decision:  model.DecisionApproved,
		DecidedAt: time.Now(),
	}
	require.NoError(t, repo.Record(first))

	dup := &model.LeaveApprovalModel{
		LeaveID:   1,
		AdminID:   2,
		Decision:  model.DecisionRejected,
		DecidedAt: time.Now(),
	}
	err := repo.Record(dup)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")
}

// TestLeaveApprovalRepository_CountApproved 测试同意计数只数 APPROVED
func TestLeaveApprovalRepository_CountApproved(t *testing.T) {
	db := setupTestDBForApproval(t)
	repo := repository.NewLeaveApprovalRepository(db)

	require.NoError(t, repo.Record(&model.LeaveApprovalModel{
		LeaveID: 1, AdminID: 2, Decision: model.DecisionApproved, DecidedAt: time.Now(),
	}))
	require.NoError(t, repo.Record(&model.LeaveApprovalModel{
		LeaveID: 1, AdminID: 3, Decision: model.DecisionRejected, DecidedAt: time.Now(),
	}))
	require.NoError(t, repo.Record(&model.LeaveApprovalModel{
		LeaveID: 2, AdminID: 2, Decision: model.DecisionApproved, DecidedAt: time.Now(),
	}))

	count, err := repo.CountApproved(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// TestLeaveApprovalRepository_FindByLeaveID 测试按请假单列出台账
func TestLeaveApprovalRepository_FindByLeaveID(t *testing.T) {
	db := setupTestDBForApproval(t)
	repo := repository.NewLeaveApprovalRepository(db)

	require.NoError(t, repo.Record(&model.LeaveApprovalModel{
		LeaveID: 5, AdminID: 2, Decision: model.DecisionApproved, DecidedAt: time.Now(),
	}))
	require.NoError(t, repo.Record(&model.LeaveApprovalModel{
		LeaveID: 5, AdminID: 3, Decision: model.DecisionApproved, DecidedAt: time.Now(),
	}))

	records, err := repo.FindByLeaveID(5)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
}
