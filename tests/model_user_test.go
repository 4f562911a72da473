package tests

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRole 测试用户角色合法性
func TestRole(t *testing.T) {
	assert.True(t, model.RoleStudent.Valid())
	assert.True(t, model.RoleAdmin.Valid())
	assert.False(t, model.Role("WARDEN").Valid())
	assert.False(t, model.Role("").Valid())
}

// TestUserModel 测试用户数据模型
func TestUserModel(t *testing.T) {
	um := &model.UserModel{
		Name:         "Sarthak Jamdade",
		Email:        "student@pccoe.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         model.RoleStudent,
		CreatedAt:    time.Now(),
	}

	assert.NoError(t, um.Validate())
	assert.False(t, um.IsAdmin())

	um.Role = model.RoleAdmin
	assert.True(t, um.IsAdmin())
}

// TestUserModelTableName 测试表名
func TestUserModelTableName(t *testing.T) {
	um := model.UserModel{}
	assert.Equal(t, "users", um.TableName())
}

// TestUserModelValidation 测试模型验证
func TestUserModelValidation(t *testing.T) {
	valid := model.UserModel{
		Name:         "Sarthak Jamdade",
		Email:        "student@pccoe.com",
		PasswordHash: "hash",
		Role:         model.RoleStudent,
	}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())

	noEmail := valid
	noEmail.Email = ""
	assert.Error(t, noEmail.Validate())

	badRole := valid
	badRole.Role = model.Role("WARDEN")
	assert.Error(t, badRole.Validate())
}

// TestUserModelHidesPasswordHash 测试序列化不泄露口令散列
func TestUserModelHidesPasswordHash(t *testing.T) {
	um := &model.UserModel{
		Name:         "Sarthak Jamdade",
		Email:        "student@pccoe.com",
		PasswordHash: "super-secret-hash",
		Role:         model.RoleStudent,
	}

	data, err := json.Marshal(um)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "super-secret-hash")
}

// TestLeaveDecision 测试审批决定合法性
func TestLeaveDecision(t *testing.T) {
	assert.True(t, model.DecisionApproved.Valid())
	assert.True(t, model.DecisionRejected.Valid())
	assert.False(t, model.LeaveDecision("MAYBE").Valid())
}

// TestLeaveApprovalModelValidation 测试审批记录验证
func TestLeaveApprovalModelValidation(t *testing.T) {
	valid := model.LeaveApprovalModel{
		LeaveID:   1,
		AdminID:   2,
		Decision:  model.DecisionApproved,
		DecidedAt: time.Now(),
	}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, "leave_approvals", valid.TableName())

	noLeave := valid
	noLeave.LeaveID = 0
	assert.Error(t, noLeave.Validate())

	badDecision := valid
	badDecision.Decision = model.LeaveDecision("MAYBE")
	assert.Error(t, badDecision.Validate())
}
