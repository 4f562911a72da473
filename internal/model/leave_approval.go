package model

import (
	"errors"
	"time"
)

// LeaveDecision 管理员审批决定
type LeaveDecision string

const (
	DecisionApproved LeaveDecision = "APPROVED"
	DecisionRejected LeaveDecision = "REJECTED"
)

// Valid 判断决定是否合法
func (d LeaveDecision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// LeaveApprovalModel 审批记录数据模型
// 每个 (leave_id, admin_id) 至多一条记录,创建后不可变
type LeaveApprovalModel struct {
	ID        uint          `gorm:"primaryKey;autoIncrement"`
	LeaveID   uint          `gorm:"not null;index;uniqueIndex:idx_approvals_leave_admin"`
	AdminID   uint          `gorm:"not null;uniqueIndex:idx_approvals_leave_admin"`
	Decision  LeaveDecision `gorm:"type:varchar(16);not null"`
	DecidedAt time.Time     `gorm:"not null;index"`
}

// TableName 指定表名
func (LeaveApprovalModel) TableName() string {
	return "leave_approvals"
}

// Validate 验证审批记录模型
func (am *LeaveApprovalModel) Validate() error {
	if am.LeaveID == 0 {
		return errors.New("leave ID is required")
	}
	if am.AdminID == 0 {
		return errors.New("admin ID is required")
	}
	if !am.Decision.Valid() {
		return errors.New("decision must be APPROVED or REJECTED")
	}
	return nil
}
