package model

import (
	"encoding/json"
	"errors"
	"time"
)

// LeaveStatus 请假单状态
// 状态机: PENDING → APPROVED 或 PENDING → REJECTED,终态不可逆
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// Valid 判断状态是否合法
func (s LeaveStatus) Valid() bool {
	return s == LeaveStatusPending || s == LeaveStatusApproved || s == LeaveStatusRejected
}

// Final 判断状态是否为终态
func (s LeaveStatus) Final() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

// LeaveRequestModel 请假单数据模型
type LeaveRequestModel struct {
	ID                uint        `gorm:"primaryKey;autoIncrement"`
	UserID            uint        `gorm:"not null;index"`
	CourseYear        string      `gorm:"type:varchar(64)"`
	RoomNo            string      `gorm:"type:varchar(32)"`
	FromDate          string      `gorm:"type:varchar(32);not null"`
	ToDate            string      `gorm:"type:varchar(32);not null"`
	Reason            string      `gorm:"type:text;not null"`
	LeaveAddress      string      `gorm:"type:text"`
	SelfContact       string      `gorm:"type:varchar(32)"`
	ParentContact     string      `gorm:"type:varchar(32)"`
	GuardianContact   string      `gorm:"type:varchar(32)"`
	ComingDate        string      `gorm:"type:varchar(32)"`
	Remark            string      `gorm:"type:text"`
	SelectedApprovers []byte      `gorm:"type:jsonb;not null"` // 选定审批管理员的用户 ID 列表(JSON 数组)
	Status            LeaveStatus `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	CreatedAt         time.Time   `gorm:"not null;index"`
}

// TableName 指定表名
func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}

// Validate 验证请假单模型
func (lm *LeaveRequestModel) Validate() error {
	if lm.UserID == 0 {
		return errors.New("owner user ID is required")
	}
	if lm.FromDate == "" || lm.ToDate == "" {
		return errors.New("leave date range is required")
	}
	if lm.Reason == "" {
		return errors.New("leave reason is required")
	}
	if !lm.Status.Valid() {
		return errors.New("leave status is invalid")
	}
	ids, err := lm.ApproverIDs()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return errors.New("selected approvers must not be empty")
	}
	return nil
}

// ApproverIDs 解码选定审批人 ID 列表
func (lm *LeaveRequestModel) ApproverIDs() ([]uint, error) {
	if len(lm.SelectedApprovers) == 0 {
		return nil, errors.New("selected approvers are not set")
	}
	var ids []uint
	if err := json.Unmarshal(lm.SelectedApprovers, &ids); err != nil {
		return nil, errors.New("selected approvers are not a valid ID list")
	}
	return ids, nil
}

// SetApproverIDs 编码选定审批人 ID 列表
func (lm *LeaveRequestModel) SetApproverIDs(ids []uint) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	lm.SelectedApprovers = data
	return nil
}

// HasApprover 判断管理员是否在选定审批人列表中
func (lm *LeaveRequestModel) HasApprover(adminID uint) bool {
	ids, err := lm.ApproverIDs()
	if err != nil {
		return false
	}
	for _, id := range ids {
		if id == adminID {
			return true
		}
	}
	return false
}
