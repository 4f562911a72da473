package repository

import (
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"gorm.io/gorm"
)

// LeaveApprovalRepository 审批台账仓储接口
// 只追加,记录一经写入不可修改
type LeaveApprovalRepository interface {
	HasDecision(leaveID uint, adminID uint) (bool, error)
	Record(rec *model.LeaveApprovalModel) error
	CountApproved(leaveID uint) (int64, error)
	FindByLeaveID(leaveID uint) ([]*model.LeaveApprovalModel, error)
}

// leaveApprovalRepository 审批台账仓储实现
type leaveApprovalRepository struct {
	db *gorm.DB
}

// NewLeaveApprovalRepository 创建审批台账仓储
func NewLeaveApprovalRepository(db *gorm.DB) LeaveApprovalRepository {
	return &leaveApprovalRepository{db: db}
}

// HasDecision 判断管理员是否已对该请假单表态
func (r *leaveApprovalRepository) HasDecision(leaveID uint, adminID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.LeaveApprovalModel{}).
		Where("leave_id = ? AND admin_id = ?", leaveID, adminID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Record 写入审批记录
// 唯一索引 (leave_id, admin_id) 兜底防止重复写入
func (r *leaveApprovalRepository) Record(rec *model.LeaveApprovalModel) error {
	return r.db.Create(rec).Error
}

// CountApproved 统计该请假单已记录的同意数
func (r *leaveApprovalRepository) CountApproved(leaveID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.LeaveApprovalModel{}).
		Where("leave_id = ? AND decision = ?", leaveID, model.DecisionApproved).
		Count(&count).Error
	return count, err
}

// FindByLeaveID 查找该请假单的全部审批记录
func (r *leaveApprovalRepository) FindByLeaveID(leaveID uint) ([]*model.LeaveApprovalModel, error) {
	var records []*model.LeaveApprovalModel
	err := r.db.Where("leave_id = ?", leaveID).Order("decided_at ASC").Find(&records).Error
	return records, err
}
