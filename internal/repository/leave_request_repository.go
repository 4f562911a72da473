package repository

import (
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaveRequestRepository 请假单仓储接口
type LeaveRequestRepository interface {
	Create(leave *model.LeaveRequestModel) error
	FindByID(id uint) (*model.LeaveRequestModel, error)
	// FindByIDForUpdate 行锁读取,必须在事务内调用。
	// 同一请假单上的并发审批事务在这里排队,后到者提交时
	// 能看到先到者已提交的台账行
	FindByIDForUpdate(id uint) (*model.LeaveRequestModel, error)
	// UpdateStatus 条件状态更新: 仅当当前状态为 PENDING 时生效,
	// 返回 false 表示请假单已被并发调用方终结
	UpdateStatus(id uint, to model.LeaveStatus) (bool, error)
	FindAllWithOwner() ([]*LeaveWithOwner, error)
	CountAll() (int64, error)
	CountByStatus(status model.LeaveStatus) (int64, error)
	CountByUser(userID uint) (int64, error)
	CountByUserAndStatus(userID uint, status model.LeaveStatus) (int64, error)
}

// LeaveWithOwner 请假单与所有者姓名的联查结果
type LeaveWithOwner struct {
	model.LeaveRequestModel
	OwnerName string `json:"owner_name"`
}

// leaveRequestRepository 请假单仓储实现
type leaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository 创建请假单仓储
func NewLeaveRequestRepository(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create 创建请假单
func (r *leaveRequestRepository) Create(leave *model.LeaveRequestModel) error {
	return r.db.Create(leave).Error
}

// FindByID 根据 ID 查找请假单
func (r *leaveRequestRepository) FindByID(id uint) (*model.LeaveRequestModel, error) {
	var leave model.LeaveRequestModel
	if err := r.db.Where("id = ?", id).First(&leave).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

// FindByIDForUpdate 行锁读取 (SELECT ... FOR UPDATE)
// SQLite 方言不支持行锁子句,gorm 的 sqlite driver 会将其丢弃,
// 此时串行化由 sqlite 的单写锁保证
func (r *leaveRequestRepository) FindByIDForUpdate(id uint) (*model.LeaveRequestModel, error) {
	var leave model.LeaveRequestModel
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&leave).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

// UpdateStatus 条件状态更新 (compare-and-set)
// 单条 UPDATE 带状态前置条件,两个并发的终结尝试只有一个能生效
func (r *leaveRequestRepository) UpdateStatus(id uint, to model.LeaveStatus) (bool, error) {
	result := r.db.Model(&model.LeaveRequestModel{}).
		Where("id = ? AND status = ?", id, model.LeaveStatusPending).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindAllWithOwner 查找所有请假单并联查所有者姓名,最新的在前
func (r *leaveRequestRepository) FindAllWithOwner() ([]*LeaveWithOwner, error) {
	var leaves []*LeaveWithOwner
	err := r.db.Model(&model.LeaveRequestModel{}).
		Select("leave_requests.*, users.name AS owner_name").
		Joins("JOIN users ON users.id = leave_requests.user_id").
		Order("leave_requests.created_at DESC").
		Scan(&leaves).Error
	return leaves, err
}

// CountAll 统计请假单总数
func (r *leaveRequestRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.LeaveRequestModel{}).Count(&count).Error
	return count, err
}

// CountByStatus 统计指定状态的请假单数量
func (r *leaveRequestRepository) CountByStatus(status model.LeaveStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.LeaveRequestModel{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountByUser 统计用户的请假单数量
func (r *leaveRequestRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.LeaveRequestModel{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountByUserAndStatus 统计用户指定状态的请假单数量
func (r *leaveRequestRepository) CountByUserAndStatus(userID uint, status model.LeaveStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.LeaveRequestModel{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}
