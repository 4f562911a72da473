package service

import (
	"context"
	"fmt"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/repository"
	"gorm.io/gorm"
)

// AdminStats 管理端全局统计
type AdminStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalLeaves    int64 `json:"total_leaves"`
	PendingLeaves  int64 `json:"pending_leaves"`
	ApprovedLeaves int64 `json:"approved_leaves"`
	RejectedLeaves int64 `json:"rejected_leaves"`
}

// UserStats 单个学生的请假统计
type UserStats struct {
	TotalLeaves    int64 `json:"total_leaves"`
	PendingLeaves  int64 `json:"pending_leaves"`
	ApprovedLeaves int64 `json:"approved_leaves"`
	RejectedLeaves int64 `json:"rejected_leaves"`
}

// StatisticsService 统计服务
type StatisticsService interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
	UserStats(ctx context.Context, email string) (*UserStats, error)
}

type statisticsService struct {
	db *gorm.DB
}

// NewStatisticsService 创建统计服务
func NewStatisticsService(db *gorm.DB) StatisticsService {
	return &statisticsService{db: db}
}

// AdminStats 全局统计: 学生总数与各状态请假单数量
func (s *statisticsService) AdminStats(ctx context.Context) (*AdminStats, error) {
	db := s.db.WithContext(ctx)
	users := repository.NewUserRepository(db)
	leaves := repository.NewLeaveRequestRepository(db)

	stats := &AdminStats{}
	var err error

	if stats.TotalUsers, err = users.CountByRole(model.RoleStudent); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.TotalLeaves, err = leaves.CountAll(); err != nil {
		return nil, fmt.Errorf("failed to count leaves: %w", err)
	}
	if stats.PendingLeaves, err = leaves.CountByStatus(model.LeaveStatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedLeaves, err = leaves.CountByStatus(model.LeaveStatusApproved); err != nil {
		return nil, err
	}
	if stats.RejectedLeaves, err = leaves.CountByStatus(model.LeaveStatusRejected); err != nil {
		return nil, err
	}
	return stats, nil
}

// UserStats 单个学生的请假统计
func (s *statisticsService) UserStats(ctx context.Context, email string) (*UserStats, error) {
	db := s.db.WithContext(ctx)

	user, err := repository.NewUserRepository(db).FindByEmail(email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, err
	}

	leaves := repository.NewLeaveRequestRepository(db)
	stats := &UserStats{}

	if stats.TotalLeaves, err = leaves.CountByUser(user.ID); err != nil {
		return nil, fmt.Errorf("failed to count leaves: %w", err)
	}
	if stats.PendingLeaves, err = leaves.CountByUserAndStatus(user.ID, model.LeaveStatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedLeaves, err = leaves.CountByUserAndStatus(user.ID, model.LeaveStatusApproved); err != nil {
		return nil, err
	}
	if stats.RejectedLeaves, err = leaves.CountByUserAndStatus(user.ID, model.LeaveStatusRejected); err != nil {
		return nil, err
	}
	return stats, nil
}
