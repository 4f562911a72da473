package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/metrics"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LeaveService 请假审批工作流引擎
// 状态机: PENDING → APPROVED / PENDING → REJECTED,终态不可逆。
// 审批语义不对称: 任一选定管理员拒绝即终结为 REJECTED,
// 而通过需要全部选定管理员同意。所有协调正确性由存储层保证
// (decide 全程单事务 + 请假单行锁 + 终结时的条件更新),进程内不持有工作流状态。
type LeaveService interface {
	Submit(ctx context.Context, req *SubmitLeaveRequest) (*model.LeaveRequestModel, error)
	Decide(ctx context.Context, req *DecideLeaveRequest) error
	ListAll(ctx context.Context) ([]*repository.LeaveWithOwner, error)
}

// SubmitLeaveRequest 提交请假单请求
// @Description 提交请假单的请求参数
type SubmitLeaveRequest struct {
	Email           string   `json:"email" example:"student@pccoe.com" binding:"required"` // 申请人邮箱
	CourseYear      string   `json:"course_year" example:"TE IT"`
	RoomNo          string   `json:"room_no" example:"B-204"`
	FromDate        string   `json:"from_date" example:"2025-03-10" binding:"required"`
	ToDate          string   `json:"to_date" example:"2025-03-14" binding:"required"`
	Reason          string   `json:"reason" example:"Family function" binding:"required"`
	LeaveAddress    string   `json:"leave_address" example:"Pune"`
	SelfContact     string   `json:"self_contact" example:"9876543210"`
	ParentContact   string   `json:"parent_contact" example:"9876543211"`
	GuardianContact string   `json:"guardian_contact" example:"9876543212"`
	ComingDate      string   `json:"coming_date" example:"2025-03-15"`
	Remark          string   `json:"remark" example:""`
	SelectedAdmins  []string `json:"selected_admins" example:"shivani@pccoe.com"` // 选定审批管理员邮箱列表
}

// DecideLeaveRequest 管理员审批请求
// @Description 管理员对请假单表态的请求参数
type DecideLeaveRequest struct {
	LeaveID uint                `json:"leave_id" example:"1" binding:"required"`                 // 请假单 ID
	Email   string              `json:"email" example:"shivani@pccoe.com" binding:"required"`    // 管理员邮箱
	Action  model.LeaveDecision `json:"action" example:"APPROVED" binding:"required"`            // APPROVED 或 REJECTED
}

// pendingPush 事务提交后待推送的 WebSocket 消息
type pendingPush struct {
	userID  uint
	message string
}

// leaveService 工作流引擎实现
type leaveService struct {
	db            *gorm.DB
	users         repository.UserRepository
	notifications NotificationService
}

// NewLeaveService 创建请假审批工作流引擎
func NewLeaveService(db *gorm.DB, users repository.UserRepository, notifications NotificationService) LeaveService {
	return &leaveService{
		db:            db,
		users:         users,
		notifications: notifications,
	}
}

// Submit 提交请假单
// 解析申请人与选定管理员,持久化 PENDING 请假单并通知每个选定管理员。
// 空的审批人集合会使配额检查在零次同意后即满足,因此这里直接拒绝。
func (s *leaveService) Submit(ctx context.Context, req *SubmitLeaveRequest) (*model.LeaveRequestModel, error) {
	if len(req.SelectedAdmins) == 0 {
		return nil, fmt.Errorf("%w: selected_admins must not be empty", ErrValidation)
	}

	// 1. 解析申请人
	owner, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, req.Email)
		}
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}

	// 2. 解析选定管理员,在提交时一次性换成稳定的用户 ID
	// 无法解析或非管理员的邮箱跳过并告警
	var approverIDs []uint
	seen := make(map[uint]bool)
	for _, email := range req.SelectedAdmins {
		admin, err := s.users.FindByEmail(strings.TrimSpace(email))
		if err != nil {
			if repository.IsNotFound(err) {
				logrus.WithField("email", email).Warn("selected admin not found, skipping")
				continue
			}
			return nil, fmt.Errorf("failed to resolve admin: %w", err)
		}
		if !admin.IsAdmin() {
			logrus.WithField("email", email).Warn("selected approver is not an admin, skipping")
			continue
		}
		if seen[admin.ID] {
			continue
		}
		seen[admin.ID] = true
		approverIDs = append(approverIDs, admin.ID)
	}

	if len(approverIDs) == 0 {
		return nil, fmt.Errorf("%w: no selected admin could be resolved", ErrValidation)
	}

	// 3. 单事务落库并通知每个选定管理员
	leave := &model.LeaveRequestModel{
		UserID:          owner.ID,
		CourseYear:      req.CourseYear,
		RoomNo:          req.RoomNo,
		FromDate:        req.FromDate,
		ToDate:          req.ToDate,
		Reason:          req.Reason,
		LeaveAddress:    req.LeaveAddress,
		SelfContact:     req.SelfContact,
		ParentContact:   req.ParentContact,
		GuardianContact: req.GuardianContact,
		ComingDate:      req.ComingDate,
		Remark:          req.Remark,
		Status:          model.LeaveStatusPending,
		CreatedAt:       time.Now(),
	}
	if err := leave.SetApproverIDs(approverIDs); err != nil {
		return nil, fmt.Errorf("failed to encode approvers: %w", err)
	}

	var pushes []pendingPush
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewLeaveRequestRepository(tx).Create(leave); err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}

		message := fmt.Sprintf("New leave request from %s", owner.Name)
		for _, adminID := range approverIDs {
			if err := s.notifications.Deliver(tx, adminID, message); err != nil {
				return err
			}
			pushes = append(pushes, pendingPush{userID: adminID, message: message})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.flushPushes(pushes)
	metrics.RecordLeaveSubmitted()

	logrus.WithFields(logrus.Fields{
		"leave_id":  leave.ID,
		"owner":     owner.Email,
		"approvers": len(approverIDs),
	}).Info("leave request submitted")

	return leave, nil
}

// Decide 管理员审批
// {未终结检查, 未重复表态检查, 写台账, 终结评估} 在同一事务内执行,
// 终结本身是条件更新,并发的两次终结尝试只有一个生效。
// 瞬时存储失败(锁竞争)在事务边界整体重试一次。
func (s *leaveService) Decide(ctx context.Context, req *DecideLeaveRequest) error {
	if !req.Action.Valid() {
		return fmt.Errorf("%w: action must be APPROVED or REJECTED", ErrValidation)
	}

	var pushes []pendingPush
	err := s.runInTxWithRetry(ctx, func(tx *gorm.DB) error {
		pushes = pushes[:0]
		return s.decideTx(tx, req, &pushes)
	})
	if err != nil {
		return err
	}

	s.flushPushes(pushes)
	metrics.RecordLeaveDecision(string(req.Action))
	return nil
}

// decideTx 审批事务体
func (s *leaveService) decideTx(tx *gorm.DB, req *DecideLeaveRequest, pushes *[]pendingPush) error {
	users := repository.NewUserRepository(tx)
	leaves := repository.NewLeaveRequestRepository(tx)
	ledger := repository.NewLeaveApprovalRepository(tx)

	// 1. 解析管理员,角色以本次事务从存储读到的为准,不信任任何缓存
	admin, err := users.FindByEmail(req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return fmt.Errorf("%w: %s is not an admin", ErrUnauthorized, req.Email)
		}
		return fmt.Errorf("failed to resolve admin: %w", err)
	}
	if !admin.IsAdmin() {
		return fmt.Errorf("%w: %s is not an admin", ErrUnauthorized, req.Email)
	}

	// 2. 行锁加载请假单,同一请假单上的并发审批事务在此排队,
	// 后续的配额统计只会看到已提交的台账行
	leave, err := leaves.FindByIDForUpdate(req.LeaveID)
	if err != nil {
		if repository.IsNotFound(err) {
			return fmt.Errorf("%w: leave %d", ErrNotFound, req.LeaveID)
		}
		return fmt.Errorf("failed to load leave request: %w", err)
	}

	// 3. 已终结的请假单不再接受任何表态
	if leave.Status.Final() {
		return ErrAlreadyFinalized
	}

	// 4. 管理员必须在选定审批人列表中,持有 ADMIN 角色也不例外
	if !leave.HasApprover(admin.ID) {
		return ErrNotSelected
	}

	// 5. 每个管理员对同一请假单只能表态一次
	decided, err := ledger.HasDecision(leave.ID, admin.ID)
	if err != nil {
		return fmt.Errorf("failed to check existing decision: %w", err)
	}
	if decided {
		return ErrDuplicateDecision
	}

	// 6. 写入台账
	rec := &model.LeaveApprovalModel{
		LeaveID:   leave.ID,
		AdminID:   admin.ID,
		Decision:  req.Action,
		DecidedAt: time.Now(),
	}
	if err := ledger.Record(rec); err != nil {
		// 唯一索引兜底: 并发的重复表态在这里被拦下
		if isUniqueViolation(err) {
			return ErrDuplicateDecision
		}
		return fmt.Errorf("failed to record decision: %w", err)
	}

	// 7. 单票否决: 任一拒绝立即终结
	if req.Action == model.DecisionRejected {
		updated, err := leaves.UpdateStatus(leave.ID, model.LeaveStatusRejected)
		if err != nil {
			return fmt.Errorf("failed to finalize rejection: %w", err)
		}
		if !updated {
			return ErrAlreadyFinalized
		}

		message := fmt.Sprintf("Your leave request was rejected by %s.", admin.Name)
		if err := s.notifications.Deliver(tx, leave.UserID, message); err != nil {
			return err
		}
		*pushes = append(*pushes, pendingPush{userID: leave.UserID, message: message})
		return nil
	}

	// 8. 同意: 先发单次同意通知,再评估配额
	message := fmt.Sprintf("Your leave request was approved by %s.", admin.Name)
	if err := s.notifications.Deliver(tx, leave.UserID, message); err != nil {
		return err
	}
	*pushes = append(*pushes, pendingPush{userID: leave.UserID, message: message})

	// 配额从存储中的审批人集合现算,不用任何提交时的缓存值
	approverIDs, err := leave.ApproverIDs()
	if err != nil {
		return fmt.Errorf("failed to decode approvers: %w", err)
	}
	required := int64(len(approverIDs))

	approved, err := ledger.CountApproved(leave.ID)
	if err != nil {
		return fmt.Errorf("failed to count approvals: %w", err)
	}

	if approved >= required {
		updated, err := leaves.UpdateStatus(leave.ID, model.LeaveStatusApproved)
		if err != nil {
			return fmt.Errorf("failed to finalize approval: %w", err)
		}
		if updated {
			final := "Your leave request has been fully approved."
			if err := s.notifications.Deliver(tx, leave.UserID, final); err != nil {
				return err
			}
			*pushes = append(*pushes, pendingPush{userID: leave.UserID, message: final})
		}
	}

	return nil
}

// ListAll 列出全部请假单并联查申请人姓名,最新的在前
func (s *leaveService) ListAll(ctx context.Context) ([]*repository.LeaveWithOwner, error) {
	return repository.NewLeaveRequestRepository(s.db.WithContext(ctx)).FindAllWithOwner()
}

// runInTxWithRetry 在事务中执行 fn,瞬时存储失败时整体重试一次
// 业务错误不重试,持续失败原样上抛
func (s *leaveService) runInTxWithRetry(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := s.db.WithContext(ctx).Transaction(fn)
	if err != nil && isTransient(err) {
		logrus.WithError(err).Warn("transient storage failure, retrying transaction once")
		err = s.db.WithContext(ctx).Transaction(fn)
	}
	return err
}

// flushPushes 事务提交后推送 WebSocket 消息
func (s *leaveService) flushPushes(pushes []pendingPush) {
	for _, p := range pushes {
		s.notifications.Push(p.userID, p.message)
	}
}

// isTransient 判断是否为可重试的瞬时存储错误(锁竞争/序列化冲突)
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "SQLSTATE 40001")
}

// isUniqueViolation 判断是否为唯一约束冲突
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
