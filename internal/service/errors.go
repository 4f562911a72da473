package service

import "errors"

// 业务错误分类,控制器据此映射 HTTP 状态码
// 所有错误都以其中之一包装,不会被吞掉或静默重试
var (
	// ErrValidation 输入缺失或格式非法
	ErrValidation = errors.New("validation failed")

	// ErrNotFound 用户或请假单不存在
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized 非管理员尝试执行管理员操作
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotSelected 管理员不在该请假单的选定审批人列表中
	ErrNotSelected = errors.New("not selected for this leave approval")

	// ErrAlreadyFinalized 请假单已终结,不再接受审批
	ErrAlreadyFinalized = errors.New("leave already finalized")

	// ErrDuplicateDecision 该管理员已对此请假单表态
	ErrDuplicateDecision = errors.New("already responded")

	// ErrEmailExists 注册邮箱已存在
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials 登录凭证错误
	ErrInvalidCredentials = errors.New("invalid credentials")
)
