package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/auth"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService 用户服务,负责注册/登录/档案查询
type UserService interface {
	Register(ctx context.Context, req *RegisterRequest) (*model.UserModel, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetProfile(ctx context.Context, email string) (*model.UserModel, error)
	GetAcademics(ctx context.Context, email string) (*model.AcademicModel, error)
	ListAdmins(ctx context.Context) ([]*model.UserModel, error)
}

// RegisterRequest 注册请求
// @Description 新学生注册的个人与学业信息
type RegisterRequest struct {
	Name        string `json:"name" binding:"required" example:"Sarthak Jamdade"`
	Phone       string `json:"phone" example:"9876543210"`
	Email       string `json:"email" binding:"required" example:"student@pccoe.com"`
	Password    string `json:"password" binding:"required" example:"secret123"`
	Address     string `json:"address" example:"Pune"`
	DOB         string `json:"dob" example:"2004-05-12"`
	Gender      string `json:"gender" example:"Male"`
	FatherName  string `json:"father_name" example:""`
	FatherPhone string `json:"father_phone" example:""`
	MotherName  string `json:"mother_name" example:""`
	MotherPhone string `json:"mother_phone" example:""`

	// 学业信息,与用户记录一同落库
	School10       string `json:"school10" example:""`
	Board10        string `json:"board10" example:"SSC"`
	Year10         string `json:"year10" example:"2020"`
	CGPA10         string `json:"cgpa10" example:"92.4"`
	School12       string `json:"school12" example:""`
	Board12        string `json:"board12" example:"HSC"`
	Year12         string `json:"year12" example:"2022"`
	CGPA12         string `json:"cgpa12" example:"88.1"`
	Course         string `json:"course" example:"IT"`
	PRN            string `json:"prn" example:"122IT1234"`
	GraduationYear string `json:"graduation_year" example:"2026"`
}

// LoginResult 登录结果,携带签发的访问令牌
type LoginResult struct {
	User  *model.UserModel `json:"user"`
	Token string           `json:"token"`
}

type userService struct {
	db     *gorm.DB
	issuer *auth.TokenIssuer
}

// NewUserService 创建用户服务
func NewUserService(db *gorm.DB, issuer *auth.TokenIssuer) UserService {
	return &userService{db: db, issuer: issuer}
}

// Register 注册新学生
// 用户与学业记录在同一事务内写入,邮箱冲突返回 ErrEmailExists
func (s *userService) Register(ctx context.Context, req *RegisterRequest) (*model.UserModel, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.UserModel{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		DOB:          req.DOB,
		Gender:       req.Gender,
		FatherName:   req.FatherName,
		FatherPhone:  req.FatherPhone,
		MotherName:   req.MotherName,
		MotherPhone:  req.MotherPhone,
		PasswordHash: hash,
		Role:         model.RoleStudent,
		CreatedAt:    time.Now(),
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		exists, err := users.EmailExists(req.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrEmailExists, req.Email)
		}

		if err := users.Create(user); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", ErrEmailExists, req.Email)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		academic := &model.AcademicModel{
			UserID:         user.ID,
			School10:       req.School10,
			Board10:        req.Board10,
			Year10:         req.Year10,
			CGPA10:         req.CGPA10,
			School12:       req.School12,
			Board12:        req.Board12,
			Year12:         req.Year12,
			CGPA12:         req.CGPA12,
			Course:         req.Course,
			PRN:            req.PRN,
			GraduationYear: req.GraduationYear,
		}
		if err := repository.NewAcademicRepository(tx).Create(academic); err != nil {
			return fmt.Errorf("failed to create academic record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("user registered")

	return user, nil
}

// Login 校验凭据并签发 JWT
// 未知邮箱与密码错误统一返回 ErrInvalidCredentials,不泄露账号是否存在
func (s *userService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := repository.NewUserRepository(s.db.WithContext(ctx)).FindByEmail(email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user logged in")

	return &LoginResult{User: user, Token: token}, nil
}

// GetProfile 按邮箱取用户档案
func (s *userService) GetProfile(ctx context.Context, email string) (*model.UserModel, error) {
	user, err := repository.NewUserRepository(s.db.WithContext(ctx)).FindByEmail(email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, err
	}
	return user, nil
}

// GetAcademics 按邮箱取学业记录
func (s *userService) GetAcademics(ctx context.Context, email string) (*model.AcademicModel, error) {
	user, err := s.GetProfile(ctx, email)
	if err != nil {
		return nil, err
	}
	academic, err := repository.NewAcademicRepository(s.db.WithContext(ctx)).FindByUserID(user.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: academics for user %s", ErrNotFound, email)
		}
		return nil, err
	}
	return academic, nil
}

// ListAdmins 列出全部管理员,供提交请假单时选择审批人
func (s *userService) ListAdmins(ctx context.Context) ([]*model.UserModel, error) {
	return repository.NewUserRepository(s.db.WithContext(ctx)).FindByRole(model.RoleAdmin)
}
