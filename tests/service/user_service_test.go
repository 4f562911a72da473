package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/auth"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/database"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/repository"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupUserServiceTest 创建用户服务测试环境
func setupUserServiceTest(t *testing.T) (*gorm.DB, service.UserService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	issuer := auth.NewTokenIssuer("test-secret-for-user-service", time.Hour)
	return db, service.NewUserService(db, issuer)
}

// registerTestStudent 注册一个测试学生
func registerTestStudent(t *testing.T, svc service.UserService, email string) *model.UserModel {
	user, err := svc.Register(context.Background(), &service.RegisterRequest{
		Name:     "Sarthak Jamdade",
		Email:    email,
		Password: "secret123",
		Course:   "IT",
		PRN:      "122IT1234",
	})
	require.NoError(t, err)
	return user
}

// TestUserService_Register 测试注册学生与学业记录
func TestUserService_Register(t *testing.T) {
	db, svc := setupUserServiceTest(t)

	user := registerTestStudent(t, svc, "sarthak@pccoe.com")
	assert.NotZero(t, user.ID)
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	// 学业记录与用户一同落库
	academic, err := repository.NewAcademicRepository(db).FindByUserID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "IT", academic.Course)
	assert.Equal(t, "122IT1234", academic.PRN)
}

// TestUserService_Register_MissingFields 测试缺少必填字段
func TestUserService_Register_MissingFields(t *testing.T) {
	_, svc := setupUserServiceTest(t)

	_, err := svc.Register(context.Background(), &service.RegisterRequest{
		Name:  "No Password",
		Email: "nopass@pccoe.com",
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

// TestUserService_Register_DuplicateEmail 测试重复邮箱注册
func TestUserService_Register_DuplicateEmail(t *testing.T) {
	_, svc := setupUserServiceTest(t)

	registerTestStudent(t, svc, "dup@pccoe.com")

	_, err := svc.Register(context.Background(), &service.RegisterRequest{
		Name:     "Second",
		Email:    "dup@pccoe.com",
		Password: "other123",
	})
	assert.ErrorIs(t, err, service.ErrEmailExists)
}

// TestUserService_Login 测试登录与令牌签发
func TestUserService_Login(t *testing.T) {
	_, svc := setupUserServiceTest(t)
	registerTestStudent(t, svc, "sarthak@pccoe.com")

	result, err := svc.Login(context.Background(), "sarthak@pccoe.com", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "sarthak@pccoe.com", result.User.Email)
}

// TestUserService_Login_InvalidCredentials 测试错误凭据统一拒绝
func TestUserService_Login_InvalidCredentials(t *testing.T) {
	_, svc := setupUserServiceTest(t)
	registerTestStudent(t, svc, "sarthak@pccoe.com")

	// 密码错误
	_, err := svc.Login(context.Background(), "sarthak@pccoe.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// 邮箱不存在,返回同一错误,不泄露账号是否存在
	_, err = svc.Login(context.Background(), "ghost@pccoe.com", "secret123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

// TestUserService_GetProfileAndAcademics 测试档案与学业查询
func TestUserService_GetProfileAndAcademics(t *testing.T) {
	_, svc := setupUserServiceTest(t)
	registerTestStudent(t, svc, "sarthak@pccoe.com")

	user, err := svc.GetProfile(context.Background(), "sarthak@pccoe.com")
	assert.NoError(t, err)
	assert.Equal(t, "Sarthak Jamdade", user.Name)

	academic, err := svc.GetAcademics(context.Background(), "sarthak@pccoe.com")
	assert.NoError(t, err)
	assert.Equal(t, "IT", academic.Course)

	_, err = svc.GetProfile(context.Background(), "ghost@pccoe.com")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

// TestUserService_ListAdmins 测试管理员列表
func TestUserService_ListAdmins(t *testing.T) {
	db, svc := setupUserServiceTest(t)

	seeded, err := database.SeedAdmins(db)
	require.NoError(t, err)
	require.Equal(t, 4, seeded)

	registerTestStudent(t, svc, "student@pccoe.com")

	admins, err := svc.ListAdmins(context.Background())
	assert.NoError(t, err)
	assert.Len(t, admins, 4)
	for _, admin := range admins {
		assert.Equal(t, model.RoleAdmin, admin.Role)
	}
}
