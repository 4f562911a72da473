package repository_test

import (
	"testing"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/database"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDBForUser 创建用户测试数据库
func setupTestDBForUser(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = database.Migrate(db)
	require.NoError(t, err)

	return db
}

// newTestUser 构造测试用户
func newTestUser(email string, role model.Role) *model.UserModel {
	return &model.UserModel{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    time.Now(),
	}
}

// TestUserRepository_CreateAndFind 测试创建与查找用户
func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDBForUser(t)
	repo := repository.NewUserRepository(db)

	user := newTestUser("student@pccoe.com", model.RoleStudent)
	err := repo.Create(user)
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)

	byID, err := repo.FindByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "student@pccoe.com", byID.Email)

	byEmail, err := repo.FindByEmail("student@pccoe.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

// TestUserRepository_EmailExists 测试邮箱查重
func TestUserRepository_EmailExists(t *testing.T) {
	db := setupTestDBForUser(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Create(newTestUser("taken@pccoe.com", model.RoleStudent)))

	exists, err := repo.EmailExists("taken@pccoe.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists("free@pccoe.com")
	assert.NoError(t, err)
	assert.False(t, exists)
}

// TestUserRepository_UniqueEmail 测试重复邮箱被唯一约束拦截
func TestUserRepository_UniqueEmail(t *testing.T) {
	db := setupTestDBForUser(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Create(newTestUser("dup@pccoe.com", model.RoleStudent)))
	err := repo.Create(newTestUser("dup@pccoe.com", model.RoleStudent))
	assert.Error(t, err)
}

// TestUserRepository_FindByRole 测试按角色查找
func TestUserRepository_FindByRole(t *testing.T) {
	db := setupTestDBForUser(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Create(newTestUser("s1@pccoe.com", model.RoleStudent)))
	require.NoError(t, repo.Create(newTestUser("a1@pccoe.com", model.RoleAdmin)))
	require.NoError(t, repo.Create(newTestUser("a2@pccoe.com", model.RoleAdmin)))

	admins, err := repo.FindByRole(model.RoleAdmin)
	assert.NoError(t, err)
	assert.Len(t, admins, 2)

	count, err := repo.CountByRole(model.RoleStudent)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// TestUserRepository_IsNotFound 测试记录不存在错误的判定
func TestUserRepository_IsNotFound(t *testing.T) {
	db := setupTestDBForUser(t)
	repo := repository.NewUserRepository(db)

	_, err := repo.FindByEmail("ghost@pccoe.com")
	assert.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
	assert.False(t, repository.IsNotFound(nil))
}
