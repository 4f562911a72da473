package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/api"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/auth"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/database"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/repository"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv API 集成测试环境
type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

// setupAPITest 构建带真实服务与内存数据库的测试路由
func setupAPITest(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	issuer := auth.NewTokenIssuer("api-test-secret", time.Hour)
	notificationSvc := service.NewNotificationService(db, nil)
	leaveSvc := service.NewLeaveService(db, repository.NewUserRepository(db), notificationSvc)
	userSvc := service.NewUserService(db, issuer)
	statsSvc := service.NewStatisticsService(db)

	authController := api.NewAuthController(userSvc)
	userController := api.NewUserController(userSvc)
	leaveController := api.NewLeaveController(leaveSvc)
	notificationController := api.NewNotificationController(notificationSvc)
	statsController := api.NewStatsController(statsSvc)

	router := gin.New()
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)
	router.POST("/get-user", userController.GetProfile)
	router.POST("/get-academics", userController.GetAcademics)
	router.GET("/get-admins", userController.ListAdmins)
	router.POST("/submit-leave", leaveController.Submit)
	router.POST("/approve-leave", leaveController.Decide)
	router.GET("/get-leaves", leaveController.List)
	router.POST("/get-notifications", notificationController.List)
	router.POST("/clear-notifications", notificationController.Clear)
	router.GET("/admin-stats", statsController.AdminStats)
	router.POST("/user-stats", statsController.UserStats)

	return &testEnv{db: db, router: router}
}

// postJSON 发送 JSON POST 请求
func (e *testEnv) postJSON(t *testing.T, path string, body interface{}) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// get 发送 GET 请求
func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// createUser 直接在存储层创建一个用户
func (e *testEnv) createUser(t *testing.T, name, email string, role model.Role) *model.UserModel {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	user := &model.UserModel{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

// decodeResponse 解析统一响应
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) api.Response {
	var resp api.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
