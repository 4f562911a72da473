package api

import (
	"fmt"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/auth"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/config"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/websocket"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/Sarthak-Jamdade/CEP-Review1/docs" // 导入生成的 docs 包
)

// SetupRoutes 配置路由(默认 Swagger 地址)
func SetupRoutes(hub *websocket.Hub, issuer *auth.TokenIssuer, db *gorm.DB) *gin.Engine {
	return SetupRoutesWithConfig(hub, issuer, db, "localhost", 8080, nil)
}

// SetupRoutesWithConfig 配置路由与基础中间件
// 业务路由由调用方在返回的 engine 上继续注册
func SetupRoutesWithConfig(hub *websocket.Hub, issuer *auth.TokenIssuer, db *gorm.DB, swaggerHost string, port int, corsCfg *config.CORSConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// 中间件
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware())
	router.Use(SecurityHeadersMiddleware())
	router.Use(TracingMiddleware())
	router.Use(ErrorHandlerMiddleware())
	router.Use(RateLimitMiddleware(100, 200))

	if corsCfg != nil && len(corsCfg.AllowedOrigins) > 0 {
		router.Use(CORSMiddleware(corsCfg.AllowedOrigins))
	}

	// 健康检查
	healthController := NewHealthController(db)
	router.GET("/health", healthController.Check)

	// Prometheus 指标端点
	router.GET("/metrics", MetricsHandler)

	// WebSocket 通知推送
	if hub != nil && issuer != nil {
		router.GET("/ws/notifications", websocket.NotificationHandler(hub, issuer))
	}

	// Swagger UI 路由
	swaggerURL := fmt.Sprintf("http://%s:%d/swagger/doc.json", swaggerHost, port)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL(swaggerURL),
	))

	return router
}
