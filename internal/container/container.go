package container

import (
	"fmt"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/auth"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/config"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/database"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/metrics"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/websocket"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Container 依赖注入容器
// 管理所有应用依赖,包括数据库、通知 Hub、令牌签发器等
type Container struct {
	db          *gorm.DB
	hub         *websocket.Hub
	tokenIssuer *auth.TokenIssuer
	collector   *metrics.Collector
}

// NewContainer 创建依赖注入容器
// 根据配置初始化所有依赖组件
func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. 初始化数据库（带重试机制）
	// 默认重试 3 次，初始间隔 1 秒，指数退避
	db, err := database.ConnectWithRetry(cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// 执行数据库迁移
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 2. 预置固定管理员账号
	seeded, err := database.SeedAdmins(db)
	if err != nil {
		return nil, fmt.Errorf("failed to seed admins: %w", err)
	}
	if seeded > 0 {
		logrus.WithField("count", seeded).Info("seeded admin accounts")
	}

	// 3. 初始化通知推送 Hub
	hub := websocket.NewHub()
	go hub.Run()

	// 4. 初始化 JWT 签发器
	tokenIssuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Second)

	// 5. 启动指标收集器
	collector := metrics.NewCollector(db, 15*time.Second)
	collector.Start()

	return &Container{
		db:          db,
		hub:         hub,
		tokenIssuer: tokenIssuer,
		collector:   collector,
	}, nil
}

// DB 获取数据库连接
func (c *Container) DB() *gorm.DB {
	return c.db
}

// Hub 获取通知推送 Hub
func (c *Container) Hub() *websocket.Hub {
	return c.hub
}

// TokenIssuer 获取 JWT 签发器
func (c *Container) TokenIssuer() *auth.TokenIssuer {
	return c.tokenIssuer
}

// Close 关闭容器,清理资源
func (c *Container) Close() error {
	if c.collector != nil {
		c.collector.Stop()
	}

	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	return nil
}
