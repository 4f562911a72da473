/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/api"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/config"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/container"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/repository"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long: `Start the Hostel Admin API server.
The server will listen on the configured host and port,
and provide REST API interfaces for registration, documents,
notifications and the leave approval workflow.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. 加载配置
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// 结构化日志按配置初始化,全局 logrus 与请求日志共用设置
		if logger, err := api.NewLoggerFromConfig(&cfg.Log); err == nil {
			logrus.SetFormatter(logger.Formatter)
			logrus.SetLevel(logger.GetLevel())
			logrus.SetOutput(logger.Out)
		} else {
			log.Printf("falling back to default log settings: %v", err)
		}

		// 2. 按配置开启分布式追踪
		if cfg.Tracing.Enabled {
			if err := api.InitTracing("hostel-admin", cfg.Tracing.JaegerEndpoint); err != nil {
				return fmt.Errorf("failed to initialize tracing: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = api.ShutdownTracing(shutdownCtx)
			}()
		}

		// 配置文件变更时运行时调整日志级别
		if configPath != "" {
			watcher := config.NewConfigWatcher(cfg, configPath)
			watcher.OnConfigChange(func(newCfg *config.Config) {
				if level, err := logrus.ParseLevel(newCfg.Log.Level); err == nil {
					api.SetLoggerLevel(level)
				}
			})
			if err := watcher.Start(); err != nil {
				log.Printf("config watcher disabled: %v", err)
			} else {
				defer watcher.Stop()
			}
		}

		// 3. 初始化容器
		ctr, err := container.NewContainer(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
		defer ctr.Close()

		// 4. 初始化服务
		db := ctr.DB()
		userRepo := repository.NewUserRepository(db)
		notificationSvc := service.NewNotificationService(db, ctr.Hub())
		leaveSvc := service.NewLeaveService(db, userRepo, notificationSvc)
		userSvc := service.NewUserService(db, ctr.TokenIssuer())
		documentSvc := service.NewDocumentService(db, cfg.Upload.Dir)
		statsSvc := service.NewStatisticsService(db)

		// 5. 初始化控制器
		authController := api.NewAuthController(userSvc)
		userController := api.NewUserController(userSvc)
		documentController := api.NewDocumentController(documentSvc, cfg.Upload.MaxSize)
		leaveController := api.NewLeaveController(leaveSvc)
		notificationController := api.NewNotificationController(notificationSvc)
		statsController := api.NewStatsController(statsSvc)

		// 6. 设置路由
		router := setupRoutesWithControllers(ctr, cfg,
			authController, userController, documentController,
			leaveController, notificationController, statsController)

		// 7. 启动服务器
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		srv := &http.Server{
			Addr:    addr,
			Handler: router,
		}

		// 启动服务器（在 goroutine 中）
		go func() {
			log.Printf("Server starting on %s", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()

		// 等待中断信号
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")

		// 优雅关闭
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}

		log.Println("Server exited")
		return nil
	},
}

// setupRoutesWithControllers 设置路由并绑定控制器
func setupRoutesWithControllers(
	ctr *container.Container,
	cfg *config.Config,
	authController *api.AuthController,
	userController *api.UserController,
	documentController *api.DocumentController,
	leaveController *api.LeaveController,
	notificationController *api.NotificationController,
	statsController *api.StatsController,
) *gin.Engine {
	// 使用配置的 host 和 port 设置 Swagger URL
	// 如果 host 是 0.0.0.0,使用 localhost 作为 Swagger URL
	swaggerHost := cfg.Server.Host
	if swaggerHost == "0.0.0.0" {
		swaggerHost = "localhost"
	}
	router := api.SetupRoutesWithConfig(ctr.Hub(), ctr.TokenIssuer(), ctr.DB(), swaggerHost, cfg.Server.Port, &cfg.CORS)

	// 注册与登录
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	// 用户资料
	router.POST("/get-user", userController.GetProfile)
	router.POST("/get-academics", userController.GetAcademics)
	router.GET("/get-admins", userController.ListAdmins)

	// 证件文档
	router.POST("/upload-document", documentController.Upload)
	router.POST("/get-documents", documentController.List)
	router.GET("/open-document/:id", documentController.Open)

	// 请假审批工作流
	router.POST("/submit-leave", leaveController.Submit)
	router.POST("/approve-leave", leaveController.Decide)
	router.GET("/get-leaves", leaveController.List)

	// 通知
	router.POST("/get-notifications", notificationController.List)
	router.POST("/clear-notifications", notificationController.Clear)

	// 统计
	router.GET("/admin-stats", statsController.AdminStats)
	router.POST("/user-stats", statsController.UserStats)

	// 自定义 NoRoute 处理器,返回 JSON 格式的 404
	// 必须在所有业务路由注册之后设置,确保未匹配的路由返回 JSON 而不是 HTML
	router.NoRoute(func(c *gin.Context) {
		api.Error(c, http.StatusNotFound, "route not found", "the requested route does not exist")
	})

	return router
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// 服务器配置标志
	serverCmd.Flags().String("config", "", "Config file path (default: config.yaml)")
	serverCmd.Flags().String("host", "0.0.0.0", "Server host")
	serverCmd.Flags().Int("port", 8080, "Server port")
}

// LoadConfig 加载配置
func LoadConfig(configPath string) (*config.Config, error) {
	return config.Load(configPath)
}
