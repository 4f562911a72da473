package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/config"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PoolConfig 连接池配置
type PoolConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int // 秒
	ConnMaxIdleTime int // 秒
}

// BuildDSN 构建 PostgreSQL DSN
func BuildDSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// GetPoolConfig 获取连接池配置
func GetPoolConfig() *PoolConfig {
	return &PoolConfig{
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: 3600, // 1 小时
		ConnMaxIdleTime: 600,  // 10 分钟
	}
}

// Connect 连接数据库
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// 从配置中读取连接池参数，如果没有配置则使用默认值
	var poolConfig *PoolConfig
	if cfg.MaxIdleConns > 0 || cfg.MaxOpenConns > 0 {
		poolConfig = &PoolConfig{
			MaxIdleConns:    cfg.MaxIdleConns,
			MaxOpenConns:    cfg.MaxOpenConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		}
		// 如果某些值未设置，使用默认值
		if poolConfig.MaxIdleConns == 0 {
			poolConfig.MaxIdleConns = 10
		}
		if poolConfig.MaxOpenConns == 0 {
			poolConfig.MaxOpenConns = 100
		}
		if poolConfig.ConnMaxLifetime == 0 {
			poolConfig.ConnMaxLifetime = 3600
		}
		if poolConfig.ConnMaxIdleTime == 0 {
			poolConfig.ConnMaxIdleTime = 600
		}
	} else {
		poolConfig = GetPoolConfig()
	}

	sqlDB.SetMaxIdleConns(poolConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(poolConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(poolConfig.ConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(poolConfig.ConnMaxIdleTime) * time.Second)

	return db, nil
}

// ConnectWithRetry 带重试的数据库连接
func ConnectWithRetry(cfg config.DatabaseConfig, maxRetries int, retryInterval time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		db, err = Connect(cfg)
		if err == nil {
			return db, nil
		}

		// 如果不是最后一次重试，等待后重试
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
			retryInterval *= 2 // 指数退避
		}
	}

	return nil, fmt.Errorf("failed to connect database after %d retries: %w", maxRetries, err)
}

// Migrate 执行数据库迁移
func Migrate(db *gorm.DB) error {
	// 检测数据库类型
	dialector := db.Dialector.Name()

	// SQLite 不支持 jsonb，需要手动创建表
	// GORM SQLite dialector 的名称可能是 "sqlite" 或 "sqlite3"
	if dialector == "sqlite" || dialector == "sqlite3" {
		// 手动创建 SQLite 表（使用 TEXT 替代 jsonb）
		if err := createSQLiteTables(db); err != nil {
			return fmt.Errorf("failed to create SQLite tables: %w", err)
		}
	} else {
		// PostgreSQL 等其他数据库使用 AutoMigrate
		if err := db.AutoMigrate(
			&model.UserModel{},
			&model.AcademicModel{},
			&model.DocumentModel{},
			&model.LeaveRequestModel{},
			&model.LeaveApprovalModel{},
			&model.NotificationModel{},
		); err != nil {
			return fmt.Errorf("failed to auto migrate: %w", err)
		}
	}

	// 创建索引
	if err := CreateIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createSQLiteTables 为 SQLite 手动创建表（使用 TEXT 替代 jsonb）
func createSQLiteTables(db *gorm.DB) error {
	// 创建 users 表
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(32),
			email VARCHAR(255) NOT NULL UNIQUE,
			address TEXT,
			dob VARCHAR(32),
			gender VARCHAR(16),
			father_name VARCHAR(255),
			father_phone VARCHAR(32),
			mother_name VARCHAR(255),
			mother_phone VARCHAR(32),
			password_hash VARCHAR(128) NOT NULL,
			role VARCHAR(16) NOT NULL DEFAULT 'STUDENT',
			created_at DATETIME NOT NULL
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	// 创建 academics 表
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS academics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL UNIQUE,
			school10 VARCHAR(255),
			board10 VARCHAR(128),
			year10 VARCHAR(16),
			cgpa10 VARCHAR(16),
			school12 VARCHAR(255),
			board12 VARCHAR(128),
			year12 VARCHAR(16),
			cgpa12 VARCHAR(16),
			course VARCHAR(128),
			prn VARCHAR(64),
			graduation_year VARCHAR(16)
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create academics table: %w", err)
	}

	// 创建 documents 表
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			doc_type VARCHAR(64) NOT NULL,
			file_path TEXT NOT NULL,
			uploaded_at DATETIME NOT NULL
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}

	// 创建 leave_requests 表
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS leave_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			course_year VARCHAR(64),
			room_no VARCHAR(32),
			from_date VARCHAR(32) NOT NULL,
			to_date VARCHAR(32) NOT NULL,
			reason TEXT NOT NULL,
			leave_address TEXT,
			self_contact VARCHAR(32),
			parent_contact VARCHAR(32),
			guardian_contact VARCHAR(32),
			coming_date VARCHAR(32),
			remark TEXT,
			selected_approvers TEXT NOT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
			created_at DATETIME NOT NULL
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create leave_requests table: %w", err)
	}

	// 创建 leave_approvals 表
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS leave_approvals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			leave_id INTEGER NOT NULL,
			admin_id INTEGER NOT NULL,
			decision VARCHAR(16) NOT NULL,
			decided_at DATETIME NOT NULL
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create leave_approvals table: %w", err)
	}

	// 创建 notifications 表
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS notifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			message TEXT NOT NULL,
			is_read INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create notifications table: %w", err)
	}

	return nil
}

// CreateIndexes 创建数据库索引
func CreateIndexes(db *gorm.DB) error {
	// users 表索引
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)").Error; err != nil {
		return fmt.Errorf("failed to create idx_users_email: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)").Error; err != nil {
		return fmt.Errorf("failed to create idx_users_role: %w", err)
	}

	// documents 表索引
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_documents_user_type ON documents(user_id, doc_type)").Error; err != nil {
		return fmt.Errorf("failed to create idx_documents_user_type: %w", err)
	}

	// leave_requests 表索引
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_leaves_user_id ON leave_requests(user_id)").Error; err != nil {
		return fmt.Errorf("failed to create idx_leaves_user_id: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_leaves_status ON leave_requests(status)").Error; err != nil {
		return fmt.Errorf("failed to create idx_leaves_status: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_leaves_created_at ON leave_requests(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create idx_leaves_created_at: %w", err)
	}

	// leave_approvals 表索引
	// 唯一索引保证每个 (leave_id, admin_id) 至多一条审批记录
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_approvals_leave_admin ON leave_approvals(leave_id, admin_id)").Error; err != nil {
		return fmt.Errorf("failed to create idx_approvals_leave_admin: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_approvals_leave_id ON leave_approvals(leave_id)").Error; err != nil {
		return fmt.Errorf("failed to create idx_approvals_leave_id: %w", err)
	}

	// notifications 表索引
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id)").Error; err != nil {
		return fmt.Errorf("failed to create idx_notifications_user_id: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notifications_created_at ON notifications(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create idx_notifications_created_at: %w", err)
	}

	return nil
}

// CheckHealth 检查数据库连接健康状态
func CheckHealth(db *gorm.DB) bool {
	if db == nil {
		return false
	}

	sqlDB, err := db.DB()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return false
	}

	return true
}

// Reconnect 重新连接数据库
func Reconnect(cfg config.DatabaseConfig, oldDB *gorm.DB) (*gorm.DB, error) {
	// 关闭旧连接
	if oldDB != nil {
		if sqlDB, err := oldDB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	// 重新连接
	return Connect(cfg)
}
