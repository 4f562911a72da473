package model

import (
	"errors"
	"time"
)

// Role 用户角色
// 只有两种合法取值,避免自由文本角色带来的非法状态
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

// Valid 判断角色是否合法
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// UserModel 用户数据模型
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32)"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Address      string    `gorm:"type:text"`
	DOB          string    `gorm:"type:varchar(32)"`
	Gender       string    `gorm:"type:varchar(16)"`
	FatherName   string    `gorm:"type:varchar(255)"`
	FatherPhone  string    `gorm:"type:varchar(32)"`
	MotherName   string    `gorm:"type:varchar(255)"`
	MotherPhone  string    `gorm:"type:varchar(32)"`
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(16);not null;default:'STUDENT';index"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// Validate 验证用户模型
func (um *UserModel) Validate() error {
	if um.Name == "" {
		return errors.New("user name is required")
	}
	if um.Email == "" {
		return errors.New("user email is required")
	}
	if um.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	if !um.Role.Valid() {
		return errors.New("user role must be STUDENT or ADMIN")
	}
	return nil
}

// IsAdmin 判断用户是否为管理员
func (um *UserModel) IsAdmin() bool {
	return um.Role == RoleAdmin
}
