package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/auth"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"gorm.io/gorm"
)

// seedAdmin 固定管理员账号定义
type seedAdmin struct {
	Name  string
	Phone string
	Email string
}

// fixedAdmins 宿舍固定的四个管理员
var fixedAdmins = []seedAdmin{
	{Name: "Hostel Incharge", Phone: "9000000001", Email: "InchargeHostel@pccoe.com"},
	{Name: "Ms. Shivani Pandey", Phone: "9000000002", Email: "shivani@pccoe.com"},
	{Name: "Mr. Sandeep Patel", Phone: "9000000003", Email: "sandeep@pccoe.com"},
	{Name: "Ms. Rachana Ma'am", Phone: "9000000004", Email: "rachana@pccoe.com"},
}

// defaultAdminPassword 初始密码,上线后必须修改
const defaultAdminPassword = "admin123"

// SeedAdmins 写入固定管理员账号(幂等),返回新建的数量
func SeedAdmins(db *gorm.DB) (int, error) {
	created := 0

	for _, admin := range fixedAdmins {
		var existing model.UserModel
		err := db.Where("email = ?", admin.Email).First(&existing).Error
		if err == nil {
			continue // 已存在,跳过
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("failed to look up admin %s: %w", admin.Email, err)
		}

		hash, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			return created, fmt.Errorf("failed to hash default password: %w", err)
		}

		user := &model.UserModel{
			Name:         admin.Name,
			Phone:        admin.Phone,
			Email:        admin.Email,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
			CreatedAt:    time.Now(),
		}
		if err := db.Create(user).Error; err != nil {
			return created, fmt.Errorf("failed to create admin %s: %w", admin.Email, err)
		}
		created++
	}

	return created, nil
}
