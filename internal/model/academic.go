package model

import (
	"errors"
)

// AcademicModel 学业信息数据模型
// 每个用户至多一条
type AcademicModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	UserID         uint   `gorm:"not null;uniqueIndex"`
	School10       string `gorm:"column:school10;type:varchar(255)"`
	Board10        string `gorm:"column:board10;type:varchar(128)"`
	Year10         string `gorm:"column:year10;type:varchar(16)"`
	CGPA10         string `gorm:"column:cgpa10;type:varchar(16)"`
	School12       string `gorm:"column:school12;type:varchar(255)"`
	Board12        string `gorm:"column:board12;type:varchar(128)"`
	Year12         string `gorm:"column:year12;type:varchar(16)"`
	CGPA12         string `gorm:"column:cgpa12;type:varchar(16)"`
	Course         string `gorm:"type:varchar(128)"`
	PRN            string `gorm:"type:varchar(64)"`
	GraduationYear string `gorm:"type:varchar(16)"`
}

// TableName 指定表名
func (AcademicModel) TableName() string {
	return "academics"
}

// Validate 验证学业信息模型
func (am *AcademicModel) Validate() error {
	if am.UserID == 0 {
		return errors.New("user ID is required")
	}
	return nil
}
