package model

import (
	"errors"
	"time"
)

// DocumentModel 证件文档数据模型
// 同一用户同一 doc_type 只保留最新一份,旧文件在上传时被替换
type DocumentModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	UserID     uint      `gorm:"not null;index:idx_documents_user_type"`
	DocType    string    `gorm:"type:varchar(64);not null;index:idx_documents_user_type"`
	FilePath   string    `gorm:"type:text;not null"`
	UploadedAt time.Time `gorm:"not null;index"`
}

// TableName 指定表名
func (DocumentModel) TableName() string {
	return "documents"
}

// Validate 验证文档模型
func (dm *DocumentModel) Validate() error {
	if dm.UserID == 0 {
		return errors.New("user ID is required")
	}
	if dm.DocType == "" {
		return errors.New("document type is required")
	}
	if dm.FilePath == "" {
		return errors.New("file path is required")
	}
	return nil
}
