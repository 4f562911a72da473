package repository

import (
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"gorm.io/gorm"
)

// DocumentRepository 证件文档仓储接口
type DocumentRepository interface {
	Create(doc *model.DocumentModel) error
	FindByID(id uint) (*model.DocumentModel, error)
	FindByUserAndType(userID uint, docType string) ([]*model.DocumentModel, error)
	FindByUserID(userID uint) ([]*model.DocumentModel, error)
	Delete(id uint) error
}

// documentRepository 证件文档仓储实现
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository 创建证件文档仓储
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create 创建文档记录
func (r *documentRepository) Create(doc *model.DocumentModel) error {
	return r.db.Create(doc).Error
}

// FindByID 根据 ID 查找文档
func (r *documentRepository) FindByID(id uint) (*model.DocumentModel, error) {
	var doc model.DocumentModel
	if err := r.db.Where("id = ?", id).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindByUserAndType 查找用户指定类型的全部文档
// 正常情况下至多一条,历史数据可能存在多条,替换时一并清理
func (r *documentRepository) FindByUserAndType(userID uint, docType string) ([]*model.DocumentModel, error) {
	var docs []*model.DocumentModel
	err := r.db.Where("user_id = ? AND doc_type = ?", userID, docType).Find(&docs).Error
	return docs, err
}

// FindByUserID 查找用户的全部文档,最新上传的在前
func (r *documentRepository) FindByUserID(userID uint) ([]*model.DocumentModel, error) {
	var docs []*model.DocumentModel
	err := r.db.Where("user_id = ?", userID).Order("uploaded_at DESC").Find(&docs).Error
	return docs, err
}

// Delete 删除文档记录
func (r *documentRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&model.DocumentModel{}).Error
}
