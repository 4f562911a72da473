package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/repository"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DocumentService 证件文档服务
// 每个 (用户, 证件类型) 至多保留一份文件,重复上传时替换旧件。
type DocumentService interface {
	Upload(ctx context.Context, email, docType string, file *multipart.FileHeader) (*model.DocumentModel, error)
	List(ctx context.Context, email string) ([]*model.DocumentModel, error)
	Open(ctx context.Context, id uint) (*model.DocumentModel, error)
}

type documentService struct {
	db        *gorm.DB
	uploadDir string
}

// NewDocumentService 创建文档服务
func NewDocumentService(db *gorm.DB, uploadDir string) DocumentService {
	return &documentService{db: db, uploadDir: uploadDir}
}

// Upload 上传证件文件
// 旧记录在同一事务内删除,事务提交后再清理旧文件,落库失败时磁盘上的旧件不丢
func (s *documentService) Upload(ctx context.Context, email, docType string, file *multipart.FileHeader) (*model.DocumentModel, error) {
	if email == "" || docType == "" || file == nil {
		return nil, fmt.Errorf("%w: email, doc_type and file are required", ErrValidation)
	}
	if !utils.IsAllowedDocumentFile(file.Filename) {
		return nil, fmt.Errorf("%w: file type not allowed", ErrValidation)
	}

	user, err := repository.NewUserRepository(s.db.WithContext(ctx)).FindByEmail(email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload dir: %w", err)
	}

	// 文件名带 uuid,避免与历史文件或并发上传冲突
	ext := strings.ToLower(filepath.Ext(file.Filename))
	storedName := fmt.Sprintf("%d_%s_%s%s", user.ID, utils.SanitizeString(docType), uuid.New().String(), ext)
	storedPath := filepath.Join(s.uploadDir, storedName)

	if err := s.saveUploadedFile(file, storedPath); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	doc := &model.DocumentModel{
		UserID:     user.ID,
		DocType:    docType,
		FilePath:   storedPath,
		UploadedAt: time.Now(),
	}

	var stalePaths []string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		docs := repository.NewDocumentRepository(tx)

		old, err := docs.FindByUserAndType(user.ID, docType)
		if err != nil {
			return fmt.Errorf("failed to look up existing documents: %w", err)
		}
		for _, o := range old {
			if err := docs.Delete(o.ID); err != nil {
				return fmt.Errorf("failed to delete old document: %w", err)
			}
			stalePaths = append(stalePaths, o.FilePath)
		}

		return docs.Create(doc)
	})
	if err != nil {
		// 落库失败,回收刚写入的新文件
		if rmErr := os.Remove(storedPath); rmErr != nil {
			logrus.WithError(rmErr).Warn("failed to remove orphaned upload")
		}
		return nil, err
	}

	for _, p := range stalePaths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", p).Warn("failed to remove replaced document file")
		}
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"doc_type": docType,
	}).Info("document uploaded")

	return doc, nil
}

// List 列出用户上传的全部证件
func (s *documentService) List(ctx context.Context, email string) ([]*model.DocumentModel, error) {
	user, err := repository.NewUserRepository(s.db.WithContext(ctx)).FindByEmail(email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, err
	}
	return repository.NewDocumentRepository(s.db.WithContext(ctx)).FindByUserID(user.ID)
}

// Open 按 ID 取出文档记录,文件已不在磁盘上时视为不存在
func (s *documentService) Open(ctx context.Context, id uint) (*model.DocumentModel, error) {
	doc, err := repository.NewDocumentRepository(s.db.WithContext(ctx)).FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: document %d", ErrNotFound, id)
		}
		return nil, err
	}
	if _, err := os.Stat(doc.FilePath); err != nil {
		return nil, fmt.Errorf("%w: document file missing", ErrNotFound)
	}
	return doc, nil
}

// saveUploadedFile 将上传内容写入目标路径
func (s *documentService) saveUploadedFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
