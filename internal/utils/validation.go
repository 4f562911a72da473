package utils

import (
	"errors"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	// ErrInvalidEmail 邮箱格式非法
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrInvalidDate 日期格式非法
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
	// ErrInvalidDocType 证件类型非法
	ErrInvalidDocType = errors.New("invalid document type")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// allowedDocumentExtensions 允许上传的证件文件扩展名
var allowedDocumentExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// SanitizeString 清理字符串，移除或转义危险字符
func SanitizeString(input string) string {
	// 1. HTML 转义，防止 XSS
	sanitized := html.EscapeString(input)

	// 2. 移除控制字符（除了换行符和制表符）
	var result strings.Builder
	for _, r := range sanitized {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}

// ValidateEmail 验证邮箱格式
func ValidateEmail(email string) error {
	if email == "" || len(email) > 255 || !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateDate 验证 YYYY-MM-DD 格式日期
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ValidateDocType 验证证件类型名称
// 只允许字母、数字、下划线和连字符，最大 64 字符
func ValidateDocType(docType string) error {
	if docType == "" || len(docType) > 64 {
		return ErrInvalidDocType
	}
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9_\- ]+$`, docType)
	if !matched {
		return ErrInvalidDocType
	}
	return nil
}

// IsAllowedDocumentFile 判断文件扩展名是否允许上传
func IsAllowedDocumentFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedDocumentExtensions[ext]
}
