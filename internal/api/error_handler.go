package api

import (
	"errors"
	"net/http"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/service"
	"github.com/gin-gonic/gin"
)

// APIError API 错误
type APIError struct {
	Code    int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrorHandlerMiddleware 错误处理中间件
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			var apiErr *APIError
			if errors.As(err, &apiErr) {
				Error(c, apiErr.Code, apiErr.Message, apiErr.Detail)
			} else {
				Error(c, http.StatusInternalServerError, "internal server error", err.Error())
			}
		}
	}
}

// WrapError 包装错误
func WrapError(err error, code int, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Detail:  err.Error(),
	}
}

// RespondServiceError 按业务错误语义映射 HTTP 状态码
// 403: 非管理员或不在选定审批人之列
// 404: 资源不存在
// 409: 邮箱已注册
// 401: 凭据错误
// 400: 参数非法/重复表态/已终结
// 500: 其他
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrNotSelected):
		Error(c, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, service.ErrNotFound):
		Error(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, service.ErrEmailExists):
		Error(c, http.StatusConflict, "email already registered", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		Error(c, http.StatusUnauthorized, "invalid credentials", "")
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrAlreadyFinalized),
		errors.Is(err, service.ErrDuplicateDecision):
		Error(c, http.StatusBadRequest, "invalid request", err.Error())
	default:
		Error(c, http.StatusInternalServerError, "internal server error", err.Error())
	}
}
