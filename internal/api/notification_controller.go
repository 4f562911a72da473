package api

import (
	"net/http"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/service"
	"github.com/gin-gonic/gin"
)

// NotificationController 通知控制器
type NotificationController struct {
	notificationService service.NotificationService
}

// NewNotificationController 创建通知控制器
func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// List 获取通知列表
// @Summary      获取通知列表
// @Description  按邮箱返回用户收到的全部通知,最新的在前
// @Tags         通知
// @Accept       json
// @Produce      json
// @Param        request body emailRequest true "用户邮箱"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /get-notifications [post]
func (c *NotificationController) List(ctx *gin.Context) {
	var req emailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	notifications, err := c.notificationService.List(ctx.Request.Context(), req.Email)
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, notifications)
}

// Clear 清空通知
// @Summary      清空通知
// @Description  删除该用户的全部通知
// @Tags         通知
// @Accept       json
// @Produce      json
// @Param        request body emailRequest true "用户邮箱"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /clear-notifications [post]
func (c *NotificationController) Clear(ctx *gin.Context) {
	var req emailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := c.notificationService.Clear(ctx.Request.Context(), req.Email); err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, gin.H{"cleared": true})
}
