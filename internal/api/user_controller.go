package api

import (
	"net/http"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/service"
	"github.com/gin-gonic/gin"
)

// UserController 用户控制器
type UserController struct {
	userService service.UserService
}

// NewUserController 创建用户控制器
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// emailRequest 按邮箱定位用户的请求体
type emailRequest struct {
	Email string `json:"email" binding:"required" example:"student@pccoe.com"`
}

// GetProfile 获取用户档案
// @Summary      获取用户档案
// @Description  按邮箱返回用户的个人信息
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body emailRequest true "用户邮箱"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /get-user [post]
func (c *UserController) GetProfile(ctx *gin.Context) {
	var req emailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	user, err := c.userService.GetProfile(ctx.Request.Context(), req.Email)
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, user)
}

// GetAcademics 获取学业信息
// @Summary      获取学业信息
// @Description  按邮箱返回用户的学业记录
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body emailRequest true "用户邮箱"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /get-academics [post]
func (c *UserController) GetAcademics(ctx *gin.Context) {
	var req emailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	academics, err := c.userService.GetAcademics(ctx.Request.Context(), req.Email)
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, academics)
}

// ListAdmins 列出管理员
// @Summary      列出管理员
// @Description  返回全部管理员账号,供提交请假单时选择审批人
// @Tags         用户
// @Produce      json
// @Success      200  {object}  Response
// @Router       /get-admins [get]
func (c *UserController) ListAdmins(ctx *gin.Context) {
	admins, err := c.userService.ListAdmins(ctx.Request.Context())
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, admins)
}
