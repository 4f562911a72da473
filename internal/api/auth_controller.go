package api

import (
	"net/http"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/service"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthController 认证控制器
type AuthController struct {
	userService service.UserService
}

// NewAuthController 创建认证控制器
func NewAuthController(userService service.UserService) *AuthController {
	return &AuthController{
		userService: userService,
	}
}

// loginRequest 登录请求体
type loginRequest struct {
	Email    string `json:"email" binding:"required" example:"student@pccoe.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// Register 学生注册
// @Summary      学生注册
// @Description  注册新学生账号,同时记录学业信息
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body service.RegisterRequest true "注册信息"
// @Success      201  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := utils.ValidateEmail(req.Email); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	user, err := c.userService.Register(ctx.Request.Context(), &req)
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Created(ctx, user)
}

// Login 登录
// @Summary      登录
// @Description  校验邮箱与密码,返回用户信息与访问令牌
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "登录凭据"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	result, err := c.userService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, result)
}
