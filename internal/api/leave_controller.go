package api

import (
	"net/http"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/service"
	"github.com/gin-gonic/gin"
)

// LeaveController 请假审批控制器
type LeaveController struct {
	leaveService service.LeaveService
}

// NewLeaveController 创建请假审批控制器
func NewLeaveController(leaveService service.LeaveService) *LeaveController {
	return &LeaveController{
		leaveService: leaveService,
	}
}

// Submit 提交请假单
// @Summary      提交请假单
// @Description  提交一张 PENDING 请假单并通知选定的审批管理员
// @Tags         请假审批
// @Accept       json
// @Produce      json
// @Param        request body service.SubmitLeaveRequest true "请假单信息"
// @Success      201  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /submit-leave [post]
func (c *LeaveController) Submit(ctx *gin.Context) {
	var req service.SubmitLeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	leave, err := c.leaveService.Submit(ctx.Request.Context(), &req)
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Created(ctx, leave)
}

// Decide 管理员审批
// @Summary      管理员审批
// @Description  选定管理员对请假单表态,拒绝立即终结,全员同意后通过
// @Tags         请假审批
// @Accept       json
// @Produce      json
// @Param        request body service.DecideLeaveRequest true "审批动作"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /approve-leave [post]
func (c *LeaveController) Decide(ctx *gin.Context) {
	var req service.DecideLeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := c.leaveService.Decide(ctx.Request.Context(), &req); err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, gin.H{"leave_id": req.LeaveID, "action": req.Action})
}

// List 列出全部请假单
// @Summary      列出请假单
// @Description  返回全部请假单及申请人姓名,最新的在前
// @Tags         请假审批
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /get-leaves [get]
func (c *LeaveController) List(ctx *gin.Context) {
	leaves, err := c.leaveService.ListAll(ctx.Request.Context())
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, leaves)
}
