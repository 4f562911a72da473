package api

import (
	"net/http"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/service"
	"github.com/gin-gonic/gin"
)

// StatsController 统计控制器
type StatsController struct {
	statisticsService service.StatisticsService
}

// NewStatsController 创建统计控制器
func NewStatsController(statisticsService service.StatisticsService) *StatsController {
	return &StatsController{
		statisticsService: statisticsService,
	}
}

// AdminStats 管理端全局统计
// @Summary      管理端统计
// @Description  返回学生总数与各状态请假单数量
// @Tags         统计
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /admin-stats [get]
func (c *StatsController) AdminStats(ctx *gin.Context) {
	stats, err := c.statisticsService.AdminStats(ctx.Request.Context())
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, stats)
}

// UserStats 学生请假统计
// @Summary      学生统计
// @Description  按邮箱返回该学生的请假单统计
// @Tags         统计
// @Accept       json
// @Produce      json
// @Param        request body emailRequest true "用户邮箱"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /user-stats [post]
func (c *StatsController) UserStats(ctx *gin.Context) {
	var req emailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	stats, err := c.statisticsService.UserStats(ctx.Request.Context(), req.Email)
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, stats)
}
