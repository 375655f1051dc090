package controller

import (
	"quizbank_backend/internal/service"
	"quizbank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats *service.StatsService
}

func NewStatsController(stats *service.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// GetStats godoc
// @Summary 获取答题统计
// @Description 当前用户的正确/错误/总数与正确率
// @Tags 统计
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StatsSnapshot} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	snapshot, err := c.Stats.GetStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, snapshot)
}

// ResetStats godoc
// @Summary 重置答题统计
// @Description 删除当前用户的全部答题历史，不可恢复
// @Tags 统计
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/stats/reset [delete]
func (c *StatsController) ResetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	deleted, err := c.Stats.ResetStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"message":         "Statistics reset successfully",
		"deleted_answers": deleted,
	})
}
