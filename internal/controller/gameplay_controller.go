package controller

import (
	"strconv"

	"challenge_hub_backend/internal/model"
	"challenge_hub_backend/internal/service"
	"challenge_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GameplayController struct {
	GameplayService *service.GameplayService
}

func NewGameplayController(gameplayService *service.GameplayService) *GameplayController {
	return &GameplayController{GameplayService: gameplayService}
}

// @Summary 提交答案
// @Description 赛事进行中才可提交；已答对的题目拒绝重复提交
// @Tags 对局
// @Accept json
// @Produce json
// @Param id path string true "赛事ID"
// @Param submission body model.SubmitRequest true "提交内容"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /events/{id}/submit [post]
func (c *GameplayController) SubmitAnswer(ctx *gin.Context) {
	var req model.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.GameplayService.SubmitAnswer(ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 解锁提示
// @Description 首次解锁计费，重复解锁返回相同文本且费用为0
// @Tags 对局
// @Produce json
// @Param id path string true "赛事ID"
// @Param challenge_id path string true "挑战ID"
// @Param team_id query string true "队伍ID"
// @Param level query int true "提示层级，从1开始"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /events/{id}/hints/{challenge_id} [get]
func (c *GameplayController) RevealHint(ctx *gin.Context) {
	teamID := ctx.Query("team_id")
	if teamID == "" {
		util.BadRequest(ctx, "team_id is required")
		return
	}

	level, err := strconv.Atoi(ctx.Query("level"))
	if err != nil || level < 1 {
		util.BadRequest(ctx, "level must be a positive integer")
		return
	}

	result, err := c.GameplayService.RevealHint(ctx.Param("id"), teamID, ctx.Param("challenge_id"), level)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 排行榜
// @Description 只含至少答对一题的队伍；得分降序，同分按最近正确提交时间升序
// @Tags 对局
// @Produce json
// @Param id path string true "赛事ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /events/{id}/leaderboard [get]
func (c *GameplayController) GetLeaderboard(ctx *gin.Context) {
	lb, err := c.GameplayService.GetLeaderboard(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, lb)
}

// @Summary 队伍进度
// @Description 当前得分、已完成题目、已解锁提示
// @Tags 对局
// @Produce json
// @Param id path string true "赛事ID"
// @Param team_id path string true "队伍ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /events/{id}/teams/{team_id}/progress [get]
func (c *GameplayController) GetProgress(ctx *gin.Context) {
	progress, err := c.GameplayService.GetProgress(ctx.Param("id"), ctx.Param("team_id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
