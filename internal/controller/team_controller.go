package controller

import (
	"challenge_hub_backend/internal/model"
	"challenge_hub_backend/internal/service"
	"challenge_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TeamController struct {
	TeamService *service.TeamService
}

func NewTeamController(teamService *service.TeamService) *TeamController {
	return &TeamController{TeamService: teamService}
}

// @Summary 创建队伍
// @Description 队名全局唯一（区分大小写），成员至少一人
// @Tags 队伍
// @Accept json
// @Produce json
// @Param team body model.TeamCreateRequest true "队伍信息"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /teams [post]
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	var req model.TeamCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	team, err := c.TeamService.Create(&req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, team)
}

// @Summary 队伍列表
// @Tags 队伍
// @Produce json
// @Success 200 {object} util.Response
// @Router /teams [get]
func (c *TeamController) ListTeams(ctx *gin.Context) {
	teams, err := c.TeamService.List()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, teams)
}

// @Summary 队伍详情
// @Tags 队伍
// @Produce json
// @Param id path string true "队伍ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /teams/{id} [get]
func (c *TeamController) GetTeam(ctx *gin.Context) {
	team, err := c.TeamService.Get(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, team)
}

// @Summary 更新队伍
// @Description 只允许修改成员列表
// @Tags 队伍
// @Accept json
// @Produce json
// @Param id path string true "队伍ID"
// @Param team body model.TeamUpdateRequest true "更新内容"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /teams/{id} [put]
func (c *TeamController) UpdateTeam(ctx *gin.Context) {
	var req model.TeamUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	team, err := c.TeamService.Update(ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, team)
}

// @Summary 删除队伍
// @Description 不级联删除提交/提示历史，孤儿记录由清理接口处理
// @Tags 队伍
// @Produce json
// @Param id path string true "队伍ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /teams/{id} [delete]
func (c *TeamController) DeleteTeam(ctx *gin.Context) {
	if err := c.TeamService.Delete(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "team deleted"})
}

// @Summary 清理孤儿历史记录
// @Description 删除所属队伍已不存在的提交与提示记录
// @Tags 运维
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/cleanup [post]
func (c *TeamController) CleanupOrphans(ctx *gin.Context) {
	subs, hints, err := c.TeamService.CleanupOrphanHistory()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"submissions_removed":  subs,
		"hint_reveals_removed": hints,
	})
}
