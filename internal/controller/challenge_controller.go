package controller

import (
	"challenge_hub_backend/internal/service"
	"challenge_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	ChallengeService *service.ChallengeService
}

func NewChallengeController(challengeService *service.ChallengeService) *ChallengeController {
	return &ChallengeController{ChallengeService: challengeService}
}

// @Summary 挑战列表
// @Description 列出全部挑战（不含答案），可按分类过滤
// @Tags 挑战
// @Produce json
// @Param category query string false "分类过滤"
// @Success 200 {object} util.Response
// @Router /challenges [get]
func (c *ChallengeController) ListChallenges(ctx *gin.Context) {
	category := ctx.Query("category")
	util.Success(ctx, c.ChallengeService.List(category))
}

// @Summary 挑战详情
// @Description 按ID获取挑战（不含答案）
// @Tags 挑战
// @Produce json
// @Param id path string true "挑战ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /challenges/{id} [get]
func (c *ChallengeController) GetChallenge(ctx *gin.Context) {
	view, err := c.ChallengeService.Get(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}
