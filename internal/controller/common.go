package controller

import (
	"errors"

	"challenge_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError 把服务层的哨兵错误映射到HTTP错误分类：
// Not-Found → 404，Invalid-State → 400/422，Conflict → 409，其余按500处理
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTeamNotFound),
		errors.Is(err, util.ErrEventNotFound),
		errors.Is(err, util.ErrChallengeNotFound),
		errors.Is(err, util.ErrChallengeNotInEvent),
		errors.Is(err, util.ErrHintLevelNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrEventNotStarted),
		errors.Is(err, util.ErrEventEnded):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrTeamNameTaken),
		errors.Is(err, util.ErrChallengeCompleted):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidEventWindow):
		util.UnprocessableEntity(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
