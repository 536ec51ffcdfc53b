package controller

import (
	"challenge_hub_backend/internal/model"
	"challenge_hub_backend/internal/service"
	"challenge_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	EventService *service.EventService
}

func NewEventController(eventService *service.EventService) *EventController {
	return &EventController{EventService: eventService}
}

// @Summary 创建赛事
// @Description 结束时间必须晚于开始时间；challenge_ids 创建时不与目录比对
// @Tags 赛事
// @Accept json
// @Produce json
// @Param event body model.EventCreateRequest true "赛事信息"
// @Success 201 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req model.EventCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.EventService.Create(&req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, event)
}

// @Summary 赛事列表
// @Tags 赛事
// @Produce json
// @Success 200 {object} util.Response
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.EventService.List()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, events)
}

// @Summary 赛事详情
// @Description 状态（upcoming/active/ended）按当前时间派生
// @Tags 赛事
// @Produce json
// @Param id path string true "赛事ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	event, err := c.EventService.Get(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, event)
}

// @Summary 更新赛事
// @Description 部分更新；合并后的时间窗口重新校验
// @Tags 赛事
// @Accept json
// @Produce json
// @Param id path string true "赛事ID"
// @Param event body model.EventUpdateRequest true "更新内容"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	var req model.EventUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.EventService.Update(ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, event)
}

// @Summary 删除赛事
// @Tags 赛事
// @Produce json
// @Param id path string true "赛事ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	if err := c.EventService.Delete(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "event deleted"})
}
