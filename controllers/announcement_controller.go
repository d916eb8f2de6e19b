package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Marypvlva/house-board/internal/app/middleware"
	"github.com/Marypvlva/house-board/internal/error/code"
	"github.com/Marypvlva/house-board/internal/error/response"
	"github.com/Marypvlva/house-board/services"
	"github.com/Marypvlva/house-board/services/container"
)

// InterfaceAnnouncementController 定义公告控制器接口
type InterfaceAnnouncementController interface {
	UpdateAnnouncement()
	DeleteAnnouncement()
}

// AnnouncementController 处理公告相关的请求
type AnnouncementController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAnnouncementController 创建一个新的公告控制器
func NewAnnouncementController(ctx *gin.Context, container *container.ServiceContainer) *AnnouncementController {
	return &AnnouncementController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAnnouncementFunc 返回一个处理公告请求的Gin处理函数
func HandleAnnouncementFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAnnouncementController(ctx, container)

		switch method {
		case "updateAnnouncement":
			controller.UpdateAnnouncement()
		case "deleteAnnouncement":
			controller.DeleteAnnouncement()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. UpdateAnnouncement 更新公告
// @Summary      Update Announcement
// @Description  Full replace of title, content and pinned; admin of the owning house only
// @Tags         Announcement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Announcement ID"
// @Param        request body AnnouncementRequest true "Announcement fields"
// @Success      200  {object}  services.AnnouncementView
// @Failure      401  {object}  ErrorResponse  "Missing or invalid token"
// @Failure      403  {object}  ErrorResponse  "Wrong house or role"
// @Failure      404  {object}  ErrorResponse  "Unknown announcement"
// @Router       /announcements/{id} [patch]
func (c *AnnouncementController) UpdateAnnouncement() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid announcement id")
		return
	}

	var req AnnouncementRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	view, err := announcementService.Update(uint(id), user, req.Title, req.Content, req.Pinned)
	if err != nil {
		respondServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, view)
}

// 2. DeleteAnnouncement 删除公告
// @Summary      Delete Announcement
// @Description  Hard delete; admin of the owning house only
// @Tags         Announcement
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Announcement ID"
// @Success      200  {object}  map[string]bool  "{ok: true}"
// @Failure      401  {object}  ErrorResponse  "Missing or invalid token"
// @Failure      403  {object}  ErrorResponse  "Wrong house or role"
// @Failure      404  {object}  ErrorResponse  "Unknown announcement"
// @Router       /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid announcement id")
		return
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	if err := announcementService.Delete(uint(id), user); err != nil {
		respondServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"ok": true})
}
