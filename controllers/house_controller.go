package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Marypvlva/house-board/internal/app/middleware"
	"github.com/Marypvlva/house-board/internal/error/code"
	"github.com/Marypvlva/house-board/internal/error/response"
	"github.com/Marypvlva/house-board/services"
	"github.com/Marypvlva/house-board/services/container"
)

// InterfaceHouseController 定义小区控制器接口
type InterfaceHouseController interface {
	GetHouses()
	GetAnnouncements()
	CreateAnnouncement()
}

// HouseController 处理小区相关的请求
type HouseController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHouseController 创建一个新的小区控制器
func NewHouseController(ctx *gin.Context, container *container.ServiceContainer) *HouseController {
	return &HouseController{
		Ctx:       ctx,
		Container: container,
	}
}

// HouseOut 表示对外输出的小区
type HouseOut struct {
	Name string `json:"name" example:"House 1"`
	Slug string `json:"slug" example:"dom1"`
}

// AnnouncementRequest 表示发布/更新公告的请求
// 更新是整体覆盖：省略pinned等同于提交false，不保留原值
type AnnouncementRequest struct {
	Title   string `json:"title" binding:"required" example:"Water shutdown"`
	Content string `json:"content" binding:"required" example:"No water on Tuesday from 9 to 12"`
	Pinned  bool   `json:"pinned" example:"false"`
}

// HandleHouseFunc 返回一个处理小区请求的Gin处理函数
func HandleHouseFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHouseController(ctx, container)

		switch method {
		case "getHouses":
			controller.GetHouses()
		case "getAnnouncements":
			controller.GetAnnouncements()
		case "createAnnouncement":
			controller.CreateAnnouncement()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. GetHouses 获取小区列表
// @Summary      List Houses
// @Description  Anonymous callers see every house; an authenticated admin sees only their own
// @Tags         House
// @Produce      json
// @Success      200  {array}  HouseOut
// @Router       /houses [get]
func (c *HouseController) GetHouses() {
	current, _ := middleware.CurrentUser(c.Ctx)

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	houses, err := houseService.ListHouses(current)
	if err != nil {
		respondServiceError(c.Ctx, err)
		return
	}

	out := make([]HouseOut, 0, len(houses))
	for _, h := range houses {
		out = append(out, HouseOut{Name: h.Name, Slug: h.Slug})
	}
	response.Success(c.Ctx, out)
}

// 2. GetAnnouncements 获取小区的公告列表
// @Summary      List Announcements
// @Description  Public read; an authenticated admin of another house is rejected
// @Tags         Announcement
// @Produce      json
// @Param        slug path string true "House slug"
// @Success      200  {array}   services.AnnouncementView
// @Failure      403  {object}  ErrorResponse  "Admin of another house"
// @Failure      404  {object}  ErrorResponse  "Unknown slug"
// @Router       /houses/{slug}/announcements [get]
func (c *HouseController) GetAnnouncements() {
	current, _ := middleware.CurrentUser(c.Ctx)

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	views, err := announcementService.ListByHouseSlug(c.Ctx.Param("slug"), current)
	if err != nil {
		respondServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, views)
}

// 3. CreateAnnouncement 在小区发布新公告
// @Summary      Create Announcement
// @Description  Admin-only, and only for the admin's own house
// @Tags         Announcement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "House slug"
// @Param        request body AnnouncementRequest true "Announcement fields"
// @Success      200  {object}  services.AnnouncementView
// @Failure      401  {object}  ErrorResponse  "Missing or invalid token"
// @Failure      403  {object}  ErrorResponse  "Wrong house or role"
// @Failure      404  {object}  ErrorResponse  "Unknown slug"
// @Router       /houses/{slug}/announcements [post]
func (c *HouseController) CreateAnnouncement() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req AnnouncementRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	view, err := announcementService.Create(c.Ctx.Param("slug"), user, req.Title, req.Content, req.Pinned)
	if err != nil {
		respondServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, view)
}
