package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Marypvlva/house-board/internal/app/middleware"
	"github.com/Marypvlva/house-board/internal/error/code"
	"github.com/Marypvlva/house-board/internal/error/response"
	"github.com/Marypvlva/house-board/services"
	"github.com/Marypvlva/house-board/services/container"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
	LoginForHouse()
	Me()
}

// JWTController 处理身份验证请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin1@example.com"`
	Password string `json:"password" binding:"required" example:"admin12345"`
}

// MeResponse 表示当前用户信息
type MeResponse struct {
	ID        uint   `json:"id" example:"1"`
	Email     string `json:"email" example:"admin1@example.com"`
	Role      string `json:"role" example:"admin"`
	HouseSlug string `json:"house_slug" example:"dom1"`
}

// HandleJWTFunc 返回一个处理认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "loginForHouse":
			controller.LoginForHouse()
		case "me":
			controller.Me()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. Login 处理通用登录
// @Summary      User Login
// @Description  Verify email and password, return a signed bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  services.LoginResult  "Access token"
// @Failure      400  {object}  ErrorResponse  "Bad credentials"
// @Failure      429  {object}  ErrorResponse  "Too many failed attempts"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	c.login("")
}

// 2. LoginForHouse 处理小区入口登录
// @Summary      House-scoped Login
// @Description  Same as login, but the account must belong to the house identified by slug
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        slug path string true "House slug"
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  services.LoginResult  "Access token"
// @Failure      400  {object}  ErrorResponse  "Bad credentials or wrong house"
// @Failure      429  {object}  ErrorResponse  "Too many failed attempts"
// @Router       /auth/login/{slug} [post]
func (c *JWTController) LoginForHouse() {
	c.login(c.Ctx.Param("slug"))
}

// login 两个登录入口的公共流程，slug为空表示通用登录
func (c *JWTController) login(slug string) {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	// 登录防护：近期失败过多的账号直接拒绝
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if redisService.TooManyLoginFailures(req.Email) {
		response.Fail(c.Ctx, code.ErrTooManyRequests)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	var result *services.LoginResult
	var err error
	if slug == "" {
		result, err = jwtService.Login(req.Email, req.Password)
	} else {
		result, err = jwtService.LoginForHouse(slug, req.Email, req.Password)
	}

	if err != nil {
		redisService.RecordLoginFailure(req.Email)
		respondServiceError(c.Ctx, err)
		return
	}

	redisService.ResetLoginFailures(req.Email)
	response.Success(c.Ctx, result)
}

// 3. Me 返回当前登录用户的信息
// @Summary      Current User
// @Description  Return id, email, role and house slug of the authenticated user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  MeResponse
// @Failure      401  {object}  ErrorResponse  "Missing or invalid token"
// @Router       /me [get]
func (c *JWTController) Me() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	house, err := houseService.GetHouseByID(user.HouseID)
	if err != nil {
		respondServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, MeResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		HouseSlug: house.Slug,
	})
}
