package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Marypvlva/house-board/config"
	"github.com/Marypvlva/house-board/controllers"
	_ "github.com/Marypvlva/house-board/docs"
	"github.com/Marypvlva/house-board/internal/app/middleware"
	"github.com/Marypvlva/house-board/services/container"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 请求ID中间件
	r.Use(middleware.RequestID())

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 注册公共路由
	registerPublicRoutes(r, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(r, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 认证路由，按IP限流
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimiter())
	auth.POST("/login", controllers.HandleJWTFunc(container, "login"))
	auth.POST("/login/:slug", controllers.HandleJWTFunc(container, "loginForHouse"))

	// 公共读取路由：可选认证，匿名可访问，管理员得到收窄后的结果
	public := r.Group("/")
	public.Use(middleware.OptionalUser())
	public.GET("/houses", controllers.HandleHouseFunc(container, "getHouses"))
	public.GET("/houses/:slug/announcements", controllers.HandleHouseFunc(container, "getAnnouncements"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	authed := r.Group("/")
	authed.Use(middleware.RequireUser())

	// 当前用户
	authed.GET("/me", controllers.HandleJWTFunc(container, "me"))

	// 公告写入路由
	authed.POST("/houses/:slug/announcements", controllers.HandleHouseFunc(container, "createAnnouncement"))
	authed.PATCH("/announcements/:id", controllers.HandleAnnouncementFunc(container, "updateAnnouncement"))
	authed.DELETE("/announcements/:id", controllers.HandleAnnouncementFunc(container, "deleteAnnouncement"))
}
