package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Marypvlva/house-board/config"
	"github.com/Marypvlva/house-board/models"
	"github.com/Marypvlva/house-board/services"
)

// currentUserKey 上下文中存放当前用户的键
const currentUserKey = "currentUser"

var (
	jwtService   services.InterfaceJWTService
	houseService services.InterfaceHouseService
)

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
	houseService = services.NewHouseService(db, cfg)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// resolveUser 将授权头解析为用户记录
// 必选和可选两种认证模式共用该解析，差别只在失败时的处理
func resolveUser(authHeader string) (*models.User, error) {
	if authHeader == "" {
		return nil, errors.New("authorization header is required")
	}

	subject, err := jwtService.ExtractSubject(extractToken(authHeader))
	if err != nil {
		return nil, err
	}

	user, err := houseService.GetUserByEmail(subject)
	if err != nil {
		return nil, errors.New("unknown token subject")
	}

	return user, nil
}

// RequireUser 必选认证：任何解析失败都以401中止请求
// 这是整个系统中唯一产生401的地方
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveUser(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Invalid token: " + err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// OptionalUser 可选认证：缺失、无效或过期的令牌都降级为匿名访问
// 供公共读取端点使用，让管理员获得个性化结果又不拒绝公众
func OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := resolveUser(c.GetHeader("Authorization")); err == nil {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

// CurrentUser 从上下文中读取当前用户，匿名时返回(nil, false)
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
