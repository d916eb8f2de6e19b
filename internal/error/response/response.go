package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marypvlva/house-board/internal/error/code"
)

// ErrorBody 定义统一的错误响应格式
// 成功响应直接返回业务数据本身，不做包装
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Success 成功响应，直接输出业务数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 失败响应
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), ErrorBody{
		Code:    errorCode,
		Message: code.GetMessage(errorCode),
	})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErrorBody{
		Code:    errorCode,
		Message: message,
	})
}

// ParamError 参数错误响应
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrValidation, message)
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid)
}
