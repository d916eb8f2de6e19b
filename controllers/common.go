package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Marypvlva/house-board/internal/error/code"
	"github.com/Marypvlva/house-board/internal/error/response"
	"github.com/Marypvlva/house-board/services"
)

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int    `json:"code" example:"102000"`
	Message string `json:"message" example:"house not found"`
}

// respondServiceError 将服务层哨兵错误一对一映射为响应状态码
// 控制器从不吞掉这些错误
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBadCredentials):
		response.Fail(c, code.ErrBadCredentials)
	case errors.Is(err, services.ErrWrongHouseLogin):
		response.Fail(c, code.ErrWrongHouseLogin)
	case errors.Is(err, services.ErrHouseNotFound):
		response.Fail(c, code.ErrHouseNotFound)
	case errors.Is(err, services.ErrAnnouncementNotFound):
		response.Fail(c, code.ErrAnnouncementNotFound)
	case errors.Is(err, services.ErrForbidden):
		response.Fail(c, code.ErrHouseForbidden)
	case errors.Is(err, services.ErrUserNotFound):
		response.Fail(c, code.ErrRecordNotFound)
	default:
		response.Fail(c, code.ErrDatabase)
	}
}
