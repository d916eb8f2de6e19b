package services

import "errors"

// 服务层哨兵错误，控制器据此一对一映射到响应状态码
var (
	// ErrBadCredentials 邮箱或密码错误
	ErrBadCredentials = errors.New("invalid email or password")
	// ErrWrongHouseLogin 通过小区入口登录但账号不属于该小区
	ErrWrongHouseLogin = errors.New("account does not belong to this house")
	// ErrHouseNotFound 小区不存在
	ErrHouseNotFound = errors.New("house not found")
	// ErrAnnouncementNotFound 公告不存在
	ErrAnnouncementNotFound = errors.New("announcement not found")
	// ErrForbidden 已认证但无权操作目标租户的资源
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
)
