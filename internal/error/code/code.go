package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 认证相关错误码 (101xxx).
const (
	// ErrBadCredentials - 400: 邮箱或密码错误.
	ErrBadCredentials int = iota + 101000
	// ErrWrongHouseLogin - 400: 不是本小区的登录入口.
	ErrWrongHouseLogin
)

// 小区相关错误码 (102xxx).
const (
	// ErrHouseNotFound - 404: 小区不存在.
	ErrHouseNotFound int = iota + 102000
	// ErrHouseForbidden - 403: 无权访问其他小区.
	ErrHouseForbidden
)

// 公告相关错误码 (103xxx).
const (
	// ErrAnnouncementNotFound - 404: 公告不存在.
	ErrAnnouncementNotFound int = iota + 103000
	// ErrAnnouncementForbidden - 403: 无权操作该公告.
	ErrAnnouncementForbidden
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
