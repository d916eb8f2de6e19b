package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "ok",
	ErrUnknown:         "internal server error",
	ErrBind:            "invalid request body",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid or expired token",
	ErrTooManyRequests: "too many requests",

	// 认证相关错误码
	ErrBadCredentials:  "invalid email or password",
	ErrWrongHouseLogin: "account does not belong to this house",

	// 小区相关错误码
	ErrHouseNotFound:  "house not found",
	ErrHouseForbidden: "no access to another house",

	// 公告相关错误码
	ErrAnnouncementNotFound:  "announcement not found",
	ErrAnnouncementForbidden: "no permission to manage announcements of this house",

	// 数据库相关错误码
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 认证相关错误码
	ErrBadCredentials:  StatusBadRequest,
	ErrWrongHouseLogin: StatusBadRequest,

	// 小区相关错误码
	ErrHouseNotFound:  StatusNotFound,
	ErrHouseForbidden: StatusForbidden,

	// 公告相关错误码
	ErrAnnouncementNotFound:  StatusNotFound,
	ErrAnnouncementForbidden: StatusForbidden,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
