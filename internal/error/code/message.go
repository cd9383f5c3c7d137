package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "未知错误",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrTokenInvalid:     "无效的认证令牌",
	ErrPermissionDenied: "权限不足",
	ErrTooManyRequests:  "请求频率过高",

	// 用户相关错误码
	ErrUserNotFound:       "用户不存在",
	ErrUserAlreadyExist:   "该邮箱已被注册",
	ErrInvalidCredentials: "邮箱或密码错误",

	// 工单相关错误码
	ErrRequestNotFound:    "维修工单不存在",
	ErrRequestNotAssigned: "该工单未分配给当前技术员",
	ErrInvalidTechnician:  "无效的技术员ID",
	ErrNotRequestOwner:    "只能查看自己的工单",

	// 上传相关错误码
	ErrUploadTooLarge: "上传文件过大",
	ErrUploadTooMany:  "上传文件数量超限",
	ErrUploadFailed:   "上传文件保存失败",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:       StatusNotFound,
	ErrUserAlreadyExist:   StatusConflict,
	ErrInvalidCredentials: StatusUnauthorized,

	// 工单相关错误码
	ErrRequestNotFound:    StatusNotFound,
	ErrRequestNotAssigned: StatusForbidden,
	ErrInvalidTechnician:  StatusBadRequest,
	ErrNotRequestOwner:    StatusForbidden,

	// 上传相关错误码
	ErrUploadTooLarge: StatusBadRequest,
	ErrUploadTooMany:  StatusBadRequest,
	ErrUploadFailed:   StatusInternalServerError,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
