package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 创建成功.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
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
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409: 邮箱已被注册.
	ErrUserAlreadyExist
	// ErrInvalidCredentials - 401: 邮箱或密码错误.
	ErrInvalidCredentials
)

// 工单相关错误码 (102xxx).
const (
	// ErrRequestNotFound - 404: 维修工单不存在.
	ErrRequestNotFound int = iota + 102000
	// ErrRequestNotAssigned - 403: 工单未分配给当前技术员.
	ErrRequestNotAssigned
	// ErrInvalidTechnician - 400: 无效的技术员ID.
	ErrInvalidTechnician
	// ErrNotRequestOwner - 403: 只能查看自己的工单.
	ErrNotRequestOwner
)

// 上传相关错误码 (103xxx).
const (
	// ErrUploadTooLarge - 400: 上传文件过大.
	ErrUploadTooLarge int = iota + 103000
	// ErrUploadTooMany - 400: 上传文件数量超限.
	ErrUploadTooMany
	// ErrUploadFailed - 500: 上传文件保存失败.
	ErrUploadFailed
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
