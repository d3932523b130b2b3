package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
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
	// ErrTokenInvalid - 400: 令牌无效.
	ErrTokenInvalid
	// ErrUnauthorized - 400: 角色权限不足.
	ErrUnauthorized
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrEmailAlreadyExist - 400: 邮箱已被注册.
	ErrEmailAlreadyExist
	// ErrInvalidCredentials - 400: 邮箱或密码错误.
	ErrInvalidCredentials
)

// 单元/租户相关错误码 (102xxx).
const (
	// ErrUnitNotFound - 404: 单元不存在.
	ErrUnitNotFound int = iota + 102000
	// ErrTenantNotFound - 404: 租户记录不存在.
	ErrTenantNotFound
)

// 账单相关错误码 (103xxx).
const (
	// ErrBillNotFound - 404: 账单不存在.
	ErrBillNotFound int = iota + 103000
	// ErrPaymentNotFound - 404: 缴费记录不存在.
	ErrPaymentNotFound
)

// 预订相关错误码 (104xxx).
const (
	// ErrReservationNotFound - 404: 预订不存在.
	ErrReservationNotFound int = iota + 104000
	// ErrReservationFinalized - 400: 预订已是终态，不能再变更.
	ErrReservationFinalized
)

// 目录相关错误码 (105xxx).
const (
	// ErrParticularNotFound - 404: 费用项目不存在.
	ErrParticularNotFound int = iota + 105000
	// ErrOccupationNotFound - 404: 职业不存在.
	ErrOccupationNotFound
)

// 上传相关错误码 (106xxx).
const (
	// ErrFileRequired - 400: 缺少上传文件.
	ErrFileRequired int = iota + 106000
	// ErrFileTypeNotAllowed - 400: 文件类型不允许.
	ErrFileTypeNotAllowed
	// ErrFileNotFound - 404: 文件不存在.
	ErrFileNotFound
)

// 数据库相关错误码 (109xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 109000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
