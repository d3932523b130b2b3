package code

// 错误码消息映射（面向客户端的文案保持与旧接口一致）
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "Success",
	ErrUnknown:         "Internal server error",
	ErrBind:            "Invalid request parameters",
	ErrValidation:      "Invalid request parameters",
	ErrTokenInvalid:    "Invalid token",
	ErrUnauthorized:    "Unauthorized Access",
	ErrTooManyRequests: "Too many requests, please try again later",

	// 用户相关错误码
	ErrUserNotFound:       "The user with the given ID was not found.",
	ErrEmailAlreadyExist:  "Email is already exists!",
	ErrInvalidCredentials: "Invalid email or password!",

	// 单元/租户相关错误码
	ErrUnitNotFound:   "The unit with the given ID was not found.",
	ErrTenantNotFound: "The tenant with the given ID was not found.",

	// 账单相关错误码
	ErrBillNotFound:    "The bill with the given ID was not found.",
	ErrPaymentNotFound: "The payment with the given ID was not found.",

	// 预订相关错误码
	ErrReservationNotFound:  "The reservation with the given ID was not found.",
	ErrReservationFinalized: "The reservation is already finalized.",

	// 目录相关错误码
	ErrParticularNotFound: "The particular with the given ID was not found.",
	ErrOccupationNotFound: "The occupation with the given ID was not found.",

	// 上传相关错误码
	ErrFileRequired:       "File is required",
	ErrFileTypeNotAllowed: "File type is not allowed",
	ErrFileNotFound:       "The file with the given name was not found.",

	// 数据库相关错误码
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// 错误码到HTTP状态码映射
var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusBadRequest,
	ErrUnauthorized:    StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrUserNotFound:       StatusNotFound,
	ErrEmailAlreadyExist:  StatusBadRequest,
	ErrInvalidCredentials: StatusBadRequest,

	ErrUnitNotFound:   StatusNotFound,
	ErrTenantNotFound: StatusNotFound,

	ErrBillNotFound:    StatusNotFound,
	ErrPaymentNotFound: StatusNotFound,

	ErrReservationNotFound:  StatusNotFound,
	ErrReservationFinalized: StatusBadRequest,

	ErrParticularNotFound: StatusNotFound,
	ErrOccupationNotFound: StatusNotFound,

	ErrFileRequired:       StatusBadRequest,
	ErrFileTypeNotAllowed: StatusBadRequest,
	ErrFileNotFound:       StatusNotFound,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
