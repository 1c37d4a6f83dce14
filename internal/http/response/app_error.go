package response

import "errors"

// AppError 携带业务码的接口错误，Err 为可选的底层原因
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// LogFields 日志字段，原因为空时不输出 error
func (e *AppError) LogFields() []interface{} {
	fields := []interface{}{"code", e.Code, "message", e.Message}
	if e.Err != nil {
		fields = append(fields, "error", e.Err)
	}
	return fields
}

// WrapError 包装错误
func WrapError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// AsAppError 从错误链中取出 AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err == nil || !errors.As(err, &appErr) {
		return nil, false
	}
	return appErr, true
}
