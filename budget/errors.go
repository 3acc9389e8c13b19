package budget

import "errors"

// ValidationError 用户输入校验错误
// 在任何存储调用之前检测并返回，保证不产生部分写入。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidationError 判断 err 是否为输入校验错误
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
