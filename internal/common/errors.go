package common

import "errors"

// ValidationError is a user-input failure. Its text is the localized
// message shown to the caller as-is.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError creates a ValidationError with a localized message.
func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// 사용자 입력 검증 에러 (메시지가 그대로 응답에 노출된다)
var (
	// Contact form
	ErrContactRequiredFields = NewValidationError("이메일과 메시지는 필수 항목입니다.")
	ErrContactInvalidEmail   = NewValidationError("올바른 이메일 주소를 입력해주세요.")
	ErrContactMessageShort   = NewValidationError("메시지는 최소 10자 이상 입력해주세요.")
	ErrContactMessageLong    = NewValidationError("메시지는 최대 5000자까지 입력 가능합니다.")

	// Admin login
	ErrPasswordNotConfigured = NewValidationError("관리자 비밀번호가 설정되지 않았습니다.")
	ErrInvalidPassword       = NewValidationError("비밀번호가 올바르지 않습니다.")
)

// ErrAdNotFound is returned by the affiliate-ad toggle when the
// document does not exist.
var ErrAdNotFound = NewValidationError("존재하지 않는 광고입니다.")
