package scheduling

import "fmt"

// Error codes surfaced by the availability core.
const (
	CodeValidation        = "validationError"
	CodeConfiguration     = "configurationError"
	CodeRemoteUnavailable = "remoteUnavailable"
	CodeUnauthorized      = "unauthorized"
	CodeNotFound          = "notFound"
)

type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(format string, args ...interface{}) error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewConfigurationError(msg string, err error) error {
	return &Error{Code: CodeConfiguration, Message: msg, Err: err}
}

func NewRemoteError(code, msg string, err error) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// ErrorCode extracts the scheduling error code, or "" for foreign errors.
func ErrorCode(err error) string {
	if se, ok := err.(*Error); ok {
		return se.Code
	}
	return ""
}

func IsValidation(err error) bool {
	return ErrorCode(err) == CodeValidation
}
