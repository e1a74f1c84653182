package calculator

import (
	"errors"
	"fmt"
)

// ErrorCode classifies why a calculator rejected its input.
type ErrorCode string

const (
	// ErrCodeDomain means a clinical precondition of the model is not met
	// (for example, non-fasting labs for HOMA-IR).
	ErrCodeDomain ErrorCode = "DOMAIN_ERROR"

	// ErrCodeRange means a numeric input is outside its valid domain.
	ErrCodeRange ErrorCode = "RANGE_ERROR"

	// ErrCodeUnknownMethod means an ASCVD method selector was not recognized.
	ErrCodeUnknownMethod ErrorCode = "UNKNOWN_METHOD"
)

// CalcError is returned by every calculator when input is rejected.
// Error returns Message unchanged; callers may show it to users verbatim.
type CalcError struct {
	Code    ErrorCode
	Field   string
	Message string
}

func (e *CalcError) Error() string {
	return e.Message
}

// IsDomainError reports whether err is, or wraps, a domain error.
func IsDomainError(err error) bool {
	return hasCode(err, ErrCodeDomain)
}

// IsRangeError reports whether err is, or wraps, a range error.
func IsRangeError(err error) bool {
	return hasCode(err, ErrCodeRange)
}

// IsUnknownMethodError reports whether err is, or wraps, an unknown method error.
func IsUnknownMethodError(err error) bool {
	return hasCode(err, ErrCodeUnknownMethod)
}

func hasCode(err error, code ErrorCode) bool {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

func newDomainError(field, msg string) *CalcError {
	return &CalcError{Code: ErrCodeDomain, Field: field, Message: msg}
}

func newRangeError(field, msg string) *CalcError {
	return &CalcError{Code: ErrCodeRange, Field: field, Message: msg}
}

func newUnknownMethodError(method string) *CalcError {
	return &CalcError{
		Code:    ErrCodeUnknownMethod,
		Field:   "method",
		Message: fmt.Sprintf("Unknown method: %s", method),
	}
}
