package errors

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxCauseLength caps how much of an underlying failure is shown to callers.
const MaxCauseLength = 200

// ErrorCode represents an error code
type ErrorCode string

const (
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeBadRequest       ErrorCode = "BAD_REQUEST"
	ErrCodeInternalError    ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeStorage          ErrorCode = "STORAGE_ERROR"
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Cause returns the wrapped error message truncated to MaxCauseLength runes.
func (e *AppError) Cause() string {
	if e.Err == nil {
		return ""
	}
	return Truncate(e.Err.Error(), MaxCauseLength)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with an AppError
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Storage wraps a document store failure.
func Storage(message string, err error) *AppError {
	return Wrap(ErrCodeStorage, message, err)
}

// Rule names the constraint a field violated.
type Rule string

const (
	RuleRequired  Rule = "required"
	RuleMinLength Rule = "min_length"
	RuleMaxLength Rule = "max_length"
	RuleMinimum   Rule = "minimum"
	RuleMaximum   Rule = "maximum"
	RuleFormat    Rule = "format"
	RuleType      Rule = "type"
)

// FieldError describes a single field constraint violation.
type FieldError struct {
	Field   string `json:"field"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError lists every field that failed validation, in field order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("%s: %s", ErrCodeValidation, strings.Join(msgs, "; "))
}

// Add records a violation.
func (e *ValidationError) Add(field string, rule Rule, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{
		Field:   field,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	})
}

// Has reports whether field has at least one recorded violation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// ErrOrNil returns e when it holds violations and nil otherwise.
func (e *ValidationError) ErrOrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewFieldError creates a ValidationError with a single violation.
func NewFieldError(field string, rule Rule, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule, Message: message}}}
}

// AsValidation extracts a ValidationError from err's chain.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidation checks if error is a ValidationError
func IsValidation(err error) bool {
	_, ok := AsValidation(err)
	return ok
}

// IsStorage checks if error is a storage failure
func IsStorage(err error) bool {
	return hasCode(err, ErrCodeStorage)
}

// IsBadRequest checks if error is BadRequest
func IsBadRequest(err error) bool {
	return hasCode(err, ErrCodeBadRequest)
}

func hasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
