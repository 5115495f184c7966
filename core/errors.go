package core

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes directive failures.
type ErrorCode string

const (
	// ErrCodeExclusivity: a second directive of a single-slot category was
	// attempted on the same reply.
	ErrCodeExclusivity ErrorCode = "exclusivity"
	// ErrCodeUsage: a required precondition is missing (no resolved intent,
	// malformed constructor arguments).
	ErrCodeUsage ErrorCode = "usage"
	// ErrCodeContent: the renderer failed to produce content for a view, or
	// produced content of an unrecognized shape.
	ErrCodeContent ErrorCode = "content"
	// ErrCodeConfig: a descriptor references no registered implementation on
	// any platform, or a registration collided.
	ErrCodeConfig ErrorCode = "config"
)

// DirectiveError is the error type surfaced by directive application and
// registration. Code selects the failure category; Platform and Key locate
// the directive when known.
type DirectiveError struct {
	Platform string    `json:"platform,omitempty"`
	Key      string    `json:"key,omitempty"`
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Err      error     `json:"-"`
}

func (e *DirectiveError) Error() string {
	where := e.Key
	if e.Platform != "" {
		where = e.Platform + "/" + e.Key
	}
	if where != "" {
		return fmt.Sprintf("directive error [%s] in %s: %s", e.Code, where, e.Message)
	}
	return fmt.Sprintf("directive error [%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *DirectiveError) Unwrap() error { return e.Err }

// NewExclusivityError reports a violated single-slot rule.
func NewExclusivityError(platform, key, message string) *DirectiveError {
	return &DirectiveError{Platform: platform, Key: key, Code: ErrCodeExclusivity, Message: message}
}

// NewUsageError reports a missing precondition or malformed arguments.
func NewUsageError(platform, key, message string) *DirectiveError {
	return &DirectiveError{Platform: platform, Key: key, Code: ErrCodeUsage, Message: message}
}

// NewContentError reports a view-resolution or content-shape failure.
func NewContentError(platform, key, message string, cause error) *DirectiveError {
	return &DirectiveError{Platform: platform, Key: key, Code: ErrCodeContent, Message: message, Err: cause}
}

// NewConfigError reports a registration or resolution misconfiguration.
func NewConfigError(platform, key, message string) *DirectiveError {
	return &DirectiveError{Platform: platform, Key: key, Code: ErrCodeConfig, Message: message}
}

// CodeOf extracts the ErrorCode from err, or "" if err is not a
// DirectiveError.
func CodeOf(err error) ErrorCode {
	var de *DirectiveError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsCode reports whether err is a DirectiveError with the given code.
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }
