package c2padocs

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EBLOCKED     = "blocked"      // requested host is not in the allowlist
	EINTERNAL    = "internal"     // internal error
	EINVALID     = "invalid"      // validation failed
	ENOTFOUND    = "not_found"    // entity does not exist
	ERATELIMITED = "rate_limited" // upstream rate limit persists after retries
	EUNAVAILABLE = "unavailable"  // transient upstream failure persists after retries
)

// Error represents an application error. Code is machine-readable and lets
// callers distinguish retryable conditions from terminal ones; Message is
// human-readable.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("c2padocs error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Retryable reports whether the error represents a condition the caller may
// reasonably retry later.
func Retryable(err error) bool {
	switch ErrorCode(err) {
	case EUNAVAILABLE, ERATELIMITED:
		return true
	}
	return false
}
