package docstash

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to the failure modes of a
// cache-and-fetch tool: identifier resolution, remote retrieval, and local
// storage each have a distinct code so callers can react appropriately
// (retry, surface to the user, or run an explicit recovery action).
const (
	ECORRUPT       = "corrupt"          // manifest failed structural validation
	EINTERNAL      = "internal"         // internal error (bug)
	EINVALID       = "invalid"          // validation failed
	ENOTFOUND      = "not_found"        // identifier or entity does not exist
	EREMOTEMISSING = "remote_missing"   // resolved path absent upstream
	ESTORAGE       = "storage"          // local filesystem read/write failure
	ETHROTTLED     = "throttled"        // remote rate limit hit
	EUNAVAILABLE   = "unavailable"      // transient network failure
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Wrapped underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("docstash error: code=%s message=%s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("docstash error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
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
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapErrorf is like Errorf but records err as the underlying cause.
func WrapErrorf(err error, code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
