package docatlas

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to HTTP-ish outcomes without
// being tied to a transport. Any non-application error is reported as
// EINTERNAL.
const (
	EINVALID     = "invalid"     // caller provided bad input
	ENOTFOUND    = "not_found"   // entity does not exist (e.g. cache miss)
	EHTTPSTATUS  = "http_status" // remote returned a non-2xx status
	EUNAVAILABLE = "unavailable" // network-level failure (timeout, refused, DNS)
	EUNSUPPORTED = "unsupported" // content cannot be processed (binary, empty)
	EINTERNAL    = "internal"    // unexpected internal error
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docatlas error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code.
// Returns empty string for nil and EINTERNAL for non-application errors.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message.
// Non-application errors report a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
