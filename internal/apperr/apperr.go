// Package apperr carries the business error taxonomy shared by the service
// layer and the HTTP boundary. Services return these; handlers translate
// them to status codes and nothing else interprets them.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindNotFound means a referenced entity id does not exist.
	KindNotFound Kind = iota + 1
	// KindDuplicate means a unique-field collision (name, sku, username).
	KindDuplicate
	// KindInvalid means a malformed request or an operation blocked by
	// existing dependents.
	KindInvalid
	// KindUnauthorized means a credential mismatch.
	KindUnauthorized
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Duplicate(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf(format, args...)}
}

func Invalid(format string, args ...any) *Error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsDuplicate(err error) bool    { return KindOf(err) == KindDuplicate }
func IsInvalid(err error) bool      { return KindOf(err) == KindInvalid }
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }
