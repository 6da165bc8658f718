package dashboard

import (
	"errors"
	"fmt"
)

// Error codes understood by the HTTP layer.
const (
	CodeNotFound  = "not_found"
	CodeForbidden = "forbidden"
	CodeConflict  = "conflict"
	CodeInvalid   = "invalid"
)

// MsgOwnListing is shown verbatim by clients.
const MsgOwnListing = "You cannot book your own service or card"

// Error is a domain error carrying a user-facing message.
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

func newError(code, msg string, cause error) error {
	return &Error{Code: code, Message: msg, Err: cause}
}

func notFound(msg string, cause error) error { return newError(CodeNotFound, msg, cause) }
func forbidden(msg string) error { return newError(CodeForbidden, msg, nil) }
func conflict(msg string, cause error) error { return newError(CodeConflict, msg, cause) }
func invalid(msg string) error { return newError(CodeInvalid, msg, nil) }

// AsError extracts a domain error from err.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsCode reports whether err is a domain error with the given code.
func IsCode(err error, code string) bool {
	de, ok := AsError(err)
	return ok && de.Code == code
}
