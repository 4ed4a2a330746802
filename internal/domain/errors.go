package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so handlers can map it to a transport
// status without inspecting message strings.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindConflict
	KindInternal
)

// Error is the closed error type used across services. Validation and
// conflict messages are user-facing and specific; authentication and
// authorization messages stay generic so responses do not reveal whether
// an account or session exists.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two domain errors by kind so errors.Is works against a
// prototype regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

func Authorization(msg string) *Error {
	return &Error{Kind: KindAuthorization, Message: msg}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// KindOf returns the kind of err, or KindUnknown for errors that did not
// originate from a service.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Canonical user-facing messages. The unknown-email and wrong-password
// sign-in failures share one message to resist account enumeration.
const (
	MsgIncorrectCredentials = "incorrect email or password, please try again"
	MsgUnauthenticated      = "unauthorized, please sign in and try again"
	MsgPasswordMismatch     = "your passwords do not match, please try again"
	MsgEmailInUse           = "unable to create account, email is already in use"
)
