package handler

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// NotFound is a resolution failure: no stage located the executable.
	NotFound ErrorKind = iota
	// Forced means an option was forced on but its tool cannot be located.
	Forced
	// BadURI is a malformed target URI.
	BadURI
	// Helper is a non-zero exit of a helper process such as cygpath.
	// A helper that cannot be started is NotFound.
	Helper
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Forced:
		return "forced"
	case BadURI:
		return "bad uri"
	case Helper:
		return "helper"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

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

func newError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
