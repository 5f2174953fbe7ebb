package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package and by the store
// unwraps to exactly one of these.
var (
	ErrBadQuery  = errors.New("bad query")
	ErrBadIndex  = errors.New("bad index")
	ErrSameIndex = errors.New("same index")
	ErrBadKey    = errors.New("bad key")
	ErrAdd       = errors.New("cannot add item")

	ErrNoFile = errors.New("no such file")
	ErrLoad   = errors.New("load failed")
	ErrParse  = errors.New("parse failed")
	ErrSave   = errors.New("save failed")
)

// Error carries a kind, a human message, and an optional cause.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg = e.Msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Errorf builds an *Error of the given kind.
func Errorf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around cause.
func Wrap(kind error, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}
