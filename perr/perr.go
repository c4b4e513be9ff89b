/*
File    : pakhi-bhasha/perr/perr.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package perr defines Pakhi's error taxonomy (spec.md §7). Every stage of
// the pipeline — lexer, parser, module resolver, evaluator, builtins —
// returns *Error values instead of panicking; there is no try/catch in the
// language, so an *Error always means "abort the module and unwind to the
// interpreter entry point".
package perr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind tags the taxonomy a given *Error belongs to.
type Kind string

const (
	LexError            Kind = "LexError"
	ParseError          Kind = "ParseError"
	ResolveError        Kind = "ResolveError"
	NameError            Kind = "NameError"
	TypeError            Kind = "TypeError"
	ArityError           Kind = "ArityError"
	IndexError           Kind = "IndexError"
	KeyError             Kind = "KeyError"
	ArithmeticError      Kind = "ArithmeticError"
	IOError              Kind = "IOError"
	UserError            Kind = "UserError"
	BreakOutsideLoop     Kind = "BreakOutsideLoop"
	ReturnOutsideFunction Kind = "ReturnOutsideFunction"
)

// Error is Pakhi's single error type. Line/Column are 1-indexed source
// positions and are zero when a position isn't known (e.g. an IOError
// raised deep inside a builtin with no AST node in hand). Cause, when
// present, is the underlying Go error (typically a wrapped os.PathError)
// and is reachable via Unwrap (errors.Unwrap/errors.Is/errors.As) for
// %+v-style debugging,
// while Error() itself stays a clean one-line message for the Pakhi
// programmer.
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes Cause so errors.Is/errors.As and pkg/errors both work.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds a position-less *Error, used by builtins and other call sites
// that have no line/column to attach.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At builds a position-carrying *Error, used throughout the lexer, parser
// and evaluator where a source location is always in hand.
func At(kind Kind, line, column int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// Wrap attaches cause as the root cause of a new *Error, using pkg/errors so
// the chain survives for %+v debugging. This is the shape every IOError
// raised by a host.Host failure goes through.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   errors.WithStack(cause),
	}
}

// WrapAt is Wrap with a source position attached.
func WrapAt(kind Kind, line, column int, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  column,
		Cause:   errors.WithStack(cause),
	}
}
