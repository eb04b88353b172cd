package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a run failed. Every kind maps to one process exit
// code so calling tools can tell failure categories apart.
type ErrorKind int

const (
	ErrInternal ErrorKind = iota
	ErrInvocation
	ErrInput
	ErrOutput
	ErrHeader
	ErrDuplicateHeader
	ErrUnknownOpcode
	ErrArity
	ErrLexical
	ErrUnknownConstantType
)

// Exit codes shared with the rest of the toolchain.
const (
	ExitOK         = 0
	ExitInvocation = 10
	ExitInput      = 11
	ExitOutput     = 12
	ExitHeader     = 21
	ExitOpcode     = 22
	ExitSyntax     = 23
	ExitInternal   = 99
)

// ExitCode returns the process exit code of the kind. A duplicate header is
// reported as an opcode failure.
func (k ErrorKind) ExitCode() int {
	switch k {
	case ErrInvocation:
		return ExitInvocation
	case ErrInput:
		return ExitInput
	case ErrOutput:
		return ExitOutput
	case ErrHeader:
		return ExitHeader
	case ErrDuplicateHeader, ErrUnknownOpcode:
		return ExitOpcode
	case ErrArity, ErrLexical, ErrUnknownConstantType:
		return ExitSyntax
	default:
		return ExitInternal
	}
}

func (k ErrorKind) String() string {
	switch k {
	case ErrInvocation:
		return "invocation error"
	case ErrInput:
		return "input error"
	case ErrOutput:
		return "output error"
	case ErrHeader:
		return "header error"
	case ErrDuplicateHeader:
		return "duplicate header"
	case ErrUnknownOpcode:
		return "unknown opcode"
	case ErrArity:
		return "wrong operand count"
	case ErrLexical:
		return "lexical error"
	case ErrUnknownConstantType:
		return "unknown constant type"
	default:
		return "internal error"
	}
}

// Error is a classified failure. Line is the 1-based source line, or 0 when
// the failure is not tied to a line.
type Error struct {
	Kind  ErrorKind
	Line  int
	Token string
	Msg   string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// NewError creates an error that is not tied to a source line.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func lexicalError(token, format string, args ...any) *Error {
	return &Error{
		Kind:  ErrLexical,
		Token: token,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// ExitCode maps the outcome of a run to a process exit code. Wrapped
// classified errors keep their code; anything unclassified is internal.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind.ExitCode()
	}

	return ExitInternal
}

// KindOf returns the kind of a classified error, or ErrInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrInternal
}
