// Package msoerr holds the tagged error kinds returned by the mso compiler's
// public entry points. Each kind is a sentinel compatible with errors.Is;
// callers that care about the distinction switch on the sentinel rather than
// on a string message.
package msoerr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax means a formula did not match the grammar.
	ErrSyntax = errors.New("formula does not match the grammar")

	// ErrUnboundVariable means an atom referenced a variable that no
	// enclosing quantifier introduced.
	ErrUnboundVariable = errors.New("variable is not bound by any quantifier")

	// ErrArityMismatch means a predicate was applied to the wrong sort
	// (first- vs second-order), or an encoded tree's child count disagreed
	// with its label's declared arity.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrAlphabetMismatch means an encoded input used a symbol outside the
	// base alphabet, or its track width disagreed with the automaton's.
	ErrAlphabetMismatch = errors.New("alphabet mismatch")

	// ErrResourceExceeded means compiling the formula would require more
	// letters than the implementation-chosen ceiling allows.
	ErrResourceExceeded = errors.New("resource ceiling exceeded")
)

// Error is a typed error carrying one of the sentinels above plus a
// human-readable detail message. It is compatible with errors.Is against its
// sentinel and with errors.As against *Error.
type Error struct {
	kind   error
	detail string
}

// New creates an Error of the given kind with a formatted detail message.
func New(kind error, format string, a ...interface{}) *Error {
	return &Error{kind: kind, detail: fmt.Sprintf(format, a...)}
}

func (e *Error) Error() string {
	if e.detail == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.detail
}

// Unwrap lets errors.Is/errors.As see through to the sentinel kind.
func (e *Error) Unwrap() error {
	return e.kind
}

// Is reports whether target is the same sentinel kind as e, so that
// errors.Is(err, msoerr.ErrSyntax) works without a type assertion.
func (e *Error) Is(target error) bool {
	return e.kind == target
}
