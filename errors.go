// File: iniconf/errors.go
package iniconf

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Kind identifies the class of a ParseError.
type Kind int

const (
	// MissingClosingBracket marks a group header with no terminating ']'.
	MissingClosingBracket Kind = iota + 1
	// MissingVariableName marks an assignment whose variable is empty.
	MissingVariableName
	// InvalidLine marks a line that is neither blank, comment, group
	// header, nor assignment.
	InvalidLine
)

func (k Kind) String() string {
	switch k {
	case MissingClosingBracket:
		return "missing closing bracket for group name"
	case MissingVariableName:
		return "assignment requires a variable name"
	case InvalidLine:
		return "expected a variable assignment"
	default:
		return fmt.Sprintf("unknown parse error kind %d", int(k))
	}
}

// ParseError describes one malformed line.
type ParseError struct {
	Kind Kind
	File string // source identifier, usually a file path
	Line int    // 1-based; blank and comment lines count
	Text string // the offending line, trimmed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d in %s: %q", e.Kind, e.Line, e.File, e.Text)
}

// IOError wraps a file open, read, or write failure with the path involved.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%v in file %s", e.Err, e.Path)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseErrors is every problem found in one source, in encounter order.
// Entries are *ParseError and *IOError values. It is returned only
// non-empty: a parse either yields a Store or a complete ParseErrors,
// never both.
type ParseErrors struct {
	List []error
}

func (e *ParseErrors) Error() string {
	msgs := make([]string, len(e.List))
	for i, err := range e.List {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual entries to errors.Is and errors.As.
func (e *ParseErrors) Unwrap() []error { return e.List }

// IsNotExist reports whether err came from opening a file that does not
// exist. Used to tell a missing (tolerable) config file from a broken one.
func IsNotExist(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr) && errors.Is(ioErr.Err, fs.ErrNotExist)
}
