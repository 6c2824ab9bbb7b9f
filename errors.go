/*
 * errors.go, part of molcore.
 *
 *
 * Copyright 2025 The molcore Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chem

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies the failures of a load. An ErrorKind is itself an error,
// so errors.Is(err, chem.InvalidFormat) reports whether err is an
// invalid-format failure.
type ErrorKind int

const (
	// FileReadError means the text could not be obtained from its source.
	FileReadError ErrorKind = iota + 1
	// InvalidFormat means the text violates the grammar of its format.
	InvalidFormat
	// UnsupportedFormat means no registered format can handle the input.
	UnsupportedFormat
)

func (k ErrorKind) String() string {
	switch k {
	case FileReadError:
		return "File read error"
	case InvalidFormat:
		return "Invalid format"
	case UnsupportedFormat:
		return "Unsupported format"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Error() string { return k.String() }

// Error is the structured error returned by every load operation in molcore.
// The message is meant to be shown as-is to a user.
type Error struct {
	kind     ErrorKind
	msg      string
	filename string
	format   string
	line     int    //1-based, 0 if the error is not tied to a line
	content  string //the raw offending line
	expected int
	found    int
	counts   bool //true if expected and found are meaningful
	cause    error
	deco     []string
}

// Error returns a message with the kind of the error and all the diagnostic
// context available, i.e. "Invalid format: line 3: ...".
func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString(err.kind.String())
	b.WriteString(": ")
	if err.filename != "" {
		b.WriteString(err.filename)
		b.WriteString(": ")
	}
	if err.line > 0 {
		fmt.Fprintf(&b, "line %d: ", err.line)
	}
	b.WriteString(err.msg)
	if err.line > 0 && err.content != "" {
		fmt.Fprintf(&b, ": %q", err.content)
	}
	if err.cause != nil {
		b.WriteString(": ")
		b.WriteString(err.cause.Error())
	}
	return b.String()
}

// Kind returns the kind of the error.
func (err *Error) Kind() ErrorKind { return err.kind }

// Line returns the 1-based line number where the error was found, or 0.
func (err *Error) Line() int { return err.line }

// Content returns the raw line that caused the error, if any.
func (err *Error) Content() string { return err.content }

// FileName returns the name of the file that caused the error, if known.
func (err *Error) FileName() string { return err.filename }

// Format returns the name of the format being parsed, if known.
func (err *Error) Format() string { return err.format }

// Counts returns the expected and found number of elements for count mismatches.
// ok is false if the error is not a count mismatch.
func (err *Error) Counts() (expected, found int, ok bool) {
	return err.expected, err.found, err.counts
}

// Decorate adds dec to the decoration slice of the error, i.e. the list of
// functions the error went through, and returns the slice. An empty
// string just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Unwrap returns the underlying cause, if any.
func (err *Error) Unwrap() error { return err.cause }

// Is reports whether target is the ErrorKind of err.
func (err *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == err.kind
}

// NewError returns an Error of the given kind with a formatted message.
func NewError(kind ErrorKind, format string, a ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, a...)}
}

// WrapError returns an Error of the given kind wrapping cause.
func WrapError(kind ErrorKind, cause error, format string, a ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, a...), cause: cause}
}

func lineError(format string, line int, content string, msgformat string, a ...any) *Error {
	return &Error{kind: InvalidFormat, format: format, line: line, content: strings.TrimRight(content, "\r\n"), msg: fmt.Sprintf(msgformat, a...)}
}

func countError(format, what string, expected, found int) *Error {
	return &Error{kind: InvalidFormat, format: format, expected: expected, found: found, counts: true,
		msg: fmt.Sprintf("%s count mismatch: expected %d, found %d", what, expected, found)}
}

// errDecorate decorates err with the caller's name if it is a molcore error,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e DecoratedError
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

// WithFileName sets the name of the file that caused the error, unless
// it is already set, and returns the error.
func (err *Error) WithFileName(name string) *Error {
	if err.filename == "" {
		err.filename = name
	}
	return err
}

// errWithFile sets the file name of err if it is an *Error without one.
func errWithFile(err error, name string) error {
	var e *Error
	if errors.As(err, &e) {
		e.WithFileName(name)
	}
	return err
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrAtomOutOfRange = PanicMsg("molcore: requested Atom out of range")
	ErrBondOutOfRange = PanicMsg("molcore: requested Bond out of range")
)
