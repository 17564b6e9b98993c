// Package scanerr exposes the error types used throughout the scanning
// engine and a method to pretty-print them against their input.
//
// Every failed scanning operation reports a structured Error; no operation
// panics or throws across the public boundary. Errors carry a Kind so callers
// can branch on the failure class, and the offset into the input at which the
// failing read began.
package scanerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind denotes the class of a scanning failure. The zero value of Kind is
// invalid.
type Kind int

// Supported failure classes.
const (
	// InvalidScannedValue indicates the input's lexical content matched none
	// of the representations enabled for the requested type.
	InvalidScannedValue Kind = iota + 1

	// EndOfRange indicates the input was exhausted before a required unit
	// could be read.
	EndOfRange

	// InvalidFormatString indicates a structurally malformed format string or
	// a specification incompatible with its destination type. It is detected
	// while compiling the format, never while reading values.
	InvalidFormatString

	// ValueOutOfRange indicates a lexically valid value that exceeds the
	// destination type's representable range.
	ValueOutOfRange
)

var kindStrings = [...]string{
	InvalidScannedValue: "invalid scanned value",
	EndOfRange:          "end of range",
	InvalidFormatString: "invalid format string",
	ValueOutOfRange:     "value out of range",
}

// String returns the name of k.
func (k Kind) String() string {
	if int(k) < len(kindStrings) && kindStrings[k] != "" {
		return kindStrings[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is an individual scanning failure. It is immutable once constructed
// and is propagated unchanged up the call chain.
type Error struct {
	// Kind holds the failure class of this Error.
	Kind Kind

	// Pos is the offset, in character units from the start of the top-level
	// input, at which the failing read began. A negative Pos means the
	// failure is not tied to a position (for example, a malformed format
	// string).
	Pos int

	Msg string
}

// New returns an Error of the given kind at pos.
func New(kind Kind, pos int, msg string) Error {
	return Error{Kind: kind, Pos: pos, Msg: msg}
}

// Newf is like New with fmt.Sprintf formatting of the message.
func Newf(kind Kind, pos int, format string, args ...any) Error {
	return Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Error implements error.
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// As allows e to be interpreted as a list of Diagnostics.
func (e Error) As(v any) bool {
	switch v := v.(type) {
	case *Diagnostics:
		if v == nil {
			return false
		}
		*v = Diagnostics{e}
		return true
	}
	return false
}

// KindOf returns the Kind carried by err, or 0 if err holds no scanning
// Error.
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Diagnostics is a collection of scanning errors, used where a single
// compilation step can surface several independent problems (for example,
// validating every replacement field of a format string).
type Diagnostics []Error

// Add adds an individual Error to the diagnostics list.
func (ds *Diagnostics) Add(e Error) {
	*ds = append(*ds, e)
}

// Merge merges other into the diagnostics list.
func (ds *Diagnostics) Merge(other Diagnostics) {
	*ds = append(*ds, other...)
}

// Error implements error.
func (ds Diagnostics) Error() string {
	switch len(ds) {
	case 0:
		return "no errors"
	case 1:
		return ds[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more diagnostics)", ds[0], len(ds)-1)
	}
}

// As allows a non-empty diagnostics list to be interpreted as its first
// Error, so errors.As and KindOf see through compilation failures.
func (ds Diagnostics) As(v any) bool {
	if len(ds) == 0 {
		return false
	}
	switch v := v.(type) {
	case *Error:
		*v = ds[0]
		return true
	}
	return false
}

// ErrorOrNil returns an error interface if the list of diagnostics is
// non-empty, nil otherwise.
func (ds Diagnostics) ErrorOrNil() error {
	if len(ds) == 0 {
		return nil
	}
	return ds
}

// AllMessages returns a string containing all diagnostic messages, providing
// more detail than the default Error() method which truncates.
func (ds Diagnostics) AllMessages() string {
	if len(ds) == 0 {
		return "no errors"
	}

	var messages []string
	for _, d := range ds {
		messages = append(messages, d.Error())
	}
	return strings.Join(messages, "; ")
}
