package scan

import (
	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

// Getline reads units up to and including the first newline, assigning
// everything before it to line. When the range holds no newline, the whole
// remainder becomes the line and the returned range is empty: a ragged last
// line is a success, not a failure. Only an already-empty range fails.
func Getline[C source.Char](r source.Range[C], line *string) (source.Range[C], error) {
	return GetlineDelim(r, line, C('\n'))
}

// GetlineDelim is Getline with an explicit delimiter. The delimiter is
// consumed but never part of the line; a delimiter at the front of the range
// yields an empty line.
func GetlineDelim[C source.Char](r source.Range[C], line *string, delim C) (source.Range[C], error) {
	if r.Empty() {
		return r, scanerr.New(scanerr.EndOfRange, r.Offset(), "input exhausted")
	}
	i := r.IndexOf(delim)
	if i < 0 {
		*line = r.String()
		return r.Advance(r.Len()), nil
	}
	*line = r.Take(i).String()
	return r.Advance(i + 1), nil
}

// IgnoreUntil consumes and discards units until, and including, the first
// occurrence of delim. When delim does not occur the entire range is
// consumed. IgnoreUntil produces no value and cannot fail; ignoring on an
// empty range is a no-op.
func IgnoreUntil[C source.Char](r source.Range[C], delim C) source.Range[C] {
	i := r.IndexOf(delim)
	if i < 0 {
		return r.Advance(r.Len())
	}
	return r.Advance(i + 1)
}
