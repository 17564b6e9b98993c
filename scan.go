// Package scan implements a high-level API for extracting strongly-typed
// values from character input: the reading inverse of a value-formatting
// library. Given a range over narrow (byte) or wide (rune) character units
// and, optionally, a format string, the package parses booleans, integers,
// floating-point values, strings, views and sequences while advancing a
// cursor over the input and reporting structured, non-panicking errors.
//
// Lower-level APIs are available in the inner packages: source defines the
// input ranges, format the compiled per-argument specifications, locale the
// injected locale tokens, and scanerr the error model. The implementation of
// this package is thin orchestration over the per-type readers and serves as
// a reference for how to consume the lower-level packages.
//
// Every operation follows the same looping contract: on success it returns
// the remaining range, which the caller threads into the next call; the
// natural terminator of a scanning loop is the first failed call. On failure
// the input range is returned rewound to the position before the failed
// attempt, and the destination is left unmodified.
//
// Scanning holds no state between calls and reads no globals; two scans over
// disjoint ranges may run concurrently without synchronization.
package scan

import (
	"github.com/scankit/scan/internal/reader"
	"github.com/scankit/scan/locale"
	"github.com/scankit/scan/source"
)

// Default reads one value of dst's type from the front of r using the type's
// classic, locale-independent representations, storing it through dst and
// returning the remaining range. Leading whitespace is skipped for every
// destination type except single characters (*byte, *rune).
//
// Supported destinations: *bool, *int, *int8, *int16, *int64, *uint,
// *uint16, *uint32, *uint64, *uintptr, *float32, *float64, *string,
// *source.Range[C], *byte and *rune. A *byte or *rune destination is a
// character read, not an integer read: *rune decodes one UTF-8 sequence on
// narrow input and *int32, being the same type, behaves identically.
//
// On failure dst is untouched and the returned range is r itself.
func Default[C source.Char](r source.Range[C], dst any) (source.Range[C], error) {
	rr := r
	if skipsLeadingSpace(dst) {
		rr = reader.SkipSpace(rr)
	}
	rest, err := readValue(rr, dst, nil, locale.Classic())
	if err != nil {
		return r, err
	}
	return rest, nil
}

// Value is the value-returning form of Default: it reads one T from the
// front of r and returns it with the remaining range.
func Value[T any, C source.Char](r source.Range[C]) (T, source.Range[C], error) {
	var v T
	rest, err := Default(r, &v)
	if err != nil {
		var zero T
		return zero, r, err
	}
	return v, rest, nil
}

// skipsLeadingSpace reports whether reads into dst skip leading whitespace.
// Character destinations read the input verbatim.
func skipsLeadingSpace(dst any) bool {
	switch dst.(type) {
	case *byte, *rune:
		return false
	default:
		return true
	}
}
