// Package reader implements the per-type reading framework: the matching
// primitives shared by every reader, and one reader per scannable type.
//
// Readers are pure: every attempt computes its success range as a new view of
// the input, so failing an attempt only requires discarding that view. No
// reader mutates caller state on failure.
package reader

import (
	"unicode"

	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

// MatchCodeUnit consumes exactly one unit equal to lit.
func MatchCodeUnit[C source.Char](r source.Range[C], lit C) (source.Range[C], error) {
	if r.Empty() {
		return r, scanerr.New(scanerr.EndOfRange, r.Offset(), "input exhausted")
	}
	if r.First() != lit {
		return r, scanerr.Newf(scanerr.InvalidScannedValue, r.Offset(),
			"expected %q", string(rune(lit)))
	}
	return r.Advance(1), nil
}

// MatchUnits consumes the range's prefix if it equals lit unit for unit.
func MatchUnits[C source.Char](r source.Range[C], lit []C) (source.Range[C], error) {
	if r.Len() < len(lit) {
		if r.Empty() {
			return r, scanerr.New(scanerr.EndOfRange, r.Offset(), "input exhausted")
		}
		return r, scanerr.Newf(scanerr.InvalidScannedValue, r.Offset(),
			"expected %q", source.String(lit))
	}
	for i, c := range lit {
		if r.At(i) != c {
			return r, scanerr.Newf(scanerr.InvalidScannedValue, r.Offset(),
				"expected %q", source.String(lit))
		}
	}
	return r.Advance(len(lit)), nil
}

// MatchLiteral is MatchUnits over the units of a string literal. This is the
// locale-independent, case-sensitive "classic" string match.
func MatchLiteral[C source.Char](r source.Range[C], lit string) (source.Range[C], error) {
	return MatchUnits(r, source.Units[C](lit))
}

// MatchOneOf tries each candidate in order of increasing length and returns
// the index of the first one that matches, with the remainder after it.
//
// Shortest first is the disambiguation rule for overlapping candidates: when
// one candidate is a strict prefix of another, trying the longer first could
// hide the only possible match, while trying the shorter first finds the
// match either ordering could have produced. Ties between equal-length
// candidates resolve in argument order.
func MatchOneOf[C source.Char](r source.Range[C], cands ...[]C) (int, source.Range[C], error) {
	order := make([]int, len(cands))
	for i := range order {
		order[i] = i
	}
	// Insertion sort by length; candidate lists are tiny.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && len(cands[order[j]]) < len(cands[order[j-1]]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	for _, idx := range order {
		if rest, err := MatchUnits(r, cands[idx]); err == nil {
			return idx, rest, nil
		}
	}
	return 0, r, scanerr.New(scanerr.InvalidScannedValue, r.Offset(),
		"no candidate matched")
}

// matchLiteralFold consumes the range's prefix if it equals lit ignoring
// ASCII case. lit must already be lower-case.
func matchLiteralFold[C source.Char](r source.Range[C], lit string) (source.Range[C], error) {
	if r.Len() < len(lit) {
		if r.Empty() {
			return r, scanerr.New(scanerr.EndOfRange, r.Offset(), "input exhausted")
		}
		return r, scanerr.Newf(scanerr.InvalidScannedValue, r.Offset(), "expected %q", lit)
	}
	for i := 0; i < len(lit); i++ {
		c := rune(r.At(i))
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != rune(lit[i]) {
			return r, scanerr.Newf(scanerr.InvalidScannedValue, r.Offset(), "expected %q", lit)
		}
	}
	return r.Advance(len(lit)), nil
}

// IsSpace reports whether the unit is whitespace.
func IsSpace[C source.Char](c C) bool {
	return unicode.IsSpace(rune(c))
}

// SkipSpace returns the range with any leading whitespace consumed. It is the
// separator policy used by the aggregate operations; readers themselves never
// skip anything.
func SkipSpace[C source.Char](r source.Range[C]) source.Range[C] {
	n := 0
	for n < r.Len() && IsSpace(r.At(n)) {
		n++
	}
	return r.Advance(n)
}
