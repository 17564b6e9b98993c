package scan

import (
	"github.com/scankit/scan/internal/reader"
	"github.com/scankit/scan/source"
)

// List repeatedly reads values of T from r, appending each to list, until a
// read fails. The first failure is the list's natural terminator, not an
// error: List reports nothing and returns the range positioned where the
// failed attempt began, whitespace before it unconsumed.
//
// Elements are separated by whitespace; each element reads with its type's
// classic representations. The append into list is the only allocation the
// engine performs, and the caller owns it.
func List[T any, C source.Char](r source.Range[C], list *[]T) source.Range[C] {
	cur := r
	for {
		var v T
		rest, err := Default(cur, &v)
		if err != nil {
			return cur
		}
		*list = append(*list, v)
		cur = rest
	}
}

// ListSep is List with an explicit single-unit separator between elements,
// such as ','. Whitespace around separators is permitted. A trailing
// separator with no element after it terminates the list with the separator
// unconsumed.
func ListSep[T any, C source.Char](r source.Range[C], list *[]T, sep C) source.Range[C] {
	var v T
	cur, err := Default(r, &v)
	if err != nil {
		return r
	}
	*list = append(*list, v)

	for {
		t := reader.SkipSpace(cur)
		if t.Empty() || t.First() != sep {
			return cur
		}
		var v T
		rest, err := Default(t.Advance(1), &v)
		if err != nil {
			return cur
		}
		*list = append(*list, v)
		cur = rest
	}
}
