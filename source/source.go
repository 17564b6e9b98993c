// Package source defines the read-only character ranges that every scanning
// operation consumes. A Range is a cursor over caller-owned storage: it never
// copies or reallocates the underlying units, and advancing it produces a new
// Range sharing the same backing slice.
//
// Ranges come in two widths. Narrow ranges view a sequence of bytes; wide
// ranges view a sequence of runes. The scanning engine is generic over the
// two, so the same reader logic serves both.
package source

import "unicode/utf8"

// Char is the set of character units a Range can be built over: bytes for
// narrow input, runes for wide input.
type Char interface {
	~byte | ~rune
}

// Range is an immutable view over a sequence of character units. The zero
// value is an empty range.
//
// A Range additionally remembers how many units were consumed since the
// top-level range was created, so errors can point at an absolute offset in
// the original input.
type Range[C Char] struct {
	data []C
	off  int
}

// FromString returns a narrow range over the bytes of s.
func FromString(s string) Range[byte] {
	return Range[byte]{data: []byte(s)}
}

// FromBytes returns a narrow range viewing b. The range aliases b; the caller
// must not mutate b while the range is in use.
func FromBytes(b []byte) Range[byte] {
	return Range[byte]{data: b}
}

// FromRunes returns a wide range viewing r.
func FromRunes(r []rune) Range[rune] {
	return Range[rune]{data: r}
}

// WideFromString returns a wide range over the runes of s.
func WideFromString(s string) Range[rune] {
	return Range[rune]{data: []rune(s)}
}

// Make returns a range viewing units.
func Make[C Char](units []C) Range[C] {
	return Range[C]{data: units}
}

// Len returns the number of unconsumed units.
func (r Range[C]) Len() int { return len(r.data) }

// Empty reports whether no units remain.
func (r Range[C]) Empty() bool { return len(r.data) == 0 }

// Offset returns the number of units consumed since the top-level range was
// created.
func (r Range[C]) Offset() int { return r.off }

// At returns the unit at index i without consuming it. It panics if i is out
// of bounds, like a slice access.
func (r Range[C]) At(i int) C { return r.data[i] }

// First returns the first unconsumed unit. It panics on an empty range;
// callers check Empty first.
func (r Range[C]) First() C { return r.data[0] }

// Advance returns the suffix of r with the first n units consumed. It panics
// if n exceeds Len.
func (r Range[C]) Advance(n int) Range[C] {
	return Range[C]{data: r.data[n:], off: r.off + n}
}

// Take returns the prefix of r holding its first n units. The prefix keeps
// r's offset so errors inside it still report absolute positions.
func (r Range[C]) Take(n int) Range[C] {
	return Range[C]{data: r.data[:n:n], off: r.off}
}

// Units returns the unconsumed units. The slice aliases the backing storage
// and must be treated as read-only.
func (r Range[C]) Units() []C { return r.data }

// IndexOf returns the index of the first occurrence of c, or -1 if c does not
// occur in the range.
func (r Range[C]) IndexOf(c C) int {
	for i, u := range r.data {
		if u == c {
			return i
		}
	}
	return -1
}

// String renders the unconsumed units as a Go string. Narrow units are
// interpreted as UTF-8.
func (r Range[C]) String() string { return String(r.data) }

// Units converts s into a unit slice of the requested width. Narrow units are
// the UTF-8 bytes of s; wide units are its runes.
func Units[C Char](s string) []C {
	var zero C
	if _, narrow := any(zero).(byte); narrow {
		bs := []byte(s)
		out := make([]C, len(bs))
		for i, b := range bs {
			out[i] = C(b)
		}
		return out
	}
	rs := []rune(s)
	out := make([]C, len(rs))
	for i, c := range rs {
		out[i] = C(c)
	}
	return out
}

// String converts a unit slice back into a Go string.
func String[C Char](units []C) string {
	var zero C
	if _, narrow := any(zero).(byte); narrow {
		bs := make([]byte, len(units))
		for i, u := range units {
			bs[i] = byte(u)
		}
		return string(bs)
	}
	rs := make([]rune, len(units))
	for i, u := range units {
		rs[i] = rune(u)
	}
	return string(rs)
}

// DecodeRune decodes one rune from the front of r and returns it with the
// number of units it spans. Narrow ranges decode a UTF-8 sequence; wide
// ranges yield their first unit. ok is false when the range is empty or the
// bytes do not form a valid encoding.
func DecodeRune[C Char](r Range[C]) (c rune, size int, ok bool) {
	if r.Empty() {
		return 0, 0, false
	}
	var zero C
	if _, narrow := any(zero).(byte); narrow {
		bs := make([]byte, 0, utf8.UTFMax)
		for i := 0; i < len(r.data) && i < utf8.UTFMax; i++ {
			bs = append(bs, byte(r.data[i]))
		}
		c, size = utf8.DecodeRune(bs)
		if c == utf8.RuneError && size <= 1 {
			return 0, 0, false
		}
		return c, size, true
	}
	return rune(r.data[0]), 1, true
}
