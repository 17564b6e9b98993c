package reader

import (
	"github.com/scankit/scan/format"
	"github.com/scankit/scan/locale"
	"github.com/scankit/scan/source"
)

// Reader is the capability every scannable type implements.
//
// CheckSpec runs once per format-string compilation and rejects presentation
// types that are meaningless for the type; it never reads input. ReadDefault
// is the locale-independent parse of the type's canonical classic forms.
// ReadSpec honors a compiled specification: the specification narrows or
// redirects the set of accepted lexical forms, and Localized specifications
// consult the provided locale for type-specific tokens. The grammar of each
// individual form never changes; only which forms are enabled does.
//
// All three are pure functions of their inputs. On success the returned range
// is the exact suffix of the input after the consumed units; on failure the
// input range is unconsumed and the value result is meaningless.
type Reader[T any, C source.Char] interface {
	CheckSpec(sp format.Spec) error
	ReadDefault(r source.Range[C]) (T, source.Range[C], error)
	ReadSpec(r source.Range[C], sp format.Spec, loc *locale.Locale) (T, source.Range[C], error)
}

// Conformance of every reader, both widths.
var (
	_ Reader[bool, byte]    = Bool[byte]{}
	_ Reader[bool, rune]    = Bool[rune]{}
	_ Reader[int, byte]     = Int[int, byte]{}
	_ Reader[int64, rune]   = Int[int64, rune]{}
	_ Reader[uint, byte]    = Uint[uint, byte]{}
	_ Reader[uint64, rune]  = Uint[uint64, rune]{}
	_ Reader[float64, byte] = Float[float64, byte]{}
	_ Reader[float32, rune] = Float[float32, rune]{}
	_ Reader[string, byte]  = String[byte]{}
	_ Reader[string, rune]  = String[rune]{}

	_ Reader[source.Range[byte], byte] = View[byte]{}
	_ Reader[source.Range[rune], rune] = View[rune]{}

	_ Reader[byte, byte] = CharUnit[byte]{}
	_ Reader[rune, rune] = CharUnit[rune]{}
	_ Reader[rune, byte] = DecodedRune[byte]{}
	_ Reader[rune, rune] = DecodedRune[rune]{}
)
