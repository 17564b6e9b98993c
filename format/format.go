// Package format defines the per-argument scanning specification and the
// compiler that turns a format string into a sequence of literal, whitespace
// and replacement-field segments.
//
// The reading engine only consumes compiled segments; it never inspects
// format-string syntax itself. Compilation problems, including replacement
// fields that make no sense for their destination type, are reported as
// scanerr.InvalidFormatString before any input is consumed.
package format

// Presentation selects which lexical forms of a value a replacement field
// accepts. PresentationNone, the empty "{}" field, enables every form the
// destination type supports.
type Presentation int

// Supported presentation types.
const (
	PresentationNone Presentation = iota

	// PresentationString reads a whitespace-delimited token ("s", "?").
	PresentationString

	// PresentationInt reads a decimal integer ("d").
	PresentationInt

	// PresentationIntDetect reads an integer with base detection from its
	// prefix ("i"): 0x hex, 0b binary, 0o or a leading zero octal, decimal
	// otherwise.
	PresentationIntDetect

	// PresentationUnsigned reads a decimal integer without a sign ("u").
	PresentationUnsigned

	// PresentationBinary, PresentationOctal and PresentationHex read an
	// integer in the fixed base 2, 8 or 16 ("b", "o", "x"/"X").
	PresentationBinary
	PresentationOctal
	PresentationHex

	// PresentationChar reads a single code unit ("c").
	PresentationChar

	// PresentationFloat reads a floating-point value in decimal or textual
	// form ("f", "F", "e", "E", "g", "G").
	PresentationFloat

	// PresentationFloatHex reads a hexadecimal floating-point value
	// ("a", "A").
	PresentationFloatHex

	// PresentationPointer reads a hexadecimal address value ("p").
	PresentationPointer
)

var presentationStrings = [...]string{
	PresentationNone:      "none",
	PresentationString:    "string",
	PresentationInt:       "int",
	PresentationIntDetect: "int (detected base)",
	PresentationUnsigned:  "unsigned",
	PresentationBinary:    "binary",
	PresentationOctal:     "octal",
	PresentationHex:       "hex",
	PresentationChar:      "char",
	PresentationFloat:     "float",
	PresentationFloatHex:  "hex float",
	PresentationPointer:   "pointer",
}

// String returns the name of p.
func (p Presentation) String() string {
	if int(p) < len(presentationStrings) {
		return presentationStrings[p]
	}
	return "unknown"
}

// Spec is the compiled per-argument specification of one replacement field.
// Width and alignment are accepted by the compiler for symmetry with the
// formatting direction but are irrelevant to reading and ignored by every
// reader.
type Spec struct {
	Presentation Presentation

	// Localized selects locale-aware reading: locale-specific true/false
	// spellings, decimal point and digit grouping.
	Localized bool

	// Width is parsed but ignored when reading.
	Width int
}

// Base returns the numeric base requested by the specification, or 0 when
// the base must be detected from the value's prefix. Presentations that are
// not integer-like report base 10.
func (s Spec) Base() int {
	switch s.Presentation {
	case PresentationIntDetect:
		return 0
	case PresentationBinary:
		return 2
	case PresentationOctal:
		return 8
	case PresentationHex, PresentationPointer:
		return 16
	default:
		return 10
	}
}

// IntLike reports whether the presentation requests an integer form.
func (s Spec) IntLike() bool {
	switch s.Presentation {
	case PresentationInt, PresentationIntDetect, PresentationUnsigned,
		PresentationBinary, PresentationOctal, PresentationHex,
		PresentationPointer:
		return true
	default:
		return false
	}
}

// SegmentKind discriminates the three compiled segment shapes.
type SegmentKind int

// Supported segment kinds.
const (
	// SegmentLiteral matches its text against the input unit for unit.
	SegmentLiteral SegmentKind = iota

	// SegmentWhitespace matches any run of input whitespace, including an
	// empty one. Any run of whitespace in the format compiles to a single
	// whitespace segment.
	SegmentWhitespace

	// SegmentField reads one value according to Spec.
	SegmentField
)

// Segment is one compiled element of a format string.
type Segment struct {
	Kind SegmentKind

	// Lit is the literal text for SegmentLiteral.
	Lit string

	// Spec is the field specification for SegmentField.
	Spec Spec
}
