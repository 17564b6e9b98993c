package reader

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/scankit/scan/format"
	"github.com/scankit/scan/locale"
	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

// intOptions is the set of integer lexical forms enabled for one read.
type intOptions struct {
	// base is the numeric base, or 0 to detect it from the value's prefix.
	base int

	// allowSign permits a leading '-' or '+'. The "u" presentation disables
	// the minus sign even for signed destinations.
	allowSign bool

	// group is the digit group separator tolerated between decimal digits,
	// or 0 for none.
	group rune

	// unitValue reads a single code unit and yields its value, for the "c"
	// presentation.
	unitValue bool
}

func intOptionsFor(sp format.Spec, loc *locale.Locale) intOptions {
	opts := intOptions{base: sp.Base(), allowSign: true}
	switch sp.Presentation {
	case format.PresentationUnsigned:
		opts.allowSign = false
	case format.PresentationChar:
		opts.unitValue = true
	}
	if sp.Localized && opts.base == 10 {
		opts.group = loc.GroupSeparator
	}
	return opts
}

func checkIntSpec(sp format.Spec, allowPointer bool) error {
	switch sp.Presentation {
	case format.PresentationNone, format.PresentationInt,
		format.PresentationIntDetect, format.PresentationUnsigned,
		format.PresentationBinary, format.PresentationOctal,
		format.PresentationHex, format.PresentationChar:
		return nil
	case format.PresentationPointer:
		if allowPointer {
			return nil
		}
	}
	return scanerr.Newf(scanerr.InvalidFormatString, -1,
		"%s presentation is not valid for integers", sp.Presentation)
}

// Int reads signed integer values. The classic form is an optional sign
// followed by decimal digits; specifications select other bases, base
// detection, or a single code unit's value.
type Int[T constraints.Signed, C source.Char] struct{}

// CheckSpec implements Reader.
func (Int[T, C]) CheckSpec(sp format.Spec) error {
	return checkIntSpec(sp, false)
}

// ReadDefault implements Reader.
func (Int[T, C]) ReadDefault(r source.Range[C]) (T, source.Range[C], error) {
	return readSigned[T](r, intOptions{base: 10, allowSign: true})
}

// ReadSpec implements Reader.
func (Int[T, C]) ReadSpec(r source.Range[C], sp format.Spec, loc *locale.Locale) (T, source.Range[C], error) {
	return readSigned[T](r, intOptionsFor(sp, loc))
}

// Uint reads unsigned integer values. A leading '-' is an invalid value, not
// a range error: the minus sign is not part of any unsigned form.
type Uint[T constraints.Unsigned, C source.Char] struct{}

// CheckSpec implements Reader.
func (Uint[T, C]) CheckSpec(sp format.Spec) error {
	_, isUintptr := any(T(0)).(uintptr)
	return checkIntSpec(sp, isUintptr)
}

// ReadDefault implements Reader.
func (Uint[T, C]) ReadDefault(r source.Range[C]) (T, source.Range[C], error) {
	return readUnsigned[T](r, intOptions{base: 10, allowSign: true})
}

// ReadSpec implements Reader.
func (Uint[T, C]) ReadSpec(r source.Range[C], sp format.Spec, loc *locale.Locale) (T, source.Range[C], error) {
	return readUnsigned[T](r, intOptionsFor(sp, loc))
}

func readSigned[T constraints.Signed, C source.Char](r source.Range[C], opts intOptions) (T, source.Range[C], error) {
	if opts.unitValue {
		if r.Empty() {
			return 0, r, scanerr.New(scanerr.EndOfRange, r.Offset(), "input exhausted")
		}
		return T(r.First()), r.Advance(1), nil
	}

	neg := false
	rest := r
	if !r.Empty() && opts.allowSign {
		switch rune(r.First()) {
		case '-':
			neg = true
			rest = r.Advance(1)
		case '+':
			rest = r.Advance(1)
		}
	}

	mag, rest, err := readMagnitude(rest, r.Offset(), opts)
	if err != nil {
		return 0, r, err
	}

	maxPos := signedMax[T]()
	if neg {
		if mag > maxPos+1 {
			return 0, r, scanerr.New(scanerr.ValueOutOfRange, r.Offset(),
				"value too small for destination type")
		}
		return T(-int64(mag)), rest, nil
	}
	if mag > maxPos {
		return 0, r, scanerr.New(scanerr.ValueOutOfRange, r.Offset(),
			"value too large for destination type")
	}
	return T(mag), rest, nil
}

func readUnsigned[T constraints.Unsigned, C source.Char](r source.Range[C], opts intOptions) (T, source.Range[C], error) {
	if opts.unitValue {
		if r.Empty() {
			return 0, r, scanerr.New(scanerr.EndOfRange, r.Offset(), "input exhausted")
		}
		return T(r.First()), r.Advance(1), nil
	}

	rest := r
	if !r.Empty() && opts.allowSign {
		switch rune(r.First()) {
		case '-':
			return 0, r, scanerr.New(scanerr.InvalidScannedValue, r.Offset(),
				"unsigned value cannot be negative")
		case '+':
			rest = r.Advance(1)
		}
	}

	mag, rest, err := readMagnitude(rest, r.Offset(), opts)
	if err != nil {
		return 0, r, err
	}
	if mag > unsignedMax[T]() {
		return 0, r, scanerr.New(scanerr.ValueOutOfRange, r.Offset(),
			"value too large for destination type")
	}
	return T(mag), rest, nil
}

// readMagnitude reads an unsigned magnitude after any sign: an optional base
// prefix, then at least one digit. pos is the offset the whole value started
// at, used in errors.
func readMagnitude[C source.Char](r source.Range[C], pos int, opts intOptions) (uint64, source.Range[C], error) {
	if r.Empty() {
		return 0, r, scanerr.New(scanerr.EndOfRange, pos, "input exhausted")
	}

	base := opts.base
	if base == 0 {
		base, r = detectBase(r)
	} else {
		r = skipBasePrefix(r, base)
	}

	mag, n, rest, overflow := scanDigits(r, base, opts.group)
	if n == 0 {
		return 0, r, scanerr.Newf(scanerr.InvalidScannedValue, pos,
			"expected base-%d digits", base)
	}
	if overflow {
		return 0, r, scanerr.New(scanerr.ValueOutOfRange, pos,
			"value too large for destination type")
	}
	return mag, rest, nil
}

// detectBase inspects a value's prefix: "0x" hex, "0b" binary, "0o" octal, a
// bare leading zero octal, decimal otherwise. A prefix not followed by a
// digit of its base is not a prefix; the leading zero then simply scans as a
// digit, so "0x" on its own reads as zero and leaves "x" unconsumed.
func detectBase[C source.Char](r source.Range[C]) (int, source.Range[C]) {
	if r.First() != C('0') {
		return 10, r
	}
	if r.Len() >= 3 {
		base := 0
		switch rune(r.At(1)) {
		case 'x', 'X':
			base = 16
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		}
		if base != 0 {
			if _, ok := digitValue(rune(r.At(2)), base); ok {
				return base, r.Advance(2)
			}
		}
	}
	return 8, r
}

// skipBasePrefix tolerates the conventional prefix of a fixed base, so "{:x}"
// accepts both "ff" and "0xff". The prefix only counts when a digit follows.
func skipBasePrefix[C source.Char](r source.Range[C], base int) source.Range[C] {
	if r.Len() < 3 || r.First() != C('0') {
		return r
	}
	ok := false
	switch rune(r.At(1)) {
	case 'x', 'X':
		ok = base == 16
	case 'b', 'B':
		ok = base == 2
	case 'o', 'O':
		ok = base == 8
	}
	if !ok {
		return r
	}
	if _, valid := digitValue(rune(r.At(2)), base); !valid {
		return r
	}
	return r.Advance(2)
}

// scanDigits accumulates digits of the given base, tolerating group between
// digits when non-zero. It consumes the longest valid digit run and reports
// whether the accumulated magnitude overflowed uint64.
func scanDigits[C source.Char](r source.Range[C], base int, group rune) (mag uint64, n int, rest source.Range[C], overflow bool) {
	rest = r
	for !rest.Empty() {
		c := rune(rest.First())
		if d, ok := digitValue(c, base); ok {
			if mag > (math.MaxUint64-uint64(d))/uint64(base) {
				overflow = true
			}
			if !overflow {
				mag = mag*uint64(base) + uint64(d)
			}
			n++
			rest = rest.Advance(1)
			continue
		}
		// A group separator only belongs to the number when digits surround
		// it.
		if group != 0 && c == group && n > 0 && rest.Len() >= 2 {
			if _, ok := digitValue(rune(rest.At(1)), base); ok {
				rest = rest.Advance(1)
				continue
			}
		}
		break
	}
	return mag, n, rest, overflow
}

func digitValue(c rune, base int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'z':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}

func signedMax[T constraints.Signed]() uint64 {
	switch any(T(0)).(type) {
	case int8:
		return math.MaxInt8
	case int16:
		return math.MaxInt16
	case int32:
		return math.MaxInt32
	case int64:
		return math.MaxInt64
	default:
		if strconv.IntSize == 32 {
			return math.MaxInt32
		}
		return math.MaxInt64
	}
}

func unsignedMax[T constraints.Unsigned]() uint64 {
	switch any(T(0)).(type) {
	case uint8:
		return math.MaxUint8
	case uint16:
		return math.MaxUint16
	case uint32:
		return math.MaxUint32
	case uint64:
		return math.MaxUint64
	case uintptr:
		return math.MaxUint64
	default:
		if strconv.IntSize == 32 {
			return math.MaxUint32
		}
		return math.MaxUint64
	}
}
