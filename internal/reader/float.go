package reader

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/scankit/scan/format"
	"github.com/scankit/scan/locale"
	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

// floatOptions is the set of floating-point lexical forms enabled for one
// read.
type floatOptions struct {
	// allowDecimal enables the plain decimal form with an optional exponent.
	allowDecimal bool

	// allowHex enables the "0x" hexadecimal form with a binary exponent.
	allowHex bool

	// point is the decimal separator; group optionally separates integral
	// digits.
	point rune
	group rune
}

func floatOptionsFor(sp format.Spec, loc *locale.Locale) floatOptions {
	opts := floatOptions{point: '.'}
	switch sp.Presentation {
	case format.PresentationFloat:
		opts.allowDecimal = true
	case format.PresentationFloatHex:
		opts.allowHex = true
	default:
		opts.allowDecimal = true
		opts.allowHex = true
	}
	if sp.Localized {
		opts.point = loc.DecimalPoint
		opts.group = loc.GroupSeparator
	}
	return opts
}

// Float reads floating-point values: decimal and hexadecimal mantissas with
// optional exponents, plus the textual forms "inf", "infinity" and "nan",
// matched without case sensitivity.
type Float[T constraints.Float, C source.Char] struct{}

// CheckSpec implements Reader.
func (Float[T, C]) CheckSpec(sp format.Spec) error {
	switch sp.Presentation {
	case format.PresentationNone, format.PresentationFloat,
		format.PresentationFloatHex:
		return nil
	default:
		return scanerr.Newf(scanerr.InvalidFormatString, -1,
			"%s presentation is not valid for floating-point values", sp.Presentation)
	}
}

// ReadDefault implements Reader.
func (Float[T, C]) ReadDefault(r source.Range[C]) (T, source.Range[C], error) {
	return readFloat[T](r, floatOptions{allowDecimal: true, allowHex: true, point: '.'})
}

// ReadSpec implements Reader.
func (Float[T, C]) ReadSpec(r source.Range[C], sp format.Spec, loc *locale.Locale) (T, source.Range[C], error) {
	return readFloat[T](r, floatOptionsFor(sp, loc))
}

func floatBits[T constraints.Float]() int {
	if _, is32 := any(T(0)).(float32); is32 {
		return 32
	}
	return 64
}

func readFloat[T constraints.Float, C source.Char](r source.Range[C], opts floatOptions) (T, source.Range[C], error) {
	pos := r.Offset()
	if r.Empty() {
		return 0, r, scanerr.New(scanerr.EndOfRange, pos, "input exhausted")
	}

	neg := false
	rest := r
	switch rune(rest.First()) {
	case '-':
		neg = true
		rest = rest.Advance(1)
	case '+':
		rest = rest.Advance(1)
	}

	// Textual forms are available regardless of the enabled numeric forms.
	if v, after, ok := readFloatTextual[T](rest, neg); ok {
		return v, after, nil
	}

	if opts.allowHex {
		if v, after, ok, err := readFloatHex[T](rest, neg, pos); ok {
			if err != nil {
				return 0, r, err
			}
			return v, after, nil
		}
	}
	if opts.allowDecimal {
		if v, after, ok, err := readFloatDecimal[T](rest, neg, pos, opts); ok {
			if err != nil {
				return 0, r, err
			}
			return v, after, nil
		}
	}

	return 0, r, scanerr.New(scanerr.InvalidScannedValue, pos,
		"no floating-point form matched")
}

// readFloatTextual matches inf/infinity/nan ignoring case, shorter candidate
// first so that "inf" wins and "infinity" is only taken when fully present.
func readFloatTextual[T constraints.Float, C source.Char](r source.Range[C], neg bool) (T, source.Range[C], bool) {
	if rest, err := matchLiteralFold(r, "nan"); err == nil {
		return T(math.NaN()), rest, true
	}
	sign := 1
	if neg {
		sign = -1
	}
	if rest, err := matchLiteralFold(r, "infinity"); err == nil {
		return T(math.Inf(sign)), rest, true
	}
	if rest, err := matchLiteralFold(r, "inf"); err == nil {
		return T(math.Inf(sign)), rest, true
	}
	return 0, r, false
}

// readFloatHex reads a "0x" mantissa with an optional 'p' exponent. The
// conversion requires a binary exponent, so a missing one converts with an
// implicit exponent of zero.
func readFloatHex[T constraints.Float, C source.Char](r source.Range[C], neg bool, pos int) (T, source.Range[C], bool, error) {
	if r.Len() < 2 || r.First() != C('0') {
		return 0, r, false, nil
	}
	if x := rune(r.At(1)); x != 'x' && x != 'X' {
		return 0, r, false, nil
	}
	rest := r.Advance(2)

	var lex strings.Builder
	digits := 0
	for !rest.Empty() {
		if _, ok := digitValue(rune(rest.First()), 16); !ok {
			break
		}
		lex.WriteRune(rune(rest.First()))
		digits++
		rest = rest.Advance(1)
	}
	if !rest.Empty() && rest.First() == C('.') {
		frac := rest.Advance(1)
		fracDigits := 0
		var fracLex strings.Builder
		for !frac.Empty() {
			if _, ok := digitValue(rune(frac.First()), 16); !ok {
				break
			}
			fracLex.WriteRune(rune(frac.First()))
			fracDigits++
			frac = frac.Advance(1)
		}
		if fracDigits > 0 || digits > 0 {
			lex.WriteByte('.')
			lex.WriteString(fracLex.String())
			digits += fracDigits
			rest = frac
		}
	}
	if digits == 0 {
		// "0x" with no mantissa is not a hex float at all.
		return 0, r, false, nil
	}

	exp, rest := scanExponent(rest, 'p', 'P')
	if exp == "" {
		exp = "p0"
	}

	s := "0x" + lex.String() + exp
	if neg {
		s = "-" + s
	}
	return convertFloat[T](s, r, rest, pos)
}

// readFloatDecimal reads a decimal mantissa with an optional 'e' exponent,
// honoring the locale's decimal point and digit grouping.
func readFloatDecimal[T constraints.Float, C source.Char](r source.Range[C], neg bool, pos int, opts floatOptions) (T, source.Range[C], bool, error) {
	var lex strings.Builder
	digits := 0
	rest := r

	for !rest.Empty() {
		c := rune(rest.First())
		if c >= '0' && c <= '9' {
			lex.WriteRune(c)
			digits++
			rest = rest.Advance(1)
			continue
		}
		if opts.group != 0 && c == opts.group && digits > 0 && rest.Len() >= 2 {
			if n := rune(rest.At(1)); n >= '0' && n <= '9' {
				rest = rest.Advance(1)
				continue
			}
		}
		break
	}

	if !rest.Empty() && rune(rest.First()) == opts.point {
		frac := rest.Advance(1)
		fracDigits := 0
		var fracLex strings.Builder
		for !frac.Empty() {
			c := rune(frac.First())
			if c < '0' || c > '9' {
				break
			}
			fracLex.WriteRune(c)
			fracDigits++
			frac = frac.Advance(1)
		}
		// A bare separator with no digits on either side is not part of the
		// value.
		if digits > 0 || fracDigits > 0 {
			lex.WriteByte('.')
			lex.WriteString(fracLex.String())
			digits += fracDigits
			rest = frac
		}
	}
	if digits == 0 {
		return 0, r, false, nil
	}

	exp, rest := scanExponent(rest, 'e', 'E')
	s := lex.String() + exp
	if neg {
		s = "-" + s
	}
	return convertFloat[T](s, r, rest, pos)
}

// scanExponent consumes an exponent marker with an optional sign and at least
// one decimal digit. Without a digit nothing is consumed: "1e+" scans as 1
// and leaves "e+" in the range.
func scanExponent[C source.Char](r source.Range[C], lower, upper rune) (string, source.Range[C]) {
	if r.Empty() {
		return "", r
	}
	if c := rune(r.First()); c != lower && c != upper {
		return "", r
	}
	rest := r.Advance(1)

	var lex strings.Builder
	lex.WriteRune(lower)
	if !rest.Empty() {
		if c := rune(rest.First()); c == '+' || c == '-' {
			lex.WriteRune(c)
			rest = rest.Advance(1)
		}
	}
	digits := 0
	for !rest.Empty() {
		c := rune(rest.First())
		if c < '0' || c > '9' {
			break
		}
		lex.WriteRune(c)
		digits++
		rest = rest.Advance(1)
	}
	if digits == 0 {
		return "", r
	}
	return lex.String(), rest
}

func convertFloat[T constraints.Float, C source.Char](s string, orig, rest source.Range[C], pos int) (T, source.Range[C], bool, error) {
	v, err := strconv.ParseFloat(s, floatBits[T]())
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, orig, true, scanerr.New(scanerr.ValueOutOfRange, pos,
				"value out of range for destination type")
		}
		return 0, orig, true, scanerr.Newf(scanerr.InvalidScannedValue, pos,
			"malformed floating-point value %q", s)
	}
	return T(v), rest, true, nil
}
