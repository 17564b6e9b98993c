package reader

import (
	"github.com/scankit/scan/format"
	"github.com/scankit/scan/locale"
	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

func checkStringSpec(sp format.Spec) error {
	switch sp.Presentation {
	case format.PresentationNone, format.PresentationString:
		return nil
	default:
		return scanerr.Newf(scanerr.InvalidFormatString, -1,
			"%s presentation is not valid for strings", sp.Presentation)
	}
}

// wordLen returns the length of the maximal non-whitespace prefix.
func wordLen[C source.Char](r source.Range[C]) int {
	n := 0
	for n < r.Len() && !IsSpace(r.At(n)) {
		n++
	}
	return n
}

// String reads a whitespace-delimited token into an owned Go string. The
// token is the maximal run of non-whitespace units; an empty run is a failed
// read, not an empty string.
type String[C source.Char] struct{}

// CheckSpec implements Reader.
func (String[C]) CheckSpec(sp format.Spec) error { return checkStringSpec(sp) }

// ReadDefault implements Reader.
func (String[C]) ReadDefault(r source.Range[C]) (string, source.Range[C], error) {
	v, rest, err := View[C]{}.ReadDefault(r)
	if err != nil {
		return "", r, err
	}
	return v.String(), rest, nil
}

// ReadSpec implements Reader. The localized flag has no effect on strings:
// there is no locale-dependent token form.
func (String[C]) ReadSpec(r source.Range[C], sp format.Spec, loc *locale.Locale) (string, source.Range[C], error) {
	return String[C]{}.ReadDefault(r)
}

// View reads a whitespace-delimited token as a sub-range of the input,
// without copying any units. The returned view stays valid as long as the
// caller's backing storage does.
type View[C source.Char] struct{}

// CheckSpec implements Reader.
func (View[C]) CheckSpec(sp format.Spec) error { return checkStringSpec(sp) }

// ReadDefault implements Reader.
func (View[C]) ReadDefault(r source.Range[C]) (source.Range[C], source.Range[C], error) {
	if r.Empty() {
		return r.Take(0), r, scanerr.New(scanerr.EndOfRange, r.Offset(), "input exhausted")
	}
	n := wordLen(r)
	if n == 0 {
		return r.Take(0), r, scanerr.New(scanerr.InvalidScannedValue, r.Offset(),
			"expected a non-whitespace token")
	}
	return r.Take(n), r.Advance(n), nil
}

// ReadSpec implements Reader.
func (View[C]) ReadSpec(r source.Range[C], sp format.Spec, loc *locale.Locale) (source.Range[C], source.Range[C], error) {
	return View[C]{}.ReadDefault(r)
}
